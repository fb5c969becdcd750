package imaging

import (
	"context"
	"image"
	"log/slog"

	"golang.org/x/image/draw"
)

// minReadableDim is the smallest width/height tesseract handles well on
// phone photos of forms; anything smaller is upscaled before recognition.
const minReadableDim = 1200

// OrientationFunc reports the clockwise rotation in degrees (0, 90, 180,
// 270) needed to bring a page upright. Implementations typically wrap the
// OCR backend's script-and-orientation detection.
type OrientationFunc func(ctx context.Context, g *image.Gray) (int, error)

// Page holds the normalized forms of one scanned page. Upright is the
// rotated grayscale as captured; Base additionally has equalization,
// upscaling and content cropping applied and is what most recognition
// variants derive from.
type Page struct {
	Upright *image.Gray
	Base    *image.Gray
}

// Normalize prepares a captured image for recognition. Orientation detection
// is best effort: if orient is nil or errors, the page is assumed upright.
func Normalize(ctx context.Context, img image.Image, orient OrientationFunc, logger *slog.Logger) *Page {
	if logger == nil {
		logger = slog.Default()
	}
	gray := ToGray(img)

	if orient != nil {
		deg, err := orient(ctx, gray)
		if err != nil {
			logger.Debug("orientation detection failed, assuming upright", "error", err)
		} else if deg != 0 {
			logger.Debug("rotating page", "degrees", deg)
			gray = Rotate(gray, deg)
		}
	}

	base := Equalize(gray)
	base = UpscaleIfSmall(base)
	base = CropToContent(base)
	return &Page{Upright: gray, Base: base}
}

// UpscaleIfSmall scales the image up so that its smaller dimension reaches
// minReadableDim, using Catmull-Rom interpolation. Larger images pass
// through untouched.
func UpscaleIfSmall(g *image.Gray) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return g
	}
	minDim := min(w, h)
	if minDim >= minReadableDim {
		return g
	}
	scale := float64(minReadableDim) / float64(minDim)
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	out := image.NewGray(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(out, out.Bounds(), g, g.Bounds(), draw.Src, nil)
	return out
}

// CropToContent trims uniform margins around the document content. The
// content box is the bounding rectangle of dark pixels under an Otsu
// binarization, padded by 2% of each dimension (at least 4px). If no dark
// pixels exist the input is returned unchanged.
func CropToContent(g *image.Gray) *image.Gray {
	bin := OtsuThreshold(g)
	inv := Invert(bin)

	b := inv.Bounds()
	w, h := b.Dx(), b.Dy()
	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		row := inv.Pix[y*inv.Stride : y*inv.Stride+w]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return g
	}

	padX := maxInt(4, w*2/100)
	padY := maxInt(4, h*2/100)
	r := image.Rect(
		clampInt(minX-padX, 0, w),
		clampInt(minY-padY, 0, h),
		clampInt(maxX+1+padX, 0, w),
		clampInt(maxY+1+padY, 0, h),
	)
	return Crop(g, r)
}

// HeaderRegion returns the top quarter of the page, where institutional
// forms carry their title and document code.
func HeaderRegion(g *image.Gray) *image.Gray {
	b := g.Bounds()
	return Crop(g, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+b.Dy()/4))
}

// BodyRegion returns the 25%-90% vertical band of the page, skipping the
// header and the footer/signature strip.
func BodyRegion(g *image.Gray) *image.Gray {
	b := g.Bounds()
	top := b.Min.Y + b.Dy()*25/100
	bottom := b.Min.Y + b.Dy()*90/100
	return Crop(g, image.Rect(b.Min.X, top, b.Max.X, bottom))
}
