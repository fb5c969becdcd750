package imaging

import (
	"image"
	"image/draw"
	"math"
)

// Every filter in this package is total: when a precondition does not hold
// (nil input, degenerate dimensions, kernel larger than the image) the filter
// returns its input unchanged instead of erroring. A bad scan must never
// abort the pipeline; it just produces a weaker variant.

// ToGray converts any image to 8-bit grayscale.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Clone returns a copy of g with a zero-origin bounds.
func Clone(g *image.Gray) *image.Gray {
	b := g.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), g, b.Min, draw.Src)
	return out
}

// Rotate returns g rotated clockwise by 90, 180 or 270 degrees.
// Any other angle returns g unchanged.
func Rotate(g *image.Gray, degrees int) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	switch degrees {
	case 90:
		out := image.NewGray(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetGray(h-1-y, x, g.GrayAt(b.Min.X+x, b.Min.Y+y))
			}
		}
		return out
	case 180:
		out := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetGray(w-1-x, h-1-y, g.GrayAt(b.Min.X+x, b.Min.Y+y))
			}
		}
		return out
	case 270:
		out := image.NewGray(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetGray(y, w-1-x, g.GrayAt(b.Min.X+x, b.Min.Y+y))
			}
		}
		return out
	default:
		return g
	}
}

// Crop returns the subregion r of g as a new image. An empty intersection
// returns g unchanged.
func Crop(g *image.Gray, r image.Rectangle) *image.Gray {
	r = r.Intersect(g.Bounds())
	if r.Empty() {
		return g
	}
	out := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), g, r.Min, draw.Src)
	return out
}

func histogram(g *image.Gray) (hist [256]int, total int) {
	b := g.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g.Pix[(y-b.Min.Y)*g.Stride : (y-b.Min.Y)*g.Stride+b.Dx()]
		for _, v := range row {
			hist[v]++
		}
	}
	return hist, b.Dx() * b.Dy()
}

// Equalize applies global histogram equalization.
func Equalize(g *image.Gray) *image.Gray {
	hist, total := histogram(g)
	if total == 0 {
		return g
	}
	var lut [256]uint8
	cum := 0
	for i := 0; i < 256; i++ {
		cum += hist[i]
		lut[i] = uint8(math.Round(float64(cum) * 255.0 / float64(total)))
	}
	return applyLUT(g, &lut)
}

func applyLUT(g *image.Gray, lut *[256]uint8) *image.Gray {
	out := Clone(g)
	for i, v := range out.Pix {
		out.Pix[i] = lut[v]
	}
	return out
}

// CLAHE applies contrast-limited adaptive histogram equalization over a
// tiles x tiles grid with bilinear interpolation between tile mappings.
func CLAHE(g *image.Gray, clipLimit float64, tiles int) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if tiles < 2 || w < tiles || h < tiles {
		return Equalize(g)
	}
	src := Clone(g)
	tw, th := w/tiles, h/tiles
	if tw == 0 || th == 0 {
		return Equalize(g)
	}

	// Per-tile clipped LUTs.
	luts := make([][256]uint8, tiles*tiles)
	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			var hist [256]int
			x0, y0 := tx*tw, ty*th
			x1, y1 := x0+tw, y0+th
			if tx == tiles-1 {
				x1 = w
			}
			if ty == tiles-1 {
				y1 = h
			}
			n := 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					hist[src.Pix[y*src.Stride+x]]++
					n++
				}
			}
			clip := int(clipLimit * float64(n) / 256.0)
			if clip < 1 {
				clip = 1
			}
			excess := 0
			for i := range hist {
				if hist[i] > clip {
					excess += hist[i] - clip
					hist[i] = clip
				}
			}
			redist := excess / 256
			for i := range hist {
				hist[i] += redist
			}
			cum := 0
			for i := 0; i < 256; i++ {
				cum += hist[i]
				luts[ty*tiles+tx][i] = uint8(math.Round(float64(cum) * 255.0 / float64(n)))
			}
		}
	}

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		fy := (float64(y)+0.5)/float64(th) - 0.5
		ty0 := int(math.Floor(fy))
		wy := fy - float64(ty0)
		ty1 := ty0 + 1
		ty0 = clampInt(ty0, 0, tiles-1)
		ty1 = clampInt(ty1, 0, tiles-1)
		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)/float64(tw) - 0.5
			tx0 := int(math.Floor(fx))
			wx := fx - float64(tx0)
			tx1 := tx0 + 1
			tx0 = clampInt(tx0, 0, tiles-1)
			tx1 = clampInt(tx1, 0, tiles-1)

			v := src.Pix[y*src.Stride+x]
			v00 := float64(luts[ty0*tiles+tx0][v])
			v01 := float64(luts[ty0*tiles+tx1][v])
			v10 := float64(luts[ty1*tiles+tx0][v])
			v11 := float64(luts[ty1*tiles+tx1][v])
			top := v00*(1-wx) + v01*wx
			bot := v10*(1-wx) + v11*wx
			out.Pix[y*out.Stride+x] = uint8(math.Round(top*(1-wy) + bot*wy))
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OtsuLevel computes the global Otsu threshold level for g.
func OtsuLevel(g *image.Gray) int {
	hist, total := histogram(g)
	if total == 0 {
		return 127
	}
	var sum float64
	for i := 0; i < 256; i++ {
		sum += float64(i) * float64(hist[i])
	}
	var sumB, wB float64
	var best float64
	level := 127
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			level = t
		}
	}
	return level
}

// OtsuThreshold binarizes g at the global Otsu level: pixels above the level
// become white (255), the rest black (0).
func OtsuThreshold(g *image.Gray) *image.Gray {
	level := OtsuLevel(g)
	out := Clone(g)
	for i, v := range out.Pix {
		if int(v) > level {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out
}

// AdaptiveThreshold binarizes using a local mean over block x block windows
// minus the constant c. Blocks larger than the image degrade to Otsu.
func AdaptiveThreshold(g *image.Gray, block, c int) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if block < 3 || block >= w || block >= h {
		return OtsuThreshold(g)
	}
	if block%2 == 0 {
		block++
	}
	src := Clone(g)

	// Integral image for O(1) window sums.
	integral := make([]int64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(src.Pix[y*src.Stride+x])
			integral[(y+1)*(w+1)+x+1] = integral[y*(w+1)+x+1] + rowSum
		}
	}

	r := block / 2
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		y0 := clampInt(y-r, 0, h-1)
		y1 := clampInt(y+r, 0, h-1)
		for x := 0; x < w; x++ {
			x0 := clampInt(x-r, 0, w-1)
			x1 := clampInt(x+r, 0, w-1)
			area := int64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[(y1+1)*(w+1)+x1+1] - integral[y0*(w+1)+x1+1] -
				integral[(y1+1)*(w+1)+x0] + integral[y0*(w+1)+x0]
			mean := float64(sum) / float64(area)
			if float64(src.Pix[y*src.Stride+x]) > mean-float64(c) {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}

// Denoise applies a 3x3 median filter, which removes salt-and-pepper noise
// from binarized scans while keeping thin strokes.
func Denoise(g *image.Gray) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return g
	}
	src := Clone(g)
	out := Clone(src)
	var window [9]uint8
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			k := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					window[k] = src.Pix[(y+dy)*src.Stride+(x+dx)]
					k++
				}
			}
			out.Pix[y*out.Stride+x] = median9(window)
		}
	}
	return out
}

func median9(w [9]uint8) uint8 {
	// insertion sort on a fixed window
	for i := 1; i < 9; i++ {
		v := w[i]
		j := i - 1
		for j >= 0 && w[j] > v {
			w[j+1] = w[j]
			j--
		}
		w[j+1] = v
	}
	return w[4]
}

// Invert flips every pixel value.
func Invert(g *image.Gray) *image.Gray {
	out := Clone(g)
	for i, v := range out.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}

// Dilate applies a maximum filter over a kw x kh rectangular kernel
// (expands bright regions).
func Dilate(g *image.Gray, kw, kh int) *image.Gray {
	return rankFilter(g, kw, kh, true)
}

// Erode applies a minimum filter over a kw x kh rectangular kernel.
func Erode(g *image.Gray, kw, kh int) *image.Gray {
	return rankFilter(g, kw, kh, false)
}

// Open is erosion followed by dilation: removes bright specks smaller than
// the kernel.
func Open(g *image.Gray, kw, kh int) *image.Gray {
	return Dilate(Erode(g, kw, kh), kw, kh)
}

// Close is dilation followed by erosion: fills dark pinholes smaller than
// the kernel.
func Close(g *image.Gray, kw, kh int) *image.Gray {
	return Erode(Dilate(g, kw, kh), kw, kh)
}

// BlackHat is the morphological closing minus the source, highlighting dark
// detail on bright backgrounds.
func BlackHat(g *image.Gray, kw, kh int) *image.Gray {
	closed := Close(g, kw, kh)
	out := Clone(g)
	for i := range out.Pix {
		c := int(closed.Pix[i]) - int(out.Pix[i])
		if c < 0 {
			c = 0
		}
		out.Pix[i] = uint8(c)
	}
	return out
}

// rankFilter computes a separable running max (or min) over the kernel.
func rankFilter(g *image.Gray, kw, kh int, max bool) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if kw < 1 || kh < 1 || (kw == 1 && kh == 1) || w == 0 || h == 0 {
		return g
	}
	src := Clone(g)
	tmp := Clone(src)

	pick := func(a, b uint8) uint8 {
		if max == (a > b) {
			return a
		}
		return b
	}

	// Horizontal pass.
	if kw > 1 {
		rx := kw / 2
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+w]
			dst := tmp.Pix[y*tmp.Stride : y*tmp.Stride+w]
			for x := 0; x < w; x++ {
				x0 := clampInt(x-rx, 0, w-1)
				x1 := clampInt(x+kw-1-rx, 0, w-1)
				v := row[x0]
				for i := x0 + 1; i <= x1; i++ {
					v = pick(v, row[i])
				}
				dst[x] = v
			}
		}
	}

	// Vertical pass.
	out := Clone(tmp)
	if kh > 1 {
		ry := kh / 2
		col := make([]uint8, h)
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				col[y] = tmp.Pix[y*tmp.Stride+x]
			}
			for y := 0; y < h; y++ {
				y0 := clampInt(y-ry, 0, h-1)
				y1 := clampInt(y+kh-1-ry, 0, h-1)
				v := col[y0]
				for i := y0 + 1; i <= y1; i++ {
					v = pick(v, col[i])
				}
				out.Pix[y*out.Stride+x] = v
			}
		}
	}
	return out
}

// RemoveLines erases long horizontal and vertical rule lines from a binary
// image (black text on white). Kernel lengths scale with the image so table
// borders are caught without eating text strokes.
func RemoveLines(bin *image.Gray) *image.Gray {
	b := bin.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 20 || h < 20 {
		return bin
	}
	inv := Invert(bin)
	hKer := maxInt(10, w/40)
	vKer := maxInt(10, h/40)
	hLines := Open(inv, hKer, 1)
	vLines := Open(inv, 1, vKer)

	out := Clone(inv)
	for i := range out.Pix {
		lines := hLines.Pix[i]
		if vLines.Pix[i] > lines {
			lines = vLines.Pix[i]
		}
		c := int(out.Pix[i]) - int(lines)
		if c < 0 {
			c = 0
		}
		out.Pix[i] = uint8(c)
	}
	return Invert(out)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// GaussianBlur applies a separable gaussian with the given sigma.
func GaussianBlur(g *image.Gray, sigma float64) *image.Gray {
	if sigma <= 0 {
		return g
	}
	radius := int(math.Ceil(sigma * 3))
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	src := Clone(g)
	tmp := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float64
			for i := -radius; i <= radius; i++ {
				xx := clampInt(x+i, 0, w-1)
				acc += kernel[i+radius] * float64(src.Pix[y*src.Stride+xx])
			}
			tmp.Pix[y*tmp.Stride+x] = uint8(math.Round(acc))
		}
	}
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float64
			for i := -radius; i <= radius; i++ {
				yy := clampInt(y+i, 0, h-1)
				acc += kernel[i+radius] * float64(tmp.Pix[yy*tmp.Stride+x])
			}
			out.Pix[y*out.Stride+x] = uint8(math.Round(acc))
		}
	}
	return out
}

// Unsharp sharpens with a 1.5/-0.5 weighted blend against a sigma-1 blur.
func Unsharp(g *image.Gray) *image.Gray {
	blur := GaussianBlur(g, 1.0)
	out := Clone(g)
	for i := range out.Pix {
		v := 1.5*float64(out.Pix[i]) - 0.5*float64(blur.Pix[i])
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		out.Pix[i] = uint8(math.Round(v))
	}
	return out
}

// Bilateral applies a 5x5 edge-preserving smoothing filter: spatial gaussian
// weights attenuated by intensity distance, so text edges survive while flat
// background noise averages out.
func Bilateral(g *image.Gray, sigmaColor, sigmaSpace float64) *image.Gray {
	const radius = 2
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 2*radius || h <= 2*radius {
		return g
	}
	if sigmaColor <= 0 {
		sigmaColor = 50
	}
	if sigmaSpace <= 0 {
		sigmaSpace = 50
	}
	var spatial [2*radius + 1][2*radius + 1]float64
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[dy+radius][dx+radius] = math.Exp(-d2 / (2 * sigmaSpace * sigmaSpace))
		}
	}
	var rangeW [256]float64
	for d := 0; d < 256; d++ {
		rangeW[d] = math.Exp(-float64(d*d) / (2 * sigmaColor * sigmaColor))
	}

	src := Clone(g)
	out := Clone(src)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := src.Pix[y*src.Stride+x]
			var acc, norm float64
			for dy := -radius; dy <= radius; dy++ {
				yy := clampInt(y+dy, 0, h-1)
				for dx := -radius; dx <= radius; dx++ {
					xx := clampInt(x+dx, 0, w-1)
					v := src.Pix[yy*src.Stride+xx]
					d := int(v) - int(center)
					if d < 0 {
						d = -d
					}
					wgt := spatial[dy+radius][dx+radius] * rangeW[d]
					acc += wgt * float64(v)
					norm += wgt
				}
			}
			out.Pix[y*out.Stride+x] = uint8(math.Round(acc / norm))
		}
	}
	return out
}
