package imaging

import (
	"context"
	"errors"
	"image"
	"testing"
)

// synthetic page: white background with a dark block of "text" in the middle
func testPage(w, h int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = 240
	}
	for y := h / 3; y < 2*h/3; y++ {
		for x := w / 3; x < 2*w/3; x++ {
			g.Pix[y*g.Stride+x] = 20
		}
	}
	return g
}

func TestVariantsOrderIsStable(t *testing.T) {
	want := []string{
		"gray", "gray_eq", "gray_clahe", "bilateral", "sharpened",
		"denoised", "no_lines_denoised", "dilated", "adaptive",
		"no_lines_adaptive", "opened", "closed", "blackhat",
		"inverted_denoised", "inverted_adaptive",
	}
	got := VariantLabels()
	if len(got) != len(want) {
		t.Fatalf("got %d variants, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variant %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestVariantsSameDimensionsAsInputs(t *testing.T) {
	p := &Page{Upright: testPage(64, 48), Base: testPage(64, 48)}
	for _, v := range Variants(p) {
		if v.Image == nil {
			t.Fatalf("variant %q has nil image", v.Label)
		}
		b := v.Image.Bounds()
		if b.Dx() != 64 || b.Dy() != 48 {
			t.Errorf("variant %q: bounds %v, want 64x48", v.Label, b)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	g := testPage(30, 20)
	r := Rotate(Rotate(g, 90), 270)
	if r.Bounds() != g.Bounds() {
		t.Fatalf("bounds changed: %v vs %v", r.Bounds(), g.Bounds())
	}
	for i := range g.Pix {
		if g.Pix[i] != r.Pix[i] {
			t.Fatalf("pixel %d changed after 90+270 rotation", i)
		}
	}

	if got := Rotate(g, 45); got != g {
		t.Error("unsupported angle should return input unchanged")
	}
}

func TestUpscaleIfSmall(t *testing.T) {
	small := testPage(300, 400)
	up := UpscaleIfSmall(small)
	if min(up.Bounds().Dx(), up.Bounds().Dy()) < minReadableDim {
		t.Errorf("upscaled min dimension = %d, want >= %d",
			min(up.Bounds().Dx(), up.Bounds().Dy()), minReadableDim)
	}
	// aspect ratio preserved within rounding
	ratio := float64(up.Bounds().Dx()) / float64(up.Bounds().Dy())
	if ratio < 0.74 || ratio > 0.76 {
		t.Errorf("aspect ratio drifted: %f", ratio)
	}

	big := testPage(1500, 2000)
	if got := UpscaleIfSmall(big); got != big {
		t.Error("large image should pass through untouched")
	}
}

func TestCropToContent(t *testing.T) {
	g := testPage(300, 300)
	cropped := CropToContent(g)
	if cropped.Bounds().Dx() >= 300 || cropped.Bounds().Dy() >= 300 {
		t.Errorf("expected margins trimmed, got %v", cropped.Bounds())
	}
	// the dark block is 100px wide; padded crop must still contain it
	if cropped.Bounds().Dx() < 100 || cropped.Bounds().Dy() < 100 {
		t.Errorf("crop ate into content: %v", cropped.Bounds())
	}

	blank := image.NewGray(image.Rect(0, 0, 50, 50))
	for i := range blank.Pix {
		blank.Pix[i] = 255
	}
	if got := CropToContent(blank); got != blank {
		t.Error("blank page should be returned unchanged")
	}
}

func TestOtsuThresholdIsBinary(t *testing.T) {
	bin := OtsuThreshold(testPage(60, 60))
	for i, v := range bin.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("pixel %d = %d, want 0 or 255", i, v)
		}
	}
}

func TestInvertIsInvolution(t *testing.T) {
	g := testPage(40, 40)
	back := Invert(Invert(g))
	for i := range g.Pix {
		if g.Pix[i] != back.Pix[i] {
			t.Fatalf("double inversion changed pixel %d", i)
		}
	}
}

func TestRemoveLinesErasesRules(t *testing.T) {
	// white page with one long horizontal black rule and a small text blob
	g := image.NewGray(image.Rect(0, 0, 200, 100))
	for i := range g.Pix {
		g.Pix[i] = 255
	}
	for x := 0; x < 200; x++ {
		g.Pix[50*g.Stride+x] = 0
	}
	g.Pix[20*g.Stride+30] = 0
	g.Pix[20*g.Stride+31] = 0

	cleaned := RemoveLines(g)
	lineRemains := 0
	for x := 0; x < 200; x++ {
		if cleaned.Pix[50*cleaned.Stride+x] == 0 {
			lineRemains++
		}
	}
	if lineRemains > 20 {
		t.Errorf("rule line survived: %d/200 dark pixels left", lineRemains)
	}
}

func TestNormalizeOrientationBestEffort(t *testing.T) {
	const w, h = 1300, 1400
	img := testPage(w, h)

	failing := func(ctx context.Context, g *image.Gray) (int, error) {
		return 0, errors.New("osd unavailable")
	}
	p := Normalize(context.Background(), img, failing, nil)
	if p == nil || p.Base == nil || p.Upright == nil {
		t.Fatal("normalize must succeed even when orientation fails")
	}
	if p.Upright.Bounds().Dx() != w {
		t.Errorf("failed orientation must leave page unrotated")
	}

	rotated := func(ctx context.Context, g *image.Gray) (int, error) {
		return 90, nil
	}
	p = Normalize(context.Background(), img, rotated, nil)
	if p.Upright.Bounds().Dx() != h || p.Upright.Bounds().Dy() != w {
		t.Errorf("90 degree rotation not applied: %v", p.Upright.Bounds())
	}
}

func TestHeaderAndBodyRegions(t *testing.T) {
	g := testPage(100, 400)
	header := HeaderRegion(g)
	if header.Bounds().Dy() != 100 {
		t.Errorf("header height = %d, want 100", header.Bounds().Dy())
	}
	body := BodyRegion(g)
	if body.Bounds().Dy() != 260 {
		t.Errorf("body height = %d, want 260", body.Bounds().Dy())
	}
}
