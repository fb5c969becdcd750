package imaging

import "image"

// Variant is one preprocessed rendering of a page, labeled for logging and
// scoring diagnostics.
type Variant struct {
	Label string
	Image *image.Gray
}

// Variants produces the fixed, ordered set of preprocessed candidates for a
// normalized page. The order is part of the recognition contract: when two
// candidates tie on confidence and text length, the earlier variant wins,
// so reordering this list changes results.
func Variants(p *Page) []Variant {
	base := p.Base

	adaptive := AdaptiveThreshold(base, 41, 10)
	otsu := OtsuThreshold(base)
	denoised := Denoise(otsu)
	invDen := Invert(denoised)
	invAdaptive := Invert(adaptive)

	return []Variant{
		{"gray", p.Upright},
		{"gray_eq", base},
		{"gray_clahe", CLAHE(p.Upright, 2.0, 8)},
		{"bilateral", Bilateral(base, 50, 50)},
		{"sharpened", Unsharp(base)},
		{"denoised", denoised},
		{"no_lines_denoised", RemoveLines(denoised)},
		{"dilated", Dilate(denoised, 2, 2)},
		{"adaptive", adaptive},
		{"no_lines_adaptive", RemoveLines(adaptive)},
		{"opened", Open(denoised, 2, 2)},
		{"closed", Close(denoised, 2, 2)},
		{"blackhat", BlackHat(base, 2, 2)},
		{"inverted_denoised", invDen},
		{"inverted_adaptive", invAdaptive},
	}
}

// VariantLabels lists the candidate labels in production order.
func VariantLabels() []string {
	labels := make([]string, 0, 15)
	for _, v := range Variants(&Page{
		Upright: image.NewGray(image.Rect(0, 0, 1, 1)),
		Base:    image.NewGray(image.Rect(0, 0, 1, 1)),
	}) {
		labels = append(labels, v.Label)
	}
	return labels
}
