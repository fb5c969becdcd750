package ocr

import (
	"context"
	"image"
)

// Word is a single recognized token with its engine confidence on the
// 0-100 scale. Negative confidences mark layout artifacts and are excluded
// from scoring.
type Word struct {
	Text       string
	Confidence float64
}

// Recognition is the raw output of one engine pass: the word stream plus the
// engine's own plain-text rendering, which serves as a fallback when no word
// carries a usable confidence.
type Recognition struct {
	Words     []Word
	PlainText string
}

// Backend abstracts the OCR engine so the candidate search can be exercised
// against a stub in tests.
type Backend interface {
	Recognize(ctx context.Context, img *image.Gray, p Params) (Recognition, error)
	Close() error
}
