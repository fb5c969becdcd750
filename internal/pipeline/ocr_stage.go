package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jromarion/arc-classifier/constants"
	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/ocr"
	"github.com/jromarion/arc-classifier/internal/repository"
)

// TextExtractor is the slice of the OCR surface the stage needs, kept small
// so tests can stub it.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

type OCRStage struct {
	Docs      repository.DocumentRepository
	Extractor TextExtractor
	Logger    *slog.Logger
}

func NewOCRStage(docs repository.DocumentRepository, extractor TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{Docs: docs, Extractor: extractor, Logger: logger}
}

// Run extracts text for a registered document and persists it, advancing
// the document to OCR_OK. An empty page is a valid outcome here; the
// classifier downgrades it later.
func (s *OCRStage) Run(ctx context.Context, docID uuid.UUID, sourcePath string) (ocr.ExtractionResult, error) {
	doc, err := s.Docs.GetByID(ctx, docID)
	if err != nil {
		return ocr.ExtractionResult{}, fmt.Errorf("get document: %w", err)
	}

	if constants.MapExtToFormat(doc.FileExt) == "" {
		return ocr.ExtractionResult{}, fmt.Errorf("%w: format %s", common.ErrUnsupportedInput, doc.FileExt)
	}

	res, err := s.Extractor.Extract(ctx, sourcePath)
	if err != nil {
		return res, err
	}

	out := repository.OCROutcome{
		Text:    res.Text,
		Variant: res.Variant,
		Params:  res.Params,
		Score:   res.Score,
	}
	if err := s.Docs.FinishOCR(ctx, docID, out); err != nil {
		return res, fmt.Errorf("persist ocr result: %w", err)
	}
	return res, nil
}
