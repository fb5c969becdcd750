package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jromarion/arc-classifier/internal/classifier"
	"github.com/jromarion/arc-classifier/internal/fields"
	"github.com/jromarion/arc-classifier/internal/repository"
)

type ClassifyStage struct {
	Docs       repository.DocumentRepository
	Classifier *classifier.Classifier
	Logger     *slog.Logger

	// RoutingCutoff flags results too uncertain for automatic filing.
	// Documents below it still classify and persist; they just get a
	// review warning in the log stream.
	RoutingCutoff float64
}

func NewClassifyStage(docs repository.DocumentRepository, cls *classifier.Classifier, routingCutoff float64, logger *slog.Logger) *ClassifyStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassifyStage{Docs: docs, Classifier: cls, Logger: logger, RoutingCutoff: routingCutoff}
}

// Run classifies the stored OCR text and, where the category has a field
// template, extracts and validates the structured fields. Field problems
// are logged, never fatal: a classified document with imperfect fields
// beats an unclassified one.
func (s *ClassifyStage) Run(ctx context.Context, docID uuid.UUID) (classifier.Result, error) {
	doc, err := s.Docs.GetByID(ctx, docID)
	if err != nil {
		return classifier.Result{}, fmt.Errorf("get document: %w", err)
	}

	var text string
	if doc.OcrText != nil {
		text = *doc.OcrText
	}

	result := s.Classifier.Classify(text)
	if result.Confidence < s.RoutingCutoff {
		s.Logger.Warn("confidence below filing cutoff, manual review suggested",
			"doc_id", docID, "category", result.Category,
			"confidence", result.Confidence, "cutoff", s.RoutingCutoff)
	}

	var fieldJSON json.RawMessage
	if extractor, ok := fields.ForCategory(result.Category); ok {
		fieldSet := extractor.Extract(text)
		if err := fields.ValidateFieldSet(result.Category, fieldSet); err != nil {
			s.Logger.Warn("extracted fields failed schema validation",
				"doc_id", docID, "category", result.Category, "error", err)
		}
		if raw, err := json.Marshal(fieldSet); err != nil {
			s.Logger.Warn("failed to encode extracted fields", "doc_id", docID, "error", err)
		} else {
			fieldJSON = raw
		}
	}

	out := repository.ClassificationOutcome{
		Category:   result.Category,
		Confidence: result.Confidence,
		Method:     result.Method,
		Keywords:   result.Keywords,
		Fields:     fieldJSON,
	}
	if err := s.Docs.FinishClassification(ctx, docID, out); err != nil {
		return result, fmt.Errorf("persist classification: %w", err)
	}
	return result, nil
}
