package processor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jromarion/arc-classifier/constants"
	"github.com/jromarion/arc-classifier/gen/ent"
	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/repository"
	"github.com/jromarion/arc-classifier/internal/storage"
)

// Processor coordinates the document lifecycle: register, archive, OCR,
// classify. Every step advances or fails the document row, so a crashed
// run leaves an inspectable status behind.
type Processor struct {
	Logger   *slog.Logger
	Docs     repository.DocumentRepository
	Archive  *storage.Archive
	OCR      *OCRStage
	Classify *ClassifyStage
}

func NewProcessor(logger *slog.Logger, docs repository.DocumentRepository, archive *storage.Archive, ocrStage *OCRStage, classifyStage *ClassifyStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Docs: docs, Archive: archive, OCR: ocrStage, Classify: classifyStage}
}

// ProcessFile ingests one file for a user and runs it through both stages.
// It returns the final document row; on stage failure the row is marked
// FAILED and the error is returned alongside whatever was persisted.
func (p *Processor) ProcessFile(ctx context.Context, userID, sourcePath string) (*ent.Document, error) {
	ext := constants.NormalizeExt(filepath.Ext(sourcePath))
	if !constants.IsAllowedExt(ext) {
		return nil, fmt.Errorf("%w: extension %q", common.ErrUnsupportedInput, ext)
	}

	doc, err := p.Docs.Create(ctx, repository.CreateDocumentRequest{
		UserID:     userID,
		Filename:   filepath.Base(sourcePath),
		FileExt:    ext,
		SourceType: constants.MapExtToFormat(ext),
	})
	if err != nil {
		return nil, err
	}

	// Archive before OCR so the original survives even if recognition
	// fails. Archival itself is not fatal; we can still classify.
	if p.Archive != nil {
		if stored, err := p.Archive.Store(userID, filepath.Base(sourcePath), sourcePath); err != nil {
			p.Logger.Warn("processor.archive.failed", "doc_id", doc.ID, "error", err)
		} else if err := p.Docs.SetStoragePath(ctx, doc.ID, stored); err != nil {
			p.Logger.Warn("processor.archive.persist_failed", "doc_id", doc.ID, "error", err)
		}
	}

	ocrRes, err := p.OCR.Run(ctx, doc.ID, sourcePath)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "doc_id", doc.ID, "err", err)
		p.fail(ctx, doc.ID, err)
		return p.reload(ctx, doc), err
	}
	p.Logger.Info("processor.ocr.ok",
		"doc_id", doc.ID,
		"pages", ocrRes.Pages,
		"variant", ocrRes.Variant,
		"params", ocrRes.Params,
		"score", ocrRes.Score,
	)

	clsRes, err := p.Classify.Run(ctx, doc.ID)
	if err != nil {
		p.Logger.Error("processor.classify.failed", "doc_id", doc.ID, "err", err)
		p.fail(ctx, doc.ID, err)
		return p.reload(ctx, doc), err
	}
	p.Logger.Info("processor.classify.ok",
		"doc_id", doc.ID,
		"category", clsRes.Category,
		"confidence", clsRes.Confidence,
		"method", clsRes.Method,
	)

	return p.reload(ctx, doc), nil
}

func (p *Processor) fail(ctx context.Context, docID uuid.UUID, cause error) {
	if err := p.Docs.MarkFailed(ctx, docID, cause.Error()); err != nil {
		p.Logger.Error("processor.mark_failed.failed", "doc_id", docID, "err", err)
	}
}

func (p *Processor) reload(ctx context.Context, doc *ent.Document) *ent.Document {
	fresh, err := p.Docs.GetByID(ctx, doc.ID)
	if err != nil {
		return doc
	}
	return fresh
}
