package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jromarion/arc-classifier/constants"
	"github.com/jromarion/arc-classifier/gen/ent"
	"github.com/jromarion/arc-classifier/gen/ent/document"
)

// CreateDocumentRequest wraps parameters for registering an uploaded file.
type CreateDocumentRequest struct {
	UserID     string
	Filename   string
	FileExt    string
	SourceType string
}

// OCROutcome carries the stage-1 results persisted on the document row.
type OCROutcome struct {
	Text    string
	Variant string
	Params  string
	Score   float64
}

// ClassificationOutcome carries the stage-2 results.
type ClassificationOutcome struct {
	Category   constants.Category
	Confidence float64
	Method     string
	Keywords   []string
	Fields     json.RawMessage
}

// Stats summarizes one user's classified documents.
type Stats struct {
	Total             int
	ByCategory        map[string]int
	AverageConfidence float64
}

type DocumentRepository interface {
	Create(ctx context.Context, req CreateDocumentRequest) (*ent.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]*ent.Document, error)
	FinishOCR(ctx context.Context, id uuid.UUID, out OCROutcome) error
	FinishClassification(ctx context.Context, id uuid.UUID, out ClassificationOutcome) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	SetStoragePath(ctx context.Context, id uuid.UUID, path string) error
	SetDocNumber(ctx context.Context, id uuid.UUID, number string) error
	Delete(ctx context.Context, id uuid.UUID) (storagePath string, err error)
	Stats(ctx context.Context, userID string) (Stats, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req CreateDocumentRequest) (*ent.Document, error) {
	doc, err := r.client.Document.Create().
		SetUserID(req.UserID).
		SetFilename(req.Filename).
		SetFileExt(req.FileExt).
		SetSourceType(req.SourceType).
		SetStatus(string(constants.DocStatusReceived)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "user_id", req.UserID, "filename", req.Filename, "error", err)
		return nil, err
	}
	return doc, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.client.Document.Get(ctx, id)
}

func (r *documentRepository) ListForUser(ctx context.Context, userID string, limit int) ([]*ent.Document, error) {
	if limit <= 0 {
		limit = 50
	}
	docs, err := r.client.Document.Query().
		Where(document.UserID(userID)).
		Order(ent.Desc(document.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "user_id", userID, "error", err)
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) FinishOCR(ctx context.Context, id uuid.UUID, out OCROutcome) error {
	return r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocStatusOCROK)).
		SetOcrText(out.Text).
		SetOcrVariant(out.Variant).
		SetOcrParams(out.Params).
		SetOcrScore(out.Score).
		Exec(ctx)
}

func (r *documentRepository) FinishClassification(ctx context.Context, id uuid.UUID, out ClassificationOutcome) error {
	upd := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocStatusClassified)).
		SetCategory(string(out.Category)).
		SetConfidence(out.Confidence).
		SetMethod(out.Method).
		SetKeywords(out.Keywords)
	if len(out.Fields) > 0 {
		upd = upd.SetExtractedFields(out.Fields)
	}
	return upd.Exec(ctx)
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	return r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocStatusFailed)).
		SetErrorMessage(message).
		Exec(ctx)
}

func (r *documentRepository) SetStoragePath(ctx context.Context, id uuid.UUID, path string) error {
	return r.client.Document.UpdateOneID(id).SetStoragePath(path).Exec(ctx)
}

func (r *documentRepository) SetDocNumber(ctx context.Context, id uuid.UUID, number string) error {
	return r.client.Document.UpdateOneID(id).SetDocNumber(number).Exec(ctx)
}

// Delete removes the row and reports the archived file path so the caller
// can remove the artifact too.
func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if err := r.client.Document.DeleteOneID(id).Exec(ctx); err != nil {
		return "", err
	}
	if doc.StoragePath != nil {
		return *doc.StoragePath, nil
	}
	return "", nil
}

func (r *documentRepository) Stats(ctx context.Context, userID string) (Stats, error) {
	docs, err := r.client.Document.Query().
		Where(document.UserID(userID)).
		Select(document.FieldCategory, document.FieldConfidence).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to compute stats", "user_id", userID, "error", err)
		return Stats{}, err
	}

	stats := Stats{Total: len(docs), ByCategory: make(map[string]int)}
	var confSum float64
	var confCount int
	for _, d := range docs {
		if d.Category != nil {
			stats.ByCategory[*d.Category]++
		}
		if d.Confidence != nil {
			confSum += *d.Confidence
			confCount++
		}
	}
	if confCount > 0 {
		// round to two decimals like the rest of the confidence surface
		stats.AverageConfidence = float64(int(confSum/float64(confCount)*100+0.5)) / 100
	}
	return stats, nil
}
