package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jromarion/arc-classifier/constants"
	v1 "github.com/jromarion/arc-classifier/gen/proto/arc/v1"
	"github.com/jromarion/arc-classifier/gen/ent"
	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/export"
	processor "github.com/jromarion/arc-classifier/internal/pipeline"
	"github.com/jromarion/arc-classifier/internal/repository"
	"github.com/jromarion/arc-classifier/internal/storage"
)

const ocrPreviewChars = 500

type DocumentService struct {
	v1.UnimplementedDocumentServiceServer
	processor   *processor.Processor
	docs        repository.DocumentRepository
	sequences   repository.SequenceRepository
	archive     *storage.Archive
	exporter    *export.Service
	maxUploadMB int
	logger      *slog.Logger
}

func NewDocumentService(proc *processor.Processor, docs repository.DocumentRepository, sequences repository.SequenceRepository, archive *storage.Archive, exporter *export.Service, maxUploadMB int, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadMB <= 0 {
		maxUploadMB = 16
	}
	return &DocumentService{
		processor:   proc,
		docs:        docs,
		sequences:   sequences,
		archive:     archive,
		exporter:    exporter,
		maxUploadMB: maxUploadMB,
		logger:      logger,
	}
}

// ClassifyDocument implements v1.DocumentServiceServer
func (s *DocumentService) ClassifyDocument(ctx context.Context, req *v1.ClassifyDocumentRequest) (*v1.ClassifyDocumentResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		s.logger.Error("classify request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	path := strings.TrimSpace(req.GetPath())
	content := req.GetContent()
	if path == "" && len(content) == 0 {
		return nil, status.Error(codes.InvalidArgument, "either path or content is required")
	}
	if path != "" && len(content) > 0 {
		return nil, status.Error(codes.InvalidArgument, "path and content are mutually exclusive")
	}

	if len(content) > 0 {
		if len(content) > s.maxUploadMB<<20 {
			return nil, status.Errorf(codes.InvalidArgument, "content exceeds %dMB upload limit", s.maxUploadMB)
		}
		filename := strings.TrimSpace(req.GetFilename())
		if filename == "" {
			return nil, status.Error(codes.InvalidArgument, "filename is required with inline content")
		}
		tmp, cleanup, err := spillToTemp(content, filename)
		if err != nil {
			s.logger.Error("failed to stage inline upload", "error", err)
			return nil, status.Error(codes.Internal, "failed to stage upload")
		}
		defer cleanup()
		path = tmp
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.IsAllowedExt(ext) {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file extension %q", ext)
	}

	s.logger.Info("starting classification",
		"request_id", common.RequestIDFromContext(ctx), "user_id", userID, "path", path)
	doc, err := s.processor.ProcessFile(ctx, userID, path)
	if err != nil && doc == nil {
		return nil, status.Errorf(codes.InvalidArgument, "classify: %v", err)
	}

	resp := &v1.ClassifyDocumentResponse{Document: toProto(doc)}
	if err != nil {
		s.logger.Error("pipeline.failed", "doc_id", doc.ID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.Document, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("get document failed", "id", id, "error", err)
		return nil, status.Error(codes.Internal, "failed to load document")
	}
	return toProto(doc), nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	docs, err := s.docs.ListForUser(ctx, userID, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("list documents failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "failed to list documents")
	}
	out := &v1.ListDocumentsResponse{Documents: make([]*v1.Document, 0, len(docs))}
	for _, d := range docs {
		out.Documents = append(out.Documents, toProto(d))
	}
	return out, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, req *v1.DeleteDocumentRequest) (*v1.DeleteDocumentResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	storagePath, err := s.docs.Delete(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("delete document failed", "id", id, "error", err)
		return nil, status.Error(codes.Internal, "failed to delete document")
	}
	if storagePath != "" && s.archive != nil {
		if err := s.archive.Remove(storagePath); err != nil {
			// The record is gone; an orphaned artifact is only worth a warning.
			s.logger.Warn("failed to remove archived file", "path", storagePath, "error", err)
		}
	}
	return &v1.DeleteDocumentResponse{Deleted: true}, nil
}

func (s *DocumentService) GetStatistics(ctx context.Context, req *v1.GetStatisticsRequest) (*v1.GetStatisticsResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	stats, err := s.docs.Stats(ctx, userID)
	if err != nil {
		s.logger.Error("statistics failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "failed to compute statistics")
	}
	resp := &v1.GetStatisticsResponse{
		Total:             int32(stats.Total),
		ByCategory:        make(map[string]int32, len(stats.ByCategory)),
		AverageConfidence: stats.AverageConfidence,
	}
	for k, v := range stats.ByCategory {
		resp.ByCategory[k] = int32(v)
	}
	return resp, nil
}

func (s *DocumentService) NextDocumentNumber(ctx context.Context, req *v1.NextDocumentNumberRequest) (*v1.NextDocumentNumberResponse, error) {
	year := int(req.GetYear())
	if year == 0 {
		year = time.Now().Year()
	}
	number, err := s.sequences.NextDocumentNumber(ctx, req.GetPrefix(), req.GetDepartment(), year)
	if err != nil {
		s.logger.Error("next document number failed",
			"prefix", req.GetPrefix(), "department", req.GetDepartment(), "year", year, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "next document number: %v", err)
	}
	return &v1.NextDocumentNumberResponse{Number: number}, nil
}

func (s *DocumentService) ExportDocuments(ctx context.Context, req *v1.ExportDocumentsRequest) (*v1.ExportDocumentsResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	xlsx, err := s.exporter.ExportDocumentsXLSX(ctx, userID, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("export.xlsx.failed", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "export documents: %v", err)
	}
	return &v1.ExportDocumentsResponse{Xlsx: xlsx}, nil
}

func spillToTemp(content []byte, filename string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "arc-upload-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(dir) }
	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("write staged upload: %w", err)
	}
	return path, cleanup, nil
}

func toProto(doc *ent.Document) *v1.Document {
	if doc == nil {
		return nil
	}
	out := &v1.Document{
		Id:         doc.ID.String(),
		UserId:     doc.UserID,
		Filename:   doc.Filename,
		SourceType: doc.SourceType,
		Status:     doc.Status,
		Keywords:   doc.Keywords,
		CreatedAt:  doc.CreatedAt.UTC().Format(time.RFC3339),
	}
	if doc.Category != nil {
		out.Category = *doc.Category
	}
	if doc.Confidence != nil {
		out.Confidence = *doc.Confidence
	}
	if doc.Method != nil {
		out.Method = *doc.Method
	}
	if len(doc.ExtractedFields) > 0 {
		out.ExtractedFieldsJson = string(doc.ExtractedFields)
	}
	if doc.DocNumber != nil {
		out.DocNumber = *doc.DocNumber
	}
	if doc.StoragePath != nil {
		out.StoragePath = *doc.StoragePath
	}
	if doc.OcrText != nil {
		preview := []rune(*doc.OcrText)
		if len(preview) > ocrPreviewChars {
			preview = preview[:ocrPreviewChars]
		}
		out.OcrTextPreview = string(preview)
	}
	if doc.OcrVariant != nil {
		out.OcrVariant = *doc.OcrVariant
	}
	if doc.OcrParams != nil {
		out.OcrParams = *doc.OcrParams
	}
	if doc.OcrScore != nil {
		out.OcrScore = *doc.OcrScore
	}
	if doc.ErrorMessage != nil {
		out.Error = *doc.ErrorMessage
	}
	return out
}
