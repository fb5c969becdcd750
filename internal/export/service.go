package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jromarion/arc-classifier/internal/repository"
)

// Service is a tiny façade over the document repository that produces XLSX
// registers for office reporting.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) listing a user's
// documents, newest first, up to limit (0 = repository default).
func (s *Service) ExportDocumentsXLSX(ctx context.Context, userID string, limit int) ([]byte, error) {
	start := time.Now()

	docs, err := s.docs.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Received",
		"Document Number",
		"Filename",
		"Category",
		"Confidence",
		"Method",
		"Status",
		"Keywords",
		"Archived Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.CreatedAt.Format("2006-01-02 15:04"))
		write(2, strval(d.DocNumber))
		write(3, d.Filename)
		write(4, strval(d.Category))
		if d.Confidence != nil {
			write(5, *d.Confidence)
		} else {
			write(5, "")
		}
		write(6, strval(d.Method))
		write(7, d.Status)
		write(8, strings.Join(d.Keywords, ", "))
		write(9, strval(d.StoragePath))
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("exported documents workbook",
		"user_id", userID,
		"rows", row-2,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strval(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
