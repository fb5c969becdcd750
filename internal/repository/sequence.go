package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jromarion/arc-classifier/gen/ent"
	"github.com/jromarion/arc-classifier/gen/ent/docsequence"
)

// SequenceRepository hands out office filing numbers. Numbers are unique
// and monotonically increasing per (prefix, department, year); gaps from
// rolled-back callers are acceptable, reuse is not.
type SequenceRepository interface {
	NextDocumentNumber(ctx context.Context, prefix, department string, year int) (string, error)
}

type sequenceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSequenceRepository(client *ent.Client, logger *slog.Logger) SequenceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &sequenceRepository{client: client, logger: logger}
}

func (r *sequenceRepository) NextDocumentNumber(ctx context.Context, prefix, department string, year int) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	department = strings.ToUpper(strings.TrimSpace(department))
	if prefix == "" || department == "" || year <= 0 {
		return "", fmt.Errorf("sequence key incomplete: prefix=%q department=%q year=%d", prefix, department, year)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Row lock serializes concurrent takers of the same sequence.
	seq, err := tx.DocSequence.Query().
		Where(
			docsequence.Prefix(prefix),
			docsequence.Department(department),
			docsequence.Year(year),
		).
		ForUpdate().
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		seq, err = tx.DocSequence.Create().
			SetPrefix(prefix).
			SetDepartment(department).
			SetYear(year).
			SetCounter(1).
			Save(ctx)
		if err != nil {
			return "", err
		}
	case err != nil:
		return "", err
	default:
		seq, err = seq.Update().SetCounter(seq.Counter + 1).Save(ctx)
		if err != nil {
			return "", err
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}

	number := fmt.Sprintf("%s-%s-%d-%04d", prefix, department, year, seq.Counter)
	r.logger.Debug("issued document number", "number", number)
	return number, nil
}
