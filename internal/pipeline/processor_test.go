package processor

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/jromarion/arc-classifier/constants"
	"github.com/jromarion/arc-classifier/gen/ent"
	"github.com/jromarion/arc-classifier/internal/classifier"
	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/ocr"
	"github.com/jromarion/arc-classifier/internal/repository"
)

// fakeDocs keeps document rows in memory, mimicking the status transitions
// the real repository performs.
type fakeDocs struct {
	docs map[uuid.UUID]*ent.Document
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[uuid.UUID]*ent.Document)}
}

func (f *fakeDocs) Create(_ context.Context, req repository.CreateDocumentRequest) (*ent.Document, error) {
	doc := &ent.Document{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Filename:   req.Filename,
		FileExt:    req.FileExt,
		SourceType: req.SourceType,
		Status:     string(constants.DocStatusReceived),
	}
	f.docs[doc.ID] = doc
	return doc, nil
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return doc, nil
}

func (f *fakeDocs) ListForUser(_ context.Context, userID string, _ int) ([]*ent.Document, error) {
	var out []*ent.Document
	for _, d := range f.docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocs) FinishOCR(_ context.Context, id uuid.UUID, out repository.OCROutcome) error {
	doc := f.docs[id]
	doc.Status = string(constants.DocStatusOCROK)
	doc.OcrText = &out.Text
	doc.OcrVariant = &out.Variant
	doc.OcrParams = &out.Params
	doc.OcrScore = &out.Score
	return nil
}

func (f *fakeDocs) FinishClassification(_ context.Context, id uuid.UUID, out repository.ClassificationOutcome) error {
	doc := f.docs[id]
	cat := string(out.Category)
	doc.Status = string(constants.DocStatusClassified)
	doc.Category = &cat
	doc.Confidence = &out.Confidence
	doc.Method = &out.Method
	doc.Keywords = out.Keywords
	doc.ExtractedFields = out.Fields
	return nil
}

func (f *fakeDocs) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	doc := f.docs[id]
	doc.Status = string(constants.DocStatusFailed)
	doc.ErrorMessage = &message
	return nil
}

func (f *fakeDocs) SetStoragePath(_ context.Context, id uuid.UUID, path string) error {
	f.docs[id].StoragePath = &path
	return nil
}

func (f *fakeDocs) SetDocNumber(_ context.Context, id uuid.UUID, number string) error {
	f.docs[id].DocNumber = &number
	return nil
}

func (f *fakeDocs) Delete(_ context.Context, id uuid.UUID) (string, error) {
	delete(f.docs, id)
	return "", nil
}

func (f *fakeDocs) Stats(_ context.Context, _ string) (repository.Stats, error) {
	return repository.Stats{}, nil
}

type fakeExtractor struct {
	res ocr.ExtractionResult
	err error
}

func (f fakeExtractor) Extract(context.Context, string) (ocr.ExtractionResult, error) {
	return f.res, f.err
}

func writeUpload(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("scan"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newProcessor(docs repository.DocumentRepository, ex TextExtractor) *Processor {
	cls := classifier.New(common.ClassifierConfig{}, nil)
	return NewProcessor(nil, docs, nil,
		NewOCRStage(docs, ex, nil),
		NewClassifyStage(docs, cls, 0.2, nil))
}

func TestProcessFileHappyPath(t *testing.T) {
	docs := newFakeDocs()
	ex := fakeExtractor{res: ocr.ExtractionResult{
		Text:    "OFFICIAL RECEIPT amount paid $50.00 payment received",
		Pages:   1,
		Variant: "adaptive",
		Params:  "oem3/psm6",
		Score:   88,
	}}
	p := newProcessor(docs, ex)

	doc, err := p.ProcessFile(context.Background(), "user-1", writeUpload(t, "receipt.png"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Status != string(constants.DocStatusClassified) {
		t.Errorf("status = %s", doc.Status)
	}
	if doc.Category == nil || *doc.Category != string(constants.Receipt) {
		t.Errorf("category = %v", doc.Category)
	}
	if doc.OcrVariant == nil || *doc.OcrVariant != "adaptive" {
		t.Errorf("variant = %v", doc.OcrVariant)
	}
}

func TestProcessFileRejectsUnknownExtension(t *testing.T) {
	p := newProcessor(newFakeDocs(), fakeExtractor{})
	_, err := p.ProcessFile(context.Background(), "user-1", writeUpload(t, "notes.docx"))
	if !errors.Is(err, common.ErrUnsupportedInput) {
		t.Errorf("err = %v, want ErrUnsupportedInput", err)
	}
}

func TestProcessFileOCRFailureMarksFailed(t *testing.T) {
	docs := newFakeDocs()
	p := newProcessor(docs, fakeExtractor{err: errors.New("rasterizer exploded")})

	doc, err := p.ProcessFile(context.Background(), "user-1", writeUpload(t, "broken.pdf"))
	if err == nil {
		t.Fatal("expected error")
	}
	if doc == nil || doc.Status != string(constants.DocStatusFailed) {
		t.Fatalf("doc = %+v, want FAILED status", doc)
	}
	if doc.ErrorMessage == nil || *doc.ErrorMessage == "" {
		t.Error("error message not persisted")
	}
}

func TestProcessFileEmptyTextClassifiesAsOther(t *testing.T) {
	docs := newFakeDocs()
	p := newProcessor(docs, fakeExtractor{res: ocr.ExtractionResult{Text: "", Pages: 1}})

	doc, err := p.ProcessFile(context.Background(), "user-1", writeUpload(t, "blank.png"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Category == nil || *doc.Category != string(constants.Other) {
		t.Errorf("category = %v, want Other", doc.Category)
	}
	if doc.Confidence == nil || *doc.Confidence != 0.0 {
		t.Errorf("confidence = %v, want 0", doc.Confidence)
	}
	if doc.Method == nil || *doc.Method != classifier.MethodInsufficientText {
		t.Errorf("method = %v", doc.Method)
	}
}

func TestClassifyStageExtractsTemplateFields(t *testing.T) {
	docs := newFakeDocs()
	ex := fakeExtractor{res: ocr.ExtractionResult{
		Text: `FM-USTP-ACAD-12 SYLLABUS REVIEW FORM
Course Code: IT-221
indicators remarks yes no`,
		Pages: 1,
	}}
	p := newProcessor(docs, ex)

	doc, err := p.ProcessFile(context.Background(), "user-1", writeUpload(t, "syllabus.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Category == nil || *doc.Category != string(constants.SyllabusReview) {
		t.Fatalf("category = %v", doc.Category)
	}
	var fieldSet map[string]any
	if err := json.Unmarshal(doc.ExtractedFields, &fieldSet); err != nil {
		t.Fatalf("extracted fields not valid JSON: %v", err)
	}
	if fieldSet["document_code"] != "FM-USTP-ACAD-12" {
		t.Errorf("document_code = %v", fieldSet["document_code"])
	}
	if fieldSet["course_code"] != "IT-221" {
		t.Errorf("course_code = %v", fieldSet["course_code"])
	}
}
