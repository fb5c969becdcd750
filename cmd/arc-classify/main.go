// arc-classify runs the recognition and classification pipeline on a single
// file and prints the result as JSON. No database required; useful for
// tuning preprocessing and rule weights against a stack of sample scans.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jromarion/arc-classifier/internal/classifier"
	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/fields"
	"github.com/jromarion/arc-classifier/internal/ocr"
)

type output struct {
	Path       string         `json:"path"`
	Category   string         `json:"category"`
	Confidence float64        `json:"confidence"`
	Method     string         `json:"method"`
	Keywords   []string       `json:"keywords"`
	Fields     map[string]any `json:"fields,omitempty"`
	Variant    string         `json:"ocr_variant"`
	Params     string         `json:"ocr_params"`
	Score      float64        `json:"ocr_score"`
	Pages      int            `json:"pages"`
	DurationMS int64          `json:"duration_ms"`
	Text       string         `json:"text,omitempty"`
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "arc-classify <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	backend, err := ocr.NewTesseractBackend(cfg.OCR.Language, cfg.OCR.TessdataDir)
	if err != nil {
		logger.Error("ocr engine unavailable", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.MaxPages,
		MaxChars:    cfg.OCR.MaxChars,
	}, backend, logger)

	start := time.Now()
	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	cls := classifier.New(cfg.Classifier, logger)
	result := cls.Classify(res.Text)

	out := output{
		Path:       path,
		Category:   string(result.Category),
		Confidence: result.Confidence,
		Method:     result.Method,
		Keywords:   result.Keywords,
		Variant:    res.Variant,
		Params:     res.Params,
		Score:      res.Score,
		Pages:      res.Pages,
		DurationMS: time.Since(start).Milliseconds(),
		Text:       res.Text,
	}
	if fx, ok := fields.ForCategory(result.Category); ok {
		out.Fields = fx.Extract(res.Text)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
