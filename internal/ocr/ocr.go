package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/jromarion/arc-classifier/constants"
	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/imaging"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary for the orientation pass; if empty -> "tesseract"

	Language    string // default "eng"
	TessdataDir string

	DPI      int // rasterization DPI for PDFs, default 300
	MaxPages int // PDF page cap, 0 = no limit
	MaxChars int // merged text cap in runes, 0 = no cap
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Variant    string // preprocessing variant of the winning candidate
	Params     string // engine parameters of the winning candidate
	Score      float64
	Language   string
	Duration   time.Duration
	Warnings   []string
}

// Extractor turns a document file into text via the exhaustive candidate
// search. It owns orientation detection and PDF rasterization; character
// recognition itself goes through the injected Backend.
type Extractor struct {
	cfg      Config
	searcher *Searcher
	runner   Runner
	osd      osdDetector
	logger   *slog.Logger
}

func NewExtractor(cfg Config, backend Backend, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	runner := execRunner{}
	return &Extractor{
		cfg:      cfg,
		searcher: NewSearcher(backend, cfg.DPI, logger),
		runner:   runner,
		osd:      osdDetector{runner: runner, tesseract: cfg.Tesseract},
		logger:   logger,
	}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting extraction", "path", path, "ext", ext)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("unsupported extension", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("%w: extension %q", common.ErrUnsupportedInput, ext)
	}
}

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ExtractionResult{}, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("%w: decode %s: %v", common.ErrUnsupportedInput, path, err)
	}
	e.logger.Debug("decoded image", "path", path, "format", format)

	page := imaging.Normalize(ctx, img, e.osd.Detect, e.logger)
	pt, err := e.searcher.SearchPage(ctx, page)
	if err != nil {
		return ExtractionResult{}, err
	}
	return ExtractionResult{
		Text:       pt.Merged(e.cfg.MaxChars),
		Pages:      1,
		SourceType: constants.IMAGE,
		Variant:    pt.Best.Variant,
		Params:     pt.Best.Params.String(),
		Score:      pt.Best.Score,
		Language:   e.cfg.Language,
	}, nil
}
