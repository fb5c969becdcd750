package ocr

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/jromarion/arc-classifier/constants"
	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/imaging"
)

// extractPDF validates the document, rasterizes it page by page and runs the
// candidate search on each page. A page that fails to recognize contributes
// nothing instead of failing the document.
func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	// Fail fast on corrupt files before spending minutes on rasterization.
	if err := api.ValidateFile(path, nil); err != nil {
		return ExtractionResult{SourceType: constants.PDF},
			fmt.Errorf("%w: pdf validation: %v", common.ErrUnsupportedInput, err)
	}
	totalPages, err := api.PageCountFile(path)
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF},
			fmt.Errorf("%w: pdf page count: %v", common.ErrUnsupportedInput, err)
	}
	e.logger.Debug("validated pdf", "path", path, "pages", totalPages)

	tmpDir, err := os.MkdirTemp("", "arc-pp-*")
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF}, err
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF, Warnings: []string{string(errb)}},
			fmt.Errorf("rasterize pdf: %w", err)
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return ExtractionResult{SourceType: constants.PDF, Warnings: []string{"pdftoppm produced no images"}},
			fmt.Errorf("no pages rendered")
	}

	res := ExtractionResult{
		SourceType: constants.PDF,
		Pages:      len(matches),
		Language:   e.cfg.Language,
		Score:      -1,
	}
	var pageTexts []string
	for i, pagePath := range matches {
		text, pt, err := e.recognizePageFile(ctx, pagePath)
		if err != nil {
			if fatal(err) {
				return res, err
			}
			e.logger.Warn("page recognition failed", "page", i+1, "error", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: %v", i+1, err))
			continue
		}
		if text != "" {
			pageTexts = append(pageTexts, text)
		}
		// Report the strongest page's winning candidate for the document.
		if pt.Best.Score > res.Score {
			res.Variant = pt.Best.Variant
			res.Params = pt.Best.Params.String()
			res.Score = pt.Best.Score
		}
	}
	if res.Score < 0 {
		res.Score = 0
	}

	merged := strings.Join(pageTexts, "\n\n")
	if e.cfg.MaxChars > 0 {
		if r := []rune(merged); len(r) > e.cfg.MaxChars {
			merged = string(r[:e.cfg.MaxChars])
		}
	}
	res.Text = merged
	return res, nil
}

func (e *Extractor) recognizePageFile(ctx context.Context, path string) (string, PageText, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", PageText{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", PageText{}, fmt.Errorf("decode rendered page: %w", err)
	}
	page := imaging.Normalize(ctx, img, e.osd.Detect, e.logger)
	pt, err := e.searcher.SearchPage(ctx, page)
	if err != nil {
		return "", PageText{}, err
	}
	return pt.Merged(0), pt, nil
}
