package ocr

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/imaging"
)

// Candidate is one (variant, params) recognition attempt with its quality
// score.
type Candidate struct {
	Variant string
	Params  Params
	Text    string
	Score   float64
	Words   int
}

// PageText is the recognition output for one page: the winning full-page
// candidate plus the targeted header and body passes.
type PageText struct {
	Header string
	Body   string
	Best   Candidate
}

// Merged joins the non-empty sections with blank lines and caps the result
// at maxChars runes. The header leads so the classifier sees the form title
// first.
func (pt PageText) Merged(maxChars int) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{pt.Header, pt.Best.Text, pt.Body} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	merged := strings.Join(parts, "\n\n")
	if maxChars > 0 {
		if r := []rune(merged); len(r) > maxChars {
			merged = string(r[:maxChars])
		}
	}
	return merged
}

// Searcher runs the exhaustive recognition search: every preprocessing
// variant against every engine parameterization, keeping the best-scoring
// candidate. The scan is sequential on purpose: ties are broken by candidate
// order, so results are deterministic for a given page.
type Searcher struct {
	backend Backend
	dpi     int
	logger  *slog.Logger
}

func NewSearcher(backend Backend, dpi int, logger *slog.Logger) *Searcher {
	if dpi <= 0 {
		dpi = 300
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{backend: backend, dpi: dpi, logger: logger}
}

// SearchPage recognizes one normalized page. Individual candidate failures
// are logged and skipped; only context cancellation and an unavailable
// engine abort the search.
func (s *Searcher) SearchPage(ctx context.Context, page *imaging.Page) (PageText, error) {
	var out PageText
	best := Candidate{Score: -1}

	variants := imaging.Variants(page)
	paramSet := FullPageParams(s.dpi)
	for _, v := range variants {
		for _, p := range paramSet {
			cand, err := s.try(ctx, v, p)
			if err != nil {
				if fatal(err) {
					return PageText{}, err
				}
				s.logger.Debug("candidate failed",
					"variant", v.Label, "params", p.String(), "error", err)
				continue
			}
			if betterThan(cand, best) {
				s.logger.Debug("new best candidate",
					"variant", cand.Variant,
					"params", cand.Params.String(),
					"score", cand.Score,
					"chars", len(cand.Text))
				best = cand
			}
		}
	}
	if best.Score < 0 {
		best = Candidate{}
	}
	out.Best = best

	// Targeted passes are best effort; a failure just leaves the section
	// empty.
	if rec, err := s.backend.Recognize(ctx, imaging.HeaderRegion(page.Base), HeaderParams(s.dpi)); err == nil {
		out.Header = sectionText(rec)
	} else if fatal(err) {
		return PageText{}, err
	} else {
		s.logger.Debug("header pass failed", "error", err)
	}
	if rec, err := s.backend.Recognize(ctx, imaging.BodyRegion(page.Base), BodyParams(s.dpi)); err == nil {
		out.Body = sectionText(rec)
	} else if fatal(err) {
		return PageText{}, err
	} else {
		s.logger.Debug("body pass failed", "error", err)
	}

	return out, nil
}

func (s *Searcher) try(ctx context.Context, v imaging.Variant, p Params) (Candidate, error) {
	rec, err := s.backend.Recognize(ctx, v.Image, p)
	if err != nil {
		return Candidate{}, err
	}
	score, scored := medianConfidence(rec.Words)
	text := joinWords(rec.Words)
	if scored == 0 {
		// No confident words. The plain-text pass sometimes still reads
		// something; keep it at score zero so any confident candidate wins.
		text = rec.PlainText
	}
	return Candidate{
		Variant: v.Label,
		Params:  p,
		Text:    strings.TrimSpace(text),
		Score:   score,
		Words:   scored,
	}, nil
}

// betterThan prefers the higher score, then the longer text, then the
// earlier candidate.
func betterThan(cand, best Candidate) bool {
	if cand.Text == "" {
		return false
	}
	if cand.Score != best.Score {
		return cand.Score > best.Score
	}
	return len(cand.Text) > len(best.Text)
}

// medianConfidence scores a word stream by the median of its non-negative
// confidences. Median rather than mean: one garbage token must not sink an
// otherwise clean read.
func medianConfidence(words []Word) (float64, int) {
	confs := make([]float64, 0, len(words))
	for _, w := range words {
		if w.Confidence >= 0 {
			confs = append(confs, w.Confidence)
		}
	}
	if len(confs) == 0 {
		return 0, 0
	}
	sort.Float64s(confs)
	n := len(confs)
	if n%2 == 1 {
		return confs[n/2], n
	}
	return (confs[n/2-1] + confs[n/2]) / 2, n
}

func joinWords(words []Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w.Text != "" {
			parts = append(parts, w.Text)
		}
	}
	return strings.Join(parts, " ")
}

func sectionText(rec Recognition) string {
	if t := strings.TrimSpace(rec.PlainText); t != "" {
		return t
	}
	return strings.TrimSpace(joinWords(rec.Words))
}

func fatal(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, common.ErrOCRUnavailable)
}
