package ocr

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/imaging"
)

// stubBackend scripts responses by call order. The search visits candidates
// in a fixed order (15 variants x 6 parameter sets, then header, then body),
// so call indices identify candidates exactly.
type stubBackend struct {
	fn    func(call int, p Params) (Recognition, error)
	calls int
}

func (s *stubBackend) Recognize(_ context.Context, _ *image.Gray, p Params) (Recognition, error) {
	c := s.calls
	s.calls++
	return s.fn(c, p)
}

func (s *stubBackend) Close() error { return nil }

func words(conf float64, texts ...string) []Word {
	out := make([]Word, 0, len(texts))
	for _, t := range texts {
		out = append(out, Word{Text: t, Confidence: conf})
	}
	return out
}

func testSearchPage(w, h int) *imaging.Page {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = 250
	}
	for y := h / 3; y < 2*h/3; y++ {
		for x := w / 4; x < 3*w/4; x++ {
			g.Pix[y*g.Stride+x] = 10
		}
	}
	return &imaging.Page{Upright: g, Base: g}
}

const fullPageCalls = 15 * 6

func TestMedianConfidence(t *testing.T) {
	tests := []struct {
		name   string
		words  []Word
		score  float64
		scored int
	}{
		{"empty", nil, 0, 0},
		{"single", words(80, "a"), 80, 1},
		{"odd", []Word{{"a", 10}, {"b", 90}, {"c", 50}}, 50, 3},
		{"even", []Word{{"a", 40}, {"b", 60}}, 50, 2},
		{"negatives excluded", []Word{{"a", -1}, {"b", 70}}, 70, 1},
		{"all negative", []Word{{"a", -1}, {"b", -1}}, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, scored := medianConfidence(tc.words)
			if score != tc.score || scored != tc.scored {
				t.Errorf("got (%v, %d), want (%v, %d)", score, scored, tc.score, tc.scored)
			}
		})
	}
}

func TestBetterThan(t *testing.T) {
	base := Candidate{Text: "hello world", Score: 50}
	tests := []struct {
		name string
		cand Candidate
		want bool
	}{
		{"higher score wins", Candidate{Text: "x", Score: 60}, true},
		{"lower score loses", Candidate{Text: "much longer text here", Score: 40}, false},
		{"tie longer text wins", Candidate{Text: "hello world plus", Score: 50}, true},
		{"tie shorter text loses", Candidate{Text: "hello", Score: 50}, false},
		{"tie equal length loses", Candidate{Text: "HELLO WORLD", Score: 50}, false},
		{"empty never wins", Candidate{Text: "", Score: 99}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := betterThan(tc.cand, base); got != tc.want {
				t.Errorf("betterThan = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSearchPagePicksHighestMedian(t *testing.T) {
	stub := &stubBackend{fn: func(call int, p Params) (Recognition, error) {
		switch call {
		case 10:
			return Recognition{Words: words(90, "winning", "candidate")}, nil
		case fullPageCalls:
			return Recognition{PlainText: "FORM TITLE"}, nil
		case fullPageCalls + 1:
			return Recognition{PlainText: "body section"}, nil
		default:
			return Recognition{Words: words(50, "mediocre", "read")}, nil
		}
	}}
	s := NewSearcher(stub, 300, nil)

	pt, err := s.SearchPage(context.Background(), testSearchPage(64, 64))
	if err != nil {
		t.Fatal(err)
	}
	if pt.Best.Text != "winning candidate" {
		t.Errorf("best text = %q", pt.Best.Text)
	}
	if pt.Best.Score != 90 {
		t.Errorf("best score = %v, want 90", pt.Best.Score)
	}
	if pt.Header != "FORM TITLE" || pt.Body != "body section" {
		t.Errorf("header/body = %q / %q", pt.Header, pt.Body)
	}

	merged := pt.Merged(0)
	want := "FORM TITLE\n\nwinning candidate\n\nbody section"
	if merged != want {
		t.Errorf("merged = %q, want %q", merged, want)
	}
}

func TestSearchPageFullTieKeepsFirstCandidate(t *testing.T) {
	stub := &stubBackend{fn: func(call int, p Params) (Recognition, error) {
		return Recognition{Words: words(75, "same", "everywhere")}, nil
	}}
	s := NewSearcher(stub, 300, nil)

	pt, err := s.SearchPage(context.Background(), testSearchPage(64, 64))
	if err != nil {
		t.Fatal(err)
	}
	if pt.Best.Variant != "gray" {
		t.Errorf("tie should keep the first variant, got %q", pt.Best.Variant)
	}
	if got := pt.Best.Params.String(); got != "oem3/psm6" {
		t.Errorf("tie should keep the first params, got %q", got)
	}
}

func TestSearchPageDeterministic(t *testing.T) {
	mk := func() *stubBackend {
		return &stubBackend{fn: func(call int, p Params) (Recognition, error) {
			if call%7 == 3 {
				return Recognition{}, errors.New("engine hiccup")
			}
			return Recognition{Words: words(float64(40+call%30), "text", "chunk")}, nil
		}}
	}
	a, err := NewSearcher(mk(), 300, nil).SearchPage(context.Background(), testSearchPage(64, 64))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSearcher(mk(), 300, nil).SearchPage(context.Background(), testSearchPage(64, 64))
	if err != nil {
		t.Fatal(err)
	}
	if a.Best != b.Best || a.Header != b.Header || a.Body != b.Body {
		t.Errorf("same input produced different results:\n%+v\n%+v", a, b)
	}
}

func TestSearchPagePlainTextFallback(t *testing.T) {
	stub := &stubBackend{fn: func(call int, p Params) (Recognition, error) {
		if call < fullPageCalls {
			return Recognition{PlainText: "faint but legible"}, nil
		}
		return Recognition{}, nil
	}}
	s := NewSearcher(stub, 300, nil)

	pt, err := s.SearchPage(context.Background(), testSearchPage(64, 64))
	if err != nil {
		t.Fatal(err)
	}
	if pt.Best.Text != "faint but legible" {
		t.Errorf("fallback text = %q", pt.Best.Text)
	}
	if pt.Best.Score != 0 {
		t.Errorf("fallback score = %v, want 0", pt.Best.Score)
	}
}

func TestSearchPageSkipsCandidateErrors(t *testing.T) {
	stub := &stubBackend{fn: func(call int, p Params) (Recognition, error) {
		if call == 0 {
			return Recognition{Words: words(95, "early", "winner")}, nil
		}
		return Recognition{}, errors.New("candidate blew up")
	}}
	s := NewSearcher(stub, 300, nil)

	pt, err := s.SearchPage(context.Background(), testSearchPage(64, 64))
	if err != nil {
		t.Fatal(err)
	}
	if pt.Best.Text != "early winner" {
		t.Errorf("best = %q, want the one surviving candidate", pt.Best.Text)
	}
}

func TestSearchPageAbortsWhenEngineUnavailable(t *testing.T) {
	stub := &stubBackend{fn: func(call int, p Params) (Recognition, error) {
		return Recognition{}, common.ErrOCRUnavailable
	}}
	s := NewSearcher(stub, 300, nil)

	_, err := s.SearchPage(context.Background(), testSearchPage(64, 64))
	if !errors.Is(err, common.ErrOCRUnavailable) {
		t.Errorf("err = %v, want ErrOCRUnavailable", err)
	}
	if stub.calls != 1 {
		t.Errorf("search kept going after fatal error: %d calls", stub.calls)
	}
}

func TestMergedTruncatesRunes(t *testing.T) {
	pt := PageText{Best: Candidate{Text: strings.Repeat("é", 100)}}
	got := pt.Merged(10)
	if r := []rune(got); len(r) != 10 {
		t.Errorf("merged length = %d runes, want 10", len(r))
	}
	if !strings.HasPrefix(strings.Repeat("é", 100), got) {
		t.Errorf("truncation split a rune: %q", got)
	}
}

func TestMergedSkipsEmptySections(t *testing.T) {
	pt := PageText{Best: Candidate{Text: "only body text"}}
	if got := pt.Merged(0); got != "only body text" {
		t.Errorf("merged = %q", got)
	}
	empty := PageText{}
	if got := empty.Merged(0); got != "" {
		t.Errorf("merged = %q, want empty", got)
	}
}

func TestFullPageParamsOrder(t *testing.T) {
	ps := FullPageParams(300)
	want := []string{"oem3/psm6", "oem1/psm6", "oem3/psm4", "oem3/psm11", "oem3/psm12", "oem3/psm3"}
	if len(ps) != len(want) {
		t.Fatalf("got %d param sets, want %d", len(ps), len(want))
	}
	for i, p := range ps {
		if p.String() != want[i] {
			t.Errorf("params %d = %q, want %q", i, p.String(), want[i])
		}
		if p.DPI != 300 {
			t.Errorf("params %d dpi = %d", i, p.DPI)
		}
	}
	if hp := HeaderParams(300); hp.PSM != 7 || hp.Whitelist == "" {
		t.Errorf("header params = %+v", hp)
	}
	if bp := BodyParams(300); bp.PSM != 6 || bp.Whitelist != "" {
		t.Errorf("body params = %+v", bp)
	}
}
