package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/jromarion/arc-classifier/internal/common"
)

// defaultOEM is the LSTM engine, used by most of the parameter sweep.
const defaultOEM = 3

// TesseractBackend drives one gosseract client per engine mode. The engine
// mode is an init-only tesseract parameter: it cannot go through
// SetVariable on a live client, it has to arrive in a config file at Init.
// Clients are not thread-safe, so all calls are serialized; the candidate
// search is sequential anyway because candidate order decides ties.
type TesseractBackend struct {
	mu          sync.Mutex
	lang        string
	tessdataDir string
	cfgDir      string
	clients     map[int]*gosseract.Client
}

// NewTesseractBackend initializes a tesseract client for the given language
// (default "eng") and optional tessdata directory, and runs a throwaway
// recognition so a missing or broken installation fails here as
// ErrOCRUnavailable instead of silently emptying every page later.
func NewTesseractBackend(language, tessdataDir string) (*TesseractBackend, error) {
	if language == "" {
		language = "eng"
	}
	cfgDir, err := os.MkdirTemp("", "arc-tess-*")
	if err != nil {
		return nil, fmt.Errorf("%w: engine config dir: %v", common.ErrOCRUnavailable, err)
	}
	t := &TesseractBackend{
		lang:        language,
		tessdataDir: tessdataDir,
		cfgDir:      cfgDir,
		clients:     map[int]*gosseract.Client{},
	}
	client, err := t.clientFor(defaultOEM)
	if err != nil {
		_ = t.Close()
		return nil, err
	}
	if err := warmUp(client); err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("%w: engine warm-up: %v", common.ErrOCRUnavailable, err)
	}
	return t, nil
}

// clientFor returns the client initialized for the requested engine mode,
// creating it on first use. Callers must hold t.mu.
func (t *TesseractBackend) clientFor(oem int) (*gosseract.Client, error) {
	if client, ok := t.clients[oem]; ok {
		return client, nil
	}
	path, err := engineModeConfig(t.cfgDir, oem)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrOCRUnavailable, err)
	}
	client := gosseract.NewClient()
	if t.tessdataDir != "" {
		if err := client.SetTessdataPrefix(t.tessdataDir); err != nil {
			client.Close()
			return nil, fmt.Errorf("%w: set tessdata prefix: %v", common.ErrOCRUnavailable, err)
		}
	}
	if err := client.SetLanguage(t.lang); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: set language %q: %v", common.ErrOCRUnavailable, t.lang, err)
	}
	if err := client.SetConfigFile(path); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: set engine config: %v", common.ErrOCRUnavailable, err)
	}
	t.clients[oem] = client
	return client, nil
}

// engineModeConfig writes (once) and returns the per-OEM tesseract config
// file carrying the init-only engine mode parameter.
func engineModeConfig(dir string, oem int) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("oem%d.config", oem))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	body := fmt.Sprintf("tessedit_ocr_engine_mode %d\n", oem)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return "", fmt.Errorf("write engine config: %w", err)
	}
	return path, nil
}

func (t *TesseractBackend) Recognize(ctx context.Context, img *image.Gray, p Params) (Recognition, error) {
	if err := ctx.Err(); err != nil {
		return Recognition{}, err
	}
	data, err := encodePNG(img)
	if err != nil {
		return Recognition{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	client, err := t.clientFor(p.OEM)
	if err != nil {
		return Recognition{}, err
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return Recognition{}, fmt.Errorf("set image: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(p.PSM)); err != nil {
		return Recognition{}, fmt.Errorf("set psm %d: %w", p.PSM, err)
	}
	if p.DPI > 0 {
		if err := client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(p.DPI)); err != nil {
			return Recognition{}, fmt.Errorf("set dpi: %w", err)
		}
	}
	// Always set the whitelist so a header pass does not leak its character
	// set into the next full-page pass.
	if err := client.SetWhitelist(p.Whitelist); err != nil {
		return Recognition{}, fmt.Errorf("set whitelist: %w", err)
	}

	var rec Recognition
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err == nil {
		rec.Words = make([]Word, 0, len(boxes))
		for _, b := range boxes {
			w := strings.TrimSpace(b.Word)
			if w == "" {
				continue
			}
			rec.Words = append(rec.Words, Word{Text: w, Confidence: b.Confidence})
		}
	}

	text, err := client.Text()
	if err != nil {
		if len(rec.Words) == 0 {
			return Recognition{}, fmt.Errorf("recognize: %w", err)
		}
	} else {
		rec.PlainText = strings.TrimSpace(text)
	}
	return rec, nil
}

func (t *TesseractBackend) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	var firstErr error
	for oem, client := range t.clients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(t.clients, oem)
	}
	if err := os.RemoveAll(t.cfgDir); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// warmUp forces the lazy engine init on a blank page.
func warmUp(client *gosseract.Client) error {
	blank, err := encodePNG(image.NewGray(image.Rect(0, 0, 8, 8)))
	if err != nil {
		return err
	}
	if err := client.SetImageFromBytes(blank); err != nil {
		return err
	}
	_, err = client.Text()
	return err
}

func encodePNG(img *image.Gray) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
