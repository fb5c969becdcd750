package ocr

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/jromarion/arc-classifier/internal/imaging"
)

var reOSDRotate = regexp.MustCompile(`Rotate:\s*(\d+)`)

// osdDetector runs tesseract's script-and-orientation pass (psm 0) through
// the external binary, since the library API does not expose OSD output.
type osdDetector struct {
	runner    Runner
	tesseract string
}

// Detect returns the clockwise rotation needed to bring the page upright.
// OSD needs a reasonable amount of text to work; failures are reported so
// the caller can fall back to assuming the page is upright.
func (d osdDetector) Detect(ctx context.Context, g *image.Gray) (int, error) {
	tmpDir, err := os.MkdirTemp("", "arc-osd-*")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(tmpDir)

	in := filepath.Join(tmpDir, "page.png")
	f, err := os.Create(in)
	if err != nil {
		return 0, err
	}
	if err := png.Encode(f, g); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	out, _, err := d.runner.Run(ctx, d.tesseract, in, "stdout", "--psm", "0")
	if err != nil {
		return 0, fmt.Errorf("osd: %w", err)
	}
	m := reOSDRotate.FindSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("osd: no rotation in output")
	}
	deg, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, fmt.Errorf("osd: parse rotation: %w", err)
	}
	switch deg {
	case 0, 90, 180, 270:
		return deg, nil
	}
	return 0, fmt.Errorf("osd: unexpected rotation %d", deg)
}

var _ imaging.OrientationFunc = osdDetector{}.Detect
