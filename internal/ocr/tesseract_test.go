package ocr

import (
	"os"
	"testing"
)

// The engine mode is init-only: it must reach tesseract through a config
// file at Init, never through a post-init variable. These cover the config
// files the per-mode clients are initialized with.
func TestEngineModeConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		oem  int
		want string
	}{
		{3, "tessedit_ocr_engine_mode 3\n"},
		{1, "tessedit_ocr_engine_mode 1\n"},
	}
	for _, tc := range tests {
		path, err := engineModeConfig(dir, tc.oem)
		if err != nil {
			t.Fatalf("oem %d: %v", tc.oem, err)
		}
		body, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("oem %d: %v", tc.oem, err)
		}
		if string(body) != tc.want {
			t.Errorf("oem %d: config = %q, want %q", tc.oem, body, tc.want)
		}
	}
}

func TestEngineModeConfigReused(t *testing.T) {
	dir := t.TempDir()

	first, err := engineModeConfig(dir, 3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := engineModeConfig(dir, 3)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("paths differ: %q vs %q", first, second)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("config files = %d, want 1", len(entries))
	}
}
