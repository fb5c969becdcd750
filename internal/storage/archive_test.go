package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := NewArchive(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	a.now = func() time.Time {
		return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	}
	return a
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.pdf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStoreNamesAndCopies(t *testing.T) {
	a := newTestArchive(t)
	src := writeSource(t, "pdf bytes")

	stored, err := a.Store("user-1", "clearance.pdf", src)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(stored) != "20240315_093000_clearance.pdf" {
		t.Errorf("stored name = %q", filepath.Base(stored))
	}
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "pdf bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestStoreSanitizesHostileNames(t *testing.T) {
	a := newTestArchive(t)
	src := writeSource(t, "x")

	stored, err := a.Store("../../etc", `..\..\pass:wd?.pdf`, src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stored, a.root+string(filepath.Separator)) {
		t.Fatalf("stored outside archive root: %q", stored)
	}
	if strings.Contains(filepath.Base(stored), "..") || strings.Contains(filepath.Base(stored), ":") {
		t.Errorf("hostile characters survived: %q", filepath.Base(stored))
	}
}

func TestRemoveRefusesOutsidePaths(t *testing.T) {
	a := newTestArchive(t)
	outside := writeSource(t, "not yours")

	if err := a.Remove(outside); err == nil {
		t.Error("expected refusal for path outside the archive")
	}
	if _, err := os.Stat(outside); err != nil {
		t.Error("outside file should be untouched")
	}

	src := writeSource(t, "y")
	stored, err := a.Store("u", "doc.pdf", src)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Remove(stored); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Error("archived file should be gone")
	}
}
