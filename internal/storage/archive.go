// Package storage keeps the original uploads on local disk, one file per
// document, named so that directory listings sort chronologically.
package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Archive struct {
	root   string
	logger *slog.Logger
	now    func() time.Time
}

func NewArchive(root string, logger *slog.Logger) (*Archive, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create archive root: %w", err)
	}
	return &Archive{root: abs, logger: logger, now: time.Now}, nil
}

// Store copies the source file into the archive under the user's directory
// as <YYYYMMDD_HHMMSS>_<filename> and returns the stored path.
func (a *Archive) Store(userID, filename, sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(a.root, sanitize(userID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s", a.now().Format("20060102_150405"), sanitize(filepath.Base(filename)))
	dst := filepath.Join(dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("copy into archive: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}

	a.logger.Debug("archived document", "path", dst)
	return dst, nil
}

// Remove deletes an archived artifact. Paths outside the archive root are
// refused.
func (a *Archive) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(abs, a.root+string(filepath.Separator)) {
		return fmt.Errorf("path %q is outside the archive", path)
	}
	return os.Remove(abs)
}

// sanitize strips path separators and other filesystem-hostile characters
// from user-supplied name components.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, s)
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", "_")
	}
	s = strings.Trim(s, ". ")
	if s == "" {
		s = "unnamed"
	}
	return s
}
