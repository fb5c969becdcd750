package ingest

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	processor "github.com/jromarion/arc-classifier/internal/pipeline"
)

// DropFolder feeds watched files into the pipeline. Files dropped directly
// under a root belong to DefaultUserID; files under a first-level
// subdirectory belong to the user named by that subdirectory, so office
// staff can sort scans by owner with plain folders.
type DropFolder struct {
	Processor     *processor.Processor
	Roots         []string
	DefaultUserID string
	Logger        *slog.Logger
}

func NewDropFolder(proc *processor.Processor, roots []string, defaultUserID string, logger *slog.Logger) *DropFolder {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultUserID == "" {
		defaultUserID = "drop-folder"
	}
	return &DropFolder{Processor: proc, Roots: roots, DefaultUserID: defaultUserID, Logger: logger}
}

// Run watches the roots until the context ends. Individual file failures
// are logged and skipped; only a watcher setup failure is returned.
func (d *DropFolder) Run(ctx context.Context, cfg WatchConfig) error {
	cfg.Roots = d.Roots
	events, errs, err := StartWatcher(ctx, cfg)
	if err != nil {
		return err
	}
	d.Logger.Info("watching drop folders", "roots", strings.Join(d.Roots, ","))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path, ok := <-events:
			if !ok {
				return nil
			}
			userID := d.userFor(path)
			d.Logger.Info("ingesting dropped file", "path", path, "user_id", userID)
			if _, err := d.Processor.ProcessFile(ctx, userID, path); err != nil {
				d.Logger.Error("dropped file failed", "path", path, "err", err)
			}
		case err, ok := <-errs:
			if ok && err != nil {
				d.Logger.Error("drop folder watcher error", "err", err)
			}
		}
	}
}

func (d *DropFolder) userFor(path string) string {
	for _, root := range d.Roots {
		rel, err := filepath.Rel(root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		parts := strings.Split(rel, string(filepath.Separator))
		if len(parts) > 1 && parts[0] != "" && parts[0] != "." {
			return parts[0]
		}
	}
	return d.DefaultUserID
}
