package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDebouncedEmit(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 30 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("start watcher: %v", err)
	}

	// Scanner apps write in bursts; repeated writes to the same file must
	// coalesce into one emission after the quiet period.
	target := filepath.Join(dir, "scan.png")
	for _, chunk := range []string{"partial", "partial+rest"} {
		if err := os.WriteFile(target, []byte(chunk), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case p := <-paths:
		if p != target {
			t.Fatalf("emitted %q, want %q", p, target)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no path emitted before timeout")
	}
}

func TestWatcherImmediateEmitWithoutDebounce(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}})
	if err != nil {
		t.Fatalf("start watcher: %v", err)
	}

	target := filepath.Join(dir, "form.pdf")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case p := <-paths:
		if p != target {
			t.Fatalf("emitted %q, want %q", p, target)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no path emitted before timeout")
	}
}
