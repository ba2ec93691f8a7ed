package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchEmitsCSVPaths(t *testing.T) {
	dir := t.TempDir()

	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	paths, err := w.Watch(ctx, dir)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	ignored := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(ignored, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	wanted := filepath.Join(dir, "items.csv")
	if err := os.WriteFile(wanted, []byte("title\nen:T\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for {
		select {
		case path, ok := <-paths:
			if !ok {
				t.Fatal("channel closed before CSV event")
			}
			if path == wanted {
				return
			}
			if path == ignored {
				t.Fatalf("non-CSV path emitted: %s", path)
			}
		case <-ctx.Done():
			t.Fatal("timed out waiting for CSV event")
		}
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()

	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	paths, err := w.Watch(ctx, dir)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	cancel()
	select {
	case _, ok := <-paths:
		if ok {
			// A buffered event may slip through; the channel must
			// still close afterwards.
			if _, ok := <-paths; ok {
				t.Error("channel still open after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatchUnknownDir(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if _, err := w.Watch(context.Background(), "/does/not/exist"); err == nil {
		t.Error("Watch() error = nil for missing directory")
	}
}
