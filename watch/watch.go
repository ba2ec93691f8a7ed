// Package watch monitors a drop directory for new CSV files.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher emits the paths of CSV files created or written in a
// watched directory.
type Watcher struct {
	fsw *fsnotify.Watcher
}

// New creates a watcher.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsw: fsw}, nil
}

// Watch starts monitoring dir and returns a channel of CSV file
// paths. The channel closes when ctx is cancelled or the watcher is
// closed. Non-CSV files and other event kinds are ignored.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan string, error) {
	if err := w.fsw.Add(dir); err != nil {
		return nil, err
	}

	paths := make(chan string, 16)
	go func() {
		defer close(paths)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if !isCSV(event.Name) {
					continue
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
					continue
				}
				select {
				case paths <- event.Name:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				slog.Warn("watch error", "err", err)
			}
		}
	}()
	return paths, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}
