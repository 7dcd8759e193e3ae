// Package watcher re-renders a template preview whenever the watched
// file changes, with debouncing so editor save bursts trigger one
// render instead of five.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pkgstrap/pkgstrap/internal/logging"
)

// DefaultDebounce is the quiet period required before a change fires.
const DefaultDebounce = 200 * time.Millisecond

// Handler is invoked after the debounce window with the changed path.
type Handler func(path string) error

// FileWatcher watches a single file for modification. The parent
// directory is watched rather than the file itself because most
// editors save by rename, which drops the original watch.
type FileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      logging.Logger
}

// New creates a watcher for path. A zero debounce uses
// DefaultDebounce.
func New(path string, debounce time.Duration, log logging.Logger) (*FileWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logging.NopLogger()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &FileWatcher{
		path:     abs,
		watcher:  w,
		debounce: debounce,
		log:      log.WithComponent("watcher"),
	}, nil
}

// Watch blocks, invoking handler after each debounced change to the
// watched file, until ctx is cancelled. Handler errors are logged and
// watching continues.
func (fw *FileWatcher) Watch(ctx context.Context, handler Handler) error {
	defer fw.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !fw.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
				fire = timer.C
			} else {
				timer.Reset(fw.debounce)
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn(ctx, err, "watch error")
		case <-fire:
			timer = nil
			fire = nil
			fw.log.Debug(ctx, "change detected", "path", fw.path)
			if err := handler(fw.path); err != nil {
				fw.log.Warn(ctx, err, "handler failed", "path", fw.path)
			}
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != fw.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
