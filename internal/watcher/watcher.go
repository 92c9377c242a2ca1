// Package watcher re-ingests the document set when a watched file
// changes. The session's vector space is rebuilt from scratch on every
// change, matching the non-incremental ingestion model.
package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher monitors the directories containing the ingested sources and
// invokes a reload callback after changes settle.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.Logger
}

func New(logger *zap.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fs: fs, debounce: 500 * time.Millisecond, logger: logger}, nil
}

var watchedExtensions = map[string]struct{}{
	".txt": {},
	".md":  {},
}

// Watch registers the parent directories of sources and runs reload after
// each settled burst of change events. Blocks until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, sources []string, reload func()) error {
	dirs := make(map[string]struct{})
	for _, src := range sources {
		dirs[filepath.Dir(src)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.fs.Add(dir); err != nil {
			return err
		}
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(event.Name))
			if _, watched := watchedExtensions[ext]; !watched {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("file change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			// coalesce bursts of events into one reload
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		case <-pending:
			reload()
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error { return w.fs.Close() }
