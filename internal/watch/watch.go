// Package watch monitors a directory for trace files and analyzes them as
// they appear or change.
package watch

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/ppiankov/arbiterstg/internal/model"
)

// Handler receives each trace file path that passes the event filter.
type Handler func(path string)

// Watcher tails a directory for *.json trace files.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	limiter *pathLimiter
	handler Handler
}

// NewWatcher creates a watcher over dir. cfg bounds how often a single path
// may fire.
func NewWatcher(dir string, cfg model.WatchConfig, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:     dir,
		watcher: fsw,
		limiter: newPathLimiter(cfg.EventsPerSecond, cfg.Burst),
		handler: handler,
	}, nil
}

// Run processes events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isTraceFile(event.Name) {
				continue
			}
			if !w.limiter.Allow(event.Name) {
				continue
			}
			w.handler(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch events: %w", err)
		}
	}
}

// isTraceFile filters watch events down to trace documents, skipping the
// reports this tool writes back into the same directory.
func isTraceFile(path string) bool {
	return strings.HasSuffix(path, ".json") && !strings.HasSuffix(path, ".report.json")
}
