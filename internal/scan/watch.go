package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/itsmostafa/bindery/internal/logger"
)

// Watcher reports debounced bursts of changes to the PDF files in one
// directory. Hidden files, non-PDF paths, and the configured ignore
// path (normally the merge output) never trigger.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	ignore   string
}

// NewWatcher watches dir. ignore names a path that must never trigger
// a reload; pass "" to ignore nothing.
func NewWatcher(dir string, debounce time.Duration, ignore string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{fsw: fsw, debounce: debounce}
	if ignore != "" {
		if abs, err := filepath.Abs(ignore); err == nil {
			w.ignore = abs
		} else {
			w.ignore = filepath.Clean(ignore)
		}
	}
	return w, nil
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run blocks, invoking onChange after each debounced burst of relevant
// events, until ctx is cancelled or the watcher is closed. Merges run
// from this loop only, one at a time.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			logger.Debugf("change detected: %s %s", ev.Op, ev.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			timer = nil
			fire = nil
			onChange()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watch error: %v", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	const ops = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	if ev.Op&ops == 0 {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") || !strings.HasSuffix(base, ".pdf") {
		return false
	}
	if w.ignore != "" {
		if abs, err := filepath.Abs(ev.Name); err == nil && abs == w.ignore {
			return false
		}
	}
	return true
}
