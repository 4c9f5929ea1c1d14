// Package watch re-runs reconciliation whenever a variant's predecessor ABI
// directory changes on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/xinfeng-tech/flutter-libs/internal/abi"
)

// DefaultDebounce is how long the tree must be quiet before a run.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors a variant output tree using fsnotify.
type Watcher struct {
	Root     string
	Debounce time.Duration

	watcher *fsnotify.Watcher
	logger  zerolog.Logger
}

// New creates a watcher for the output tree at root, which must exist.
func New(root string, logger zerolog.Logger) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat output tree: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output tree %s is not a directory", root)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{
		Root:     root,
		Debounce: DefaultDebounce,
		watcher:  fw,
		logger:   logger,
	}, nil
}

// Run calls reconcile once, then again after every quiet period following a
// relevant change, until ctx is cancelled. Failed runs are logged and the
// watch continues.
func (w *Watcher) Run(ctx context.Context, reconcile func(context.Context) error) error {
	defer func() {
		_ = w.watcher.Close()
	}()

	if err := w.watcher.Add(w.Root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.Root, err)
	}

	run := func() {
		if err := reconcile(ctx); err != nil {
			w.logger.Error().Err(err).Msg("Reconciliation run failed")
		}
		w.watchPredecessor()
	}
	run()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !Relevant(w.Root, event) {
				continue
			}
			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("Change detected")
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			run()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

// watchPredecessor adds the predecessor directory to the watch list when it
// exists. fsnotify is not recursive, and the directory may come and go.
func (w *Watcher) watchPredecessor() {
	dir := filepath.Join(w.Root, string(abi.Predecessor))
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Warn().Err(err).Str("path", dir).Msg("Failed to watch predecessor directory")
		}
	}
}

// Relevant reports whether event can change the outcome of reconciling root:
// the predecessor directory appearing or disappearing, or a library inside it
// changing. Writes into the legacy directory are reconciliation's own output.
func Relevant(root string, event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}

	rel, err := filepath.Rel(root, event.Name)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if parts[0] != string(abi.Predecessor) {
		return false
	}
	if len(parts) == 1 {
		return true
	}
	return len(parts) == 2 && strings.HasSuffix(parts[1], abi.LibrarySuffix)
}
