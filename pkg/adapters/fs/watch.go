package fs

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// Watch emits a signal whenever the store file changes on disk, letting
// callers notice edits made by another process (or a text editor) and
// rehydrate. The channel is closed when ctx is cancelled.
//
// Signals are coalesced: a burst of filesystem events while the caller
// is busy collapses into a single pending notification.
func (b *Backend) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic saves replace the file
	// by rename, which would invalidate a direct file watch.
	if err := watcher.Add(filepath.Dir(b.path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch store directory: %w", err)
	}

	out := make(chan struct{}, 1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !b.relevant(ev) {
					continue
				}
				select {
				case out <- struct{}{}:
				default: // a notification is already pending
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				b.logger.Warn("watch error", "error", err)
			}
		}
	})

	return out, nil
}

// relevant filters directory noise (temp files from atomic writes,
// unrelated siblings) down to mutations of the store file itself.
func (b *Backend) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(b.path) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
