package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MihirLuthra/ckv-file-parser/pkg/core"
)

// Watch emits an event whenever the ckv file changes on disk. Editors
// and atomic writers replace files via rename, which drops a watch
// placed on the file itself, so the watch goes on the parent directory
// and events are filtered by name.
//
// The returned channel is closed when ctx is done or the watcher fails.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(r.Path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(r.Path)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan core.Event)
	go func() {
		defer watcher.Close()
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				abs, err := filepath.Abs(ev.Name)
				if err != nil || abs != target {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
					!ev.Op.Has(fsnotify.Rename) && !ev.Op.Has(fsnotify.Remove) {
					continue
				}

				out := core.Event{
					Type:      core.EventModify,
					Path:      r.Path,
					Timestamp: time.Now().Unix(),
				}
				if ev.Op.Has(fsnotify.Remove) {
					out.Type = core.EventRemove
				}

				select {
				case events <- out:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.logger.Warn("watcher error", "path", r.Path, "error", err)
			}
		}
	}()

	return events, nil
}
