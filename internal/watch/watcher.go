// Package watch re-runs a callback when a file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
	"git.home.luguber.info/inful/docsidebars/internal/logfields"
)

// DefaultDebounce groups the burst of events editors emit on save.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls OnChange after path is written, created or renamed.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(context.Context) error
	logger   *slog.Logger
}

// New creates a watcher for path.
func New(path string, debounce time.Duration, onChange func(context.Context) error) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.FileSystemError("failed to resolve watch path").WithCause(err).
			WithContext("path", path).
			Build()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: abs, debounce: debounce, onChange: onChange, logger: slog.Default()}, nil
}

// WithLogger sets the logger.
func (w *Watcher) WithLogger(l *slog.Logger) *Watcher {
	if l != nil {
		w.logger = l
	}
	return w
}

// Run blocks until ctx is canceled. Callback errors are logged and do not stop watching.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "failed to create file watcher").Build()
	}
	defer func() { _ = fw.Close() }()

	// Watching the directory survives editors that replace the file on save.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return errors.FileSystemError("failed to watch directory").WithCause(err).
			WithContext("path", dir).
			Build()
	}
	w.logger.Info("Watching for changes", logfields.Path(w.path))

	name := filepath.Base(w.path)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Has(fsnotify.Remove) {
				w.logger.Warn("Watched file removed", logfields.Path(ev.Name))
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.logger.Debug("Change detected", logfields.Path(ev.Name), "op", ev.Op.String())
				timer.Reset(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("File watcher error", logfields.Error(err))
		case <-timer.C:
			if err := w.onChange(ctx); err != nil {
				w.logger.Error("Regeneration failed", logfields.Error(err))
			}
		}
	}
}
