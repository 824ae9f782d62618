// Package watch reruns a callback when a single file changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/markup/internal/foundation/errors"
	"git.home.luguber.info/inful/markup/internal/logfields"
)

// DefaultDebounce coalesces the burst of events editors emit per save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors one file and calls onChange after changes settle.
type Watcher struct {
	path     string
	onChange func(context.Context)
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu       sync.Mutex
	stopOnce sync.Once
	stopChan chan struct{}
	changes  chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher for path. Nothing is watched until Start.
func New(path string, onChange func(context.Context), opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve watch path").
			WithContext(errors.ContextPath, path).
			Build()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to create file watcher").Build()
	}

	w := &Watcher{
		path:     absPath,
		onChange: onChange,
		watcher:  fw,
		logger:   slog.Default(),
		debounce: DefaultDebounce,
		stopChan: make(chan struct{}),
		changes:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start begins monitoring. The directory is watched rather than the file so
// that editors replacing the file by rename are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to watch directory").
			WithContext(errors.ContextPath, dir).
			Build()
	}

	w.logger.Info("Watching for changes", logfields.Path(w.path))

	go w.watchLoop(ctx)
	go w.debounceLoop(ctx)
	return nil
}

// Stop ends monitoring. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		close(w.stopChan)
		if cerr := w.watcher.Close(); cerr != nil {
			err = errors.WrapError(cerr, errors.CategoryInternal, "failed to close file watcher").Build()
		}
	})
	return err
}

// Run starts the watcher and blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return w.Stop()
}

func (w *Watcher) watchLoop(ctx context.Context) {
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}

			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				w.logger.Debug("Change detected", logfields.Path(event.Name), logfields.Event(event.Op.String()))
				w.trigger()
			case event.Has(fsnotify.Remove):
				w.logger.Warn("Watched file removed", logfields.Path(event.Name))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", logfields.Error(err))
		}
	}
}

// debounceLoop restarts a timer on every change and fires onChange when the
// timer expires.
func (w *Watcher) debounceLoop(ctx context.Context) {
	var timer *time.Timer
	stop := func() {
		if timer != nil {
			timer.Stop()
		}
	}

	for {
		select {
		case <-ctx.Done():
			stop()
			return
		case <-w.stopChan:
			stop()
			return
		case <-w.changes:
			stop()
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case <-w.stopChan:
					return
				default:
				}
				w.onChange(ctx)
			})
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.changes <- struct{}{}:
	default:
		// already pending
	}
}
