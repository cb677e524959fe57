// Package watch rebuilds the index when the built site changes on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
)

// DefaultDelay is how long the site must be quiet before a rebuild is requested
const DefaultDelay = 500 * time.Millisecond

// Watcher requests index rebuilds when site files change
type Watcher interface {
	Start(ctx context.Context, root string) error
	Stop()
}

// siteWatcher is the concrete implementation
type siteWatcher struct {
	bus        eventbus.EventBus
	logger     *slog.Logger
	delay      time.Duration
	extensions map[string]bool

	mu         sync.Mutex
	isWatching bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// Option configures a Watcher
type Option func(*siteWatcher)

// WithDelay sets the quiet period before a rebuild is requested
func WithDelay(d time.Duration) Option {
	return func(w *siteWatcher) { w.delay = d }
}

// New creates a watcher publishing on bus
func New(bus eventbus.EventBus, logger *slog.Logger, opts ...Option) Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	w := &siteWatcher{
		bus:        bus,
		logger:     logger,
		delay:      DefaultDelay,
		extensions: map[string]bool{".html": true, ".json": true},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start watches root and its subdirectories until ctx is done or Stop is called
func (w *siteWatcher) Start(ctx context.Context, root string) error {
	w.mu.Lock()
	if w.isWatching {
		w.mu.Unlock()
		return fmt.Errorf("watch already in progress")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.addTree(fsw, root); err != nil {
		_ = fsw.Close()
		w.mu.Unlock()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isWatching = true
	w.mu.Unlock()

	w.logger.Info("watching site", "root", root)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			_ = fsw.Close()
			w.mu.Lock()
			w.isWatching = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()
		w.loop(watchCtx, fsw, root)
	}()

	return nil
}

// Stop stops watching and waits for the event loop to exit
func (w *siteWatcher) Stop() {
	w.mu.Lock()
	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *siteWatcher) loop(ctx context.Context, fsw *fsnotify.Watcher, root string) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			// New directories need their own watch
			if event.Has(fsnotify.Create) {
				if err := w.addTree(fsw, event.Name); err != nil {
					w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
			}

			if !w.relevant(event) {
				continue
			}

			reason := event.Name
			if rel, err := filepath.Rel(root, event.Name); err == nil {
				reason = rel
			}
			reason += " changed"

			// Debounce rebuilds
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.delay, func() {
				w.logger.Info("requesting index rebuild", "reason", reason)
				w.bus.Publish(domain.IndexRebuildRequestedEvent{Reason: reason})
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *siteWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return w.extensions[strings.ToLower(filepath.Ext(event.Name))]
}

// addTree adds root and every directory below it. Non-directories are ignored.
func (w *siteWatcher) addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("watch %s: %w", root, err)
			}
			w.logger.Debug("error walking path", "path", path, "error", err)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		// Skip directories that never hold site output
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
			return filepath.SkipDir
		}

		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
