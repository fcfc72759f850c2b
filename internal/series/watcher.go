package series

import (
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/jmylchreest/nestchart/internal/theme"
)

// Watcher watches a series file and reloads it on change. A reload that
// fails validation is logged and the previous configuration stays active.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	registry *theme.Registry
	filePath string

	current  atomic.Pointer[Config]
	onChange func(*Config)

	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// NewWatcher loads path and prepares a watcher for it.
func NewWatcher(path string, reg *theme.Registry, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := Load(path, reg)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		logger:   logger,
		registry: reg,
		filePath: path,
		done:     make(chan struct{}),
	}
	w.current.Store(cfg)

	return w, nil
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Config {
	return w.current.Load()
}

// OnChange sets the callback invoked with each successfully reloaded
// configuration. Must be called before Start.
func (w *Watcher) OnChange(fn func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching the file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	// Watch the directory; editors often replace files instead of writing.
	if err := w.watcher.Add(filepath.Dir(w.filePath)); err != nil {
		return err
	}
	w.running = true

	go w.watch()
	return nil
}

func (w *Watcher) watch() {
	filename := filepath.Base(w.filePath)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("series watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.filePath, w.registry)
	if err != nil {
		w.logger.Warn("failed to reload series file, keeping previous", "file", w.filePath, "error", err)
		return
	}

	w.current.Store(cfg)
	w.logger.Debug("series file reloaded", "file", w.filePath, "series", cfg.Len())

	w.mu.Lock()
	fn := w.onChange
	w.mu.Unlock()
	if fn != nil {
		fn(cfg)
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return w.watcher.Close()
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
