package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// WatcherEvent represents a preset file change.
type WatcherEvent struct {
	Config *Config
	Error  error
}

// Watcher watches a preset file for changes and sends events.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan WatcherEvent
	done    chan struct{}
	mu      sync.Mutex
	running bool
	lastCfg *Config
}

// NewWatcher creates a new Watcher for the given preset file path.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fsWatcher,
		events:  make(chan WatcherEvent, 10),
		done:    make(chan struct{}),
	}

	return w, nil
}

// Start begins watching the preset file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	// Load the initial config
	cfg, err := Load(w.path)
	if err != nil {
		// Don't fail startup, just send error event
		w.events <- WatcherEvent{Error: err}
	} else {
		w.lastCfg = cfg
	}

	// Add the file to the watcher
	if err := w.watcher.Add(w.path); err != nil {
		return err
	}

	// Start the event processing goroutine
	go w.processEvents()

	return nil
}

// Stop stops watching the preset file.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)
	w.watcher.Close()
}

// Events returns the channel for receiving preset change events.
func (w *Watcher) Events() <-chan WatcherEvent {
	return w.events
}

// processEvents processes filesystem events and reloads the preset file
// when it changes.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			close(w.events)
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only react to write and create events
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.handleFileChange()
			}

			// Handle file removal - try to re-watch
			if event.Op&fsnotify.Remove != 0 {
				w.events <- WatcherEvent{Error: errors.New("preset file was removed")}
				// Try to re-add the watch (file might be re-created)
				_ = w.watcher.Add(w.path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.events <- WatcherEvent{Error: err}
		}
	}
}

// handleFileChange reloads the preset file and sends an event if the
// effective configuration changed.
func (w *Watcher) handleFileChange() {
	cfg, err := Load(w.path)
	if err != nil {
		w.events <- WatcherEvent{Error: err}
		return
	}

	if w.hasChanged(cfg) {
		w.lastCfg = cfg
		w.events <- WatcherEvent{Config: cfg}
	}
}

// hasChanged returns true if the loaded config differs from the last one.
func (w *Watcher) hasChanged(newCfg *Config) bool {
	if w.lastCfg == nil {
		return true
	}
	return !reflect.DeepEqual(w.lastCfg, newCfg)
}
