// Package watch notifies consumers when a comparison root changes on disk,
// so an open session's flattened views can be rebuilt.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"dircomp/internal/log"
)

// Change describes one filesystem event under a watched root.
type Change struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors comparison roots for changes using fsnotify.
type Watcher struct {
	// Roots being watched
	roots []string

	// Channel delivering changes to the consumer
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Guards running state and the roots list
	mutex sync.RWMutex

	running bool
}

// New creates a new root watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		roots:     []string{},
		changes:   make(chan Change, 16),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Add registers a comparison root to watch. The root must be an existing
// directory; watching is not recursive, matching the top-level granularity
// a session refresh needs.
func (w *Watcher) Add(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("error accessing root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	if err := w.fsWatcher.Add(root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	w.mutex.Lock()
	found := false
	for _, existing := range w.roots {
		if existing == root {
			found = true
			break
		}
	}
	if !found {
		w.roots = append(w.roots, root)
	}
	w.mutex.Unlock()

	log.LogWithFields(log.F("root", root)).Info("Watching comparison root")
	return nil
}

// Changes returns the channel delivering change events.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins the event loop.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}

				change := Change{
					Path:      event.Name,
					Timestamp: time.Now(),
					Op:        event.Op,
				}

				// Non-blocking send; a stalled consumer must not wedge the
				// event loop.
				select {
				case w.changes <- change:
				default:
					log.LogWithFields(log.F("path", event.Name)).Warn("Change channel is full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	log.Info("Watcher started")
	return nil
}

// Stop halts the event loop and closes the change channel.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	w.running = false
	close(w.changes)

	log.Info("Watcher stopped")
}

// IsRunning returns whether the watcher is currently active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Roots returns the list of watched roots.
func (w *Watcher) Roots() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	rootsCopy := make([]string, len(w.roots))
	copy(rootsCopy, w.roots)
	return rootsCopy
}
