package backup

import (
	"academia/workout-app/internal/service"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is how long a dropped file must be quiet before it is
// imported. Writing a file emits a Create plus one or more Write events;
// batching per path collapses them into a single import.
const defaultDebounce = 200 * time.Millisecond

// Watcher imports snapshot files dropped into a directory. It watches
// for new *.json files and runs them through the import engine, logging
// the per-record error report. Files are left in place; import is safe
// to repeat for catalog and workouts (skip-if-exists) but re-imports
// duplicate log entries, so each dropped file is imported exactly once
// per drop and the drop directory is for one-shot restores.
type Watcher struct {
	transfer service.TransferService
	dir      string
	logger   *log.Logger
	debounce time.Duration

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool

	pendingMu sync.Mutex
	pending   map[string]time.Time // path -> last event
}

// NewWatcher creates a watcher over dir.
func NewWatcher(transfer service.TransferService, dir string, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.New(os.Stderr, "[import-watch] ", log.LstdFlags)
	}
	return &Watcher{
		transfer: transfer,
		dir:      dir,
		logger:   logger,
		debounce: defaultDebounce,
		pending:  make(map[string]time.Time),
	}
}

// Start begins watching the drop directory. The directory is created if
// missing.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(w.dir); err != nil {
		_ = fsw.Close()
		return err
	}

	w.watcher = fsw
	w.done = make(chan struct{})
	w.running = true

	w.wg.Add(1)
	go w.loop()

	w.logger.Printf("Watching %s for snapshot imports", w.dir)
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.done)
	_ = w.watcher.Close()
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			w.pendingMu.Lock()
			w.pending[event.Name] = time.Now()
			w.pendingMu.Unlock()
		case <-ticker.C:
			w.importSettled()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("ERROR: Watch error: %v", err)
		}
	}
}

// importSettled imports every pending file whose events stopped at
// least one debounce interval ago.
func (w *Watcher) importSettled() {
	w.pendingMu.Lock()
	var ready []string
	now := time.Now()
	for path, last := range w.pending {
		if now.Sub(last) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	w.pendingMu.Unlock()

	for _, path := range ready {
		w.importFile(path)
	}
}

func (w *Watcher) importFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		w.logger.Printf("ERROR: Failed to read dropped snapshot %s: %v", path, err)
		return
	}

	result := w.transfer.Import(context.Background(), data)
	if result.Success {
		w.logger.Printf("Imported %s", filepath.Base(path))
		return
	}
	w.logger.Printf("Imported %s with %d error(s):", filepath.Base(path), len(result.Errors))
	for _, msg := range result.Errors {
		w.logger.Printf("  %s", msg)
	}
}
