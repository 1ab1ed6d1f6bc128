package backup

import (
	"academia/workout-app/internal/service"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// stubTransfer counts imports; Export is unused by the watcher.
type stubTransfer struct {
	mu      sync.Mutex
	imports int
}

func (s *stubTransfer) Export(ctx context.Context, scope service.Scope) (*service.Snapshot, error) {
	return &service.Snapshot{Version: service.SnapshotVersion}, nil
}

func (s *stubTransfer) Import(ctx context.Context, raw []byte) *service.ImportResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imports++
	return &service.ImportResult{Success: true}
}

func (s *stubTransfer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imports
}

// Dropping one file emits a Create plus one or more Writes. The events
// must collapse into a single import: log import always appends, so a
// second import of the same drop would duplicate its log entries.
func TestWatcherImportsDroppedFileOnce(t *testing.T) {
	dir := t.TempDir()
	stub := &stubTransfer{}

	w := NewWatcher(stub, dir, log.New(io.Discard, "", 0))
	w.debounce = 50 * time.Millisecond
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	// Write the snapshot in several chunks so the drop produces
	// multiple filesystem events.
	f, err := os.Create(filepath.Join(dir, "snapshot.json"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := f.WriteString(`{"version":"1.0.0",`); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := f.WriteString(`"logs":[{"workoutId":"wk-1","dataRealizada":"2026-08-30T10:00:00Z"}]}`); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for stub.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if stub.count() == 0 {
		t.Fatal("dropped file was never imported")
	}

	// Give any extra pending events time to (incorrectly) fire.
	time.Sleep(5 * w.debounce)
	if got := stub.count(); got != 1 {
		t.Errorf("Import called %d times for one dropped file, want 1", got)
	}
}

func TestWatcherIgnoresNonJSONFiles(t *testing.T) {
	dir := t.TempDir()
	stub := &stubTransfer{}

	w := NewWatcher(stub, dir, log.New(io.Discard, "", 0))
	w.debounce = 50 * time.Millisecond
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a snapshot"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	time.Sleep(5 * w.debounce)
	if got := stub.count(); got != 0 {
		t.Errorf("Import called %d times for a non-json file, want 0", got)
	}
}
