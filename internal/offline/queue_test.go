package offline

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"testing"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type replayFunc func(ctx context.Context, entry Entry) error

func (f replayFunc) Replay(ctx context.Context, entry Entry) error {
	return f(ctx, entry)
}

func TestQueuePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")

	q, err := OpenQueue(path, quietLogger())
	if err != nil {
		t.Fatalf("OpenQueue: %v", err)
	}
	q.Enqueue("/api/v1/exercises", "POST", map[string]string{"nome": "Supino"})
	q.Enqueue("/api/v1/workouts", "POST", map[string]string{"nome": "Treino A"})
	q.Enqueue("/api/v1/exercises/ex-1", "PUT", map[string]string{"nivel": "avançado"})

	reopened, err := OpenQueue(path, quietLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	entries := reopened.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d after reopen, want 3", len(entries))
	}
	wantEndpoints := []string{"/api/v1/exercises", "/api/v1/workouts", "/api/v1/exercises/ex-1"}
	for i, entry := range entries {
		if entry.Endpoint != wantEndpoints[i] {
			t.Errorf("entries[%d].Endpoint = %q, want %q", i, entry.Endpoint, wantEndpoints[i])
		}
		if entry.ID == "" || entry.Timestamp.IsZero() {
			t.Errorf("entries[%d] missing id or timestamp", i)
		}
	}
}

// One flush pass empties the queue no matter what: failed entries are
// logged and dropped, not retried.
func TestFlushDropsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")
	q, err := OpenQueue(path, quietLogger())
	if err != nil {
		t.Fatalf("OpenQueue: %v", err)
	}
	q.Enqueue("/api/v1/exercises", "POST", nil)
	q.Enqueue("/api/v1/workouts", "POST", nil)
	q.Enqueue("/api/v1/logs", "POST", nil)

	var order []string
	replayed, failed := q.Flush(context.Background(), replayFunc(func(ctx context.Context, entry Entry) error {
		order = append(order, entry.Endpoint)
		if entry.Endpoint == "/api/v1/workouts" {
			return errors.New("remote rejected")
		}
		return nil
	}))

	if replayed != 2 || failed != 1 {
		t.Errorf("replayed, failed = %d, %d, want 2, 1", replayed, failed)
	}
	if len(order) != 3 || order[0] != "/api/v1/exercises" || order[2] != "/api/v1/logs" {
		t.Errorf("replay order = %v", order)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d after flush, want 0", q.Len())
	}

	// The cleared state must be durable too.
	reopened, err := OpenQueue(path, quietLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Len() != 0 {
		t.Errorf("Len = %d after reopen, want 0", reopened.Len())
	}
}

// The queue is cleared only after the full replay pass: mid-flush the
// entries are still reported pending and still on disk, so a crash
// during replay cannot lose entries that were never attempted.
func TestFlushClearsOnlyAfterFullPass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")
	q, err := OpenQueue(path, quietLogger())
	if err != nil {
		t.Fatalf("OpenQueue: %v", err)
	}
	q.Enqueue("/api/v1/exercises", "POST", nil)
	q.Enqueue("/api/v1/logs", "POST", nil)

	q.Flush(context.Background(), replayFunc(func(ctx context.Context, entry Entry) error {
		if q.Len() != 2 {
			t.Errorf("Len = %d mid-flush, want 2", q.Len())
		}
		onDisk, err := OpenQueue(path, quietLogger())
		if err != nil {
			t.Fatalf("reopen mid-flush: %v", err)
		}
		if onDisk.Len() != 2 {
			t.Errorf("persisted Len = %d mid-flush, want 2", onDisk.Len())
		}
		return nil
	}))

	if q.Len() != 0 {
		t.Errorf("Len = %d after flush, want 0", q.Len())
	}
}

func TestEnqueueUnencodablePayloadIsDropped(t *testing.T) {
	q, err := OpenQueue(filepath.Join(t.TempDir(), "queue.json"), quietLogger())
	if err != nil {
		t.Fatalf("OpenQueue: %v", err)
	}
	q.Enqueue("/api/v1/exercises", "POST", func() {})
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
}

func TestFlushEmptyQueue(t *testing.T) {
	q, err := OpenQueue(filepath.Join(t.TempDir(), "queue.json"), quietLogger())
	if err != nil {
		t.Fatalf("OpenQueue: %v", err)
	}
	replayed, failed := q.Flush(context.Background(), replayFunc(func(ctx context.Context, entry Entry) error {
		t.Error("replayer called on empty queue")
		return nil
	}))
	if replayed != 0 || failed != 0 {
		t.Errorf("replayed, failed = %d, %d, want 0, 0", replayed, failed)
	}
}
