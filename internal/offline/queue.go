// Package offline implements the disconnected-operation support: a
// durable queue of pending remote mutations, the connectivity monitor
// that triggers its flush, and the replayer that issues the queued
// requests once a connection is back.
package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one pending remote mutation recorded while disconnected.
type Entry struct {
	ID        string          `json:"id"`
	Endpoint  string          `json:"endpoint"`
	Method    string          `json:"method"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// Replayer issues one queued entry against the remote side.
type Replayer interface {
	Replay(ctx context.Context, entry Entry) error
}

// Queue is the durable, ordered, append-only list of pending mutations.
// It persists to its own JSON file, independent of the document store,
// and survives process restarts. Enqueue and Flush are serialized with a
// mutex; the design assumes a single process owns the file.
type Queue struct {
	mu      sync.Mutex
	path    string
	entries []Entry
	logger  *log.Logger
}

// OpenQueue loads (or creates) the queue file at path.
//
// If logger is nil, a default logger writing to stderr is used.
func OpenQueue(path string, logger *log.Logger) (*Queue, error) {
	if logger == nil {
		logger = log.New(os.Stderr, "[sync] ", log.LstdFlags)
	}

	q := &Queue{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return q, nil
		}
		return nil, fmt.Errorf("failed to read sync queue file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &q.entries); err != nil {
			return nil, fmt.Errorf("failed to decode sync queue file: %w", err)
		}
	}
	return q, nil
}

// Enqueue appends a pending mutation stamped with a unique id and the
// current time. It is best-effort by contract: persistence problems are
// logged, never surfaced to the caller, so a failing disk write cannot
// break the local-first flow.
func (q *Queue) Enqueue(endpoint, method string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		q.logger.Printf("ERROR: Failed to encode sync payload for %s %s: %v", method, endpoint, err)
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = append(q.entries, Entry{
		ID:        uuid.NewString(),
		Endpoint:  endpoint,
		Method:    method,
		Payload:   body,
		Timestamp: time.Now().UTC(),
	})
	q.persistLocked()
}

// Len reports how many entries are pending.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Entries returns a copy of the pending entries in enqueue order.
func (q *Queue) Entries() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Flush replays every pending entry strictly in enqueue order, then
// clears the queue. Entries stay visible and durable until the whole
// pass completes; only after it does the queue become (and persist as)
// empty. Each replay failure is logged and the entry is still dropped
// at the end of the pass, so after one flush the queue is empty
// regardless of individual outcomes. Failed entries are therefore
// lost, matching the application's long-standing single-pass behavior.
// Returns how many replays succeeded and how many failed.
func (q *Queue) Flush(ctx context.Context, replayer Replayer) (replayed, failed int) {
	q.mu.Lock()
	pending := make([]Entry, len(q.entries))
	copy(pending, q.entries)
	q.mu.Unlock()

	for _, entry := range pending {
		if err := replayer.Replay(ctx, entry); err != nil {
			q.logger.Printf("ERROR: Failed to replay %s %s (entry %s): %v", entry.Method, entry.Endpoint, entry.ID, err)
			failed++
			continue
		}
		replayed++
	}

	q.mu.Lock()
	q.entries = nil
	q.persistLocked()
	q.mu.Unlock()

	if replayed+failed > 0 {
		q.logger.Printf("Flushed sync queue: %d replayed, %d failed", replayed, failed)
	}
	return replayed, failed
}

// persistLocked writes the queue file. Callers must hold q.mu. A failed
// write is logged; the in-memory queue stays authoritative for the rest
// of the session.
func (q *Queue) persistLocked() {
	data, err := json.Marshal(q.entries)
	if err != nil {
		q.logger.Printf("ERROR: Failed to encode sync queue: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(q.path), 0o755); err != nil {
		q.logger.Printf("ERROR: Failed to create sync queue directory: %v", err)
		return
	}
	if err := os.WriteFile(q.path, data, 0o600); err != nil {
		q.logger.Printf("ERROR: Failed to write sync queue file: %v", err)
	}
}
