package offline

import (
	"context"
	"path/filepath"
	"testing"
)

func TestMonitorFiresOnTransitionsOnly(t *testing.T) {
	m := NewMonitor(true, quietLogger())

	var onlineCalls, offlineCalls int
	m.OnOnline(func() { onlineCalls++ })
	m.OnOffline(func() { offlineCalls++ })

	m.Set(true) // already online, no transition
	if onlineCalls != 0 || offlineCalls != 0 {
		t.Fatalf("callbacks fired without a transition: %d, %d", onlineCalls, offlineCalls)
	}

	m.Set(false)
	if offlineCalls != 1 {
		t.Errorf("offlineCalls = %d, want 1", offlineCalls)
	}
	m.Set(false) // repeated observation, no transition
	if offlineCalls != 1 {
		t.Errorf("offlineCalls = %d after repeat, want 1", offlineCalls)
	}

	m.Set(true)
	if onlineCalls != 1 {
		t.Errorf("onlineCalls = %d, want 1", onlineCalls)
	}
	if !m.Online() {
		t.Error("Online() = false, want true")
	}
}

func TestMirrorRecordsOnlyWhileOffline(t *testing.T) {
	q, err := OpenQueue(filepath.Join(t.TempDir(), "queue.json"), quietLogger())
	if err != nil {
		t.Fatalf("OpenQueue: %v", err)
	}
	m := NewMonitor(true, quietLogger())
	mirror := NewMirror(q, m)

	mirror.Record("/api/v1/exercises", "POST", map[string]string{"nome": "Supino"})
	if q.Len() != 0 {
		t.Errorf("Len = %d while online, want 0", q.Len())
	}

	m.Set(false)
	mirror.Record("/api/v1/exercises", "POST", map[string]string{"nome": "Supino"})
	if q.Len() != 1 {
		t.Errorf("Len = %d while offline, want 1", q.Len())
	}
}

// Going back online is the flush trigger: whatever was queued while
// offline replays, in order, through the registered callback.
func TestOnlineTransitionFlushesQueue(t *testing.T) {
	q, err := OpenQueue(filepath.Join(t.TempDir(), "queue.json"), quietLogger())
	if err != nil {
		t.Fatalf("OpenQueue: %v", err)
	}
	m := NewMonitor(false, quietLogger())
	mirror := NewMirror(q, m)

	var replayed []string
	m.OnOnline(func() {
		q.Flush(context.Background(), replayFunc(func(ctx context.Context, entry Entry) error {
			replayed = append(replayed, entry.Endpoint)
			return nil
		}))
	})

	mirror.Record("/api/v1/exercises", "POST", nil)
	mirror.Record("/api/v1/logs", "POST", nil)

	m.Set(true)
	if len(replayed) != 2 || replayed[0] != "/api/v1/exercises" || replayed[1] != "/api/v1/logs" {
		t.Errorf("replayed = %v, want both queued endpoints in order", replayed)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d after coming online, want 0", q.Len())
	}
}
