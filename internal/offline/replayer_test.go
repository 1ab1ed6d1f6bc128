package offline

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPReplayerSendsQueuedMutation(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	replayer := NewHTTPReplayer(server.URL+"/", nil) // trailing slash must not double up

	entry := Entry{
		ID:        "abc",
		Endpoint:  "/api/v1/exercises",
		Method:    http.MethodPost,
		Payload:   json.RawMessage(`{"nome":"Supino"}`),
		Timestamp: time.Now(),
	}
	if err := replayer.Replay(context.Background(), entry); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/api/v1/exercises" {
		t.Errorf("request = %s %s, want POST /api/v1/exercises", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if string(gotBody) != `{"nome":"Supino"}` {
		t.Errorf("body = %s", gotBody)
	}
}

func TestHTTPReplayerRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	replayer := NewHTTPReplayer(server.URL, nil)
	err := replayer.Replay(context.Background(), Entry{Endpoint: "/api/v1/exercises", Method: http.MethodPost})
	if err == nil {
		t.Error("expected error for 409 response")
	}
}
