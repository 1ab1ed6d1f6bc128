package offline

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPReplayer replays queued entries as JSON requests against a remote
// base URL.
type HTTPReplayer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPReplayer creates a replayer for the given base URL. If client
// is nil a default client with a request timeout is used.
func NewHTTPReplayer(baseURL string, client *http.Client) *HTTPReplayer {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPReplayer{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Replay issues one queued mutation. Any non-2xx response counts as a
// replay failure.
func (r *HTTPReplayer) Replay(ctx context.Context, entry Entry) error {
	req, err := http.NewRequestWithContext(ctx, entry.Method, r.baseURL+entry.Endpoint, bytes.NewReader(entry.Payload))
	if err != nil {
		return fmt.Errorf("failed to build replay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("replay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("replay rejected with status %d", resp.StatusCode)
	}
	return nil
}
