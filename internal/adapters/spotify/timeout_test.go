package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/coda/internal/core/ports"
)

func newSlowServer(delay time.Duration, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.Write([]byte(body))
	}))
}

func newTimeoutClient(baseURL string) *Client {
	return &Client{
		httpClient:      http.DefaultClient,
		baseURL:         baseURL,
		token:           "test-token",
		log:             zap.NewNop(),
		searchTimeout:   20 * time.Millisecond,
		featuresTimeout: 20 * time.Millisecond,
	}
}

func TestResolveTrackIDTimeout(t *testing.T) {
	ts := newSlowServer(200*time.Millisecond, `{ "tracks": { "items": [ { "id": "t1" } ] } }`)
	defer ts.Close()

	client := newTimeoutClient(ts.URL)

	_, err := client.ResolveTrackID(context.Background(), "some query")
	if !errors.Is(err, ports.ErrTimeout) {
		t.Fatalf("expected ports.ErrTimeout, got %v", err)
	}
}

func TestGetAudioFeaturesTimeout(t *testing.T) {
	ts := newSlowServer(200*time.Millisecond, `{ "danceability": 0.5 }`)
	defer ts.Close()

	client := newTimeoutClient(ts.URL)

	_, err := client.GetAudioFeatures(context.Background(), "t1")
	if !errors.Is(err, ports.ErrTimeout) {
		t.Fatalf("expected ports.ErrTimeout, got %v", err)
	}
}

func TestGetTrackMetadataHasNoDeadline(t *testing.T) {
	// Metadata requests run without a per-call deadline, so a response
	// slower than the search and features timeouts must still land.
	ts := newSlowServer(150*time.Millisecond, `{
		"album": { "id": "a1", "name": "Album", "release_date": "2001-01-01", "type": "album" },
		"artists": [ { "id": "ar1", "name": "Artist", "type": "artist" } ],
		"duration_ms": 1000,
		"id": "t1",
		"name": "Slow Track",
		"type": "track"
	}`)
	defer ts.Close()

	client := newTimeoutClient(ts.URL)

	md, err := client.GetTrackMetadata(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md.Name != "Slow Track" {
		t.Errorf("Name: got %q, want %q", md.Name, "Slow Track")
	}
}
