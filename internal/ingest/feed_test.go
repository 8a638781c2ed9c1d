package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"scraped_at": "2026-03-01T00:00:00Z", "count": 1, "events": [{"title": "Jazz", "start": "2026-03-15T19:00:00"}]}`))
	}))
	defer srv.Close()

	feed, err := FetchFeed(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	require.Len(t, feed.Events, 1)
	assert.Equal(t, "Jazz", feed.Events[0].Title)
}

func TestFetchFeedRejectsNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := FetchFeed(context.Background(), srv.Client(), srv.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestFetchFeedRejectsNonJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html>login page</html>`))
	}))
	defer srv.Close()

	_, err := FetchFeed(context.Background(), srv.Client(), srv.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "content-type")
}

func TestFetchFeedRejectsInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"events": [`))
	}))
	defer srv.Close()

	_, err := FetchFeed(context.Background(), srv.Client(), srv.URL)
	assert.Error(t, err)
}

func TestLoadFeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"count": 1, "events": [{"title": "Jazz", "start": "2026-03-15T19:00:00"}]}`), 0o644))

	feed, err := LoadFeedFile(path)
	require.NoError(t, err)
	assert.Len(t, feed.Events, 1)

	_, err = LoadFeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
