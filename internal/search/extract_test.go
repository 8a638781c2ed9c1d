package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"jazz", "night"}, Tokenize("Jazz Night"))
	assert.Equal(t, []string{"5k", "run"}, Tokenize("5K run!"))
	// Single-character tokens are dropped.
	assert.Equal(t, []string{"is", "party"}, Tokenize("a b is party x"))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("! @ #"))
}

func TestExtractLocalOnly(t *testing.T) {
	e := NewExtractor(nil)
	ext := e.Extract(context.Background(), "live jazz downtown", false)

	assert.Equal(t, []string{"live", "jazz", "downtown"}, ext.Terms)
	assert.False(t, ext.LLMUsed)
	assert.Nil(t, ext.DateRange)
	assert.Nil(t, ext.TimeRange)
}

func TestExtractRemoteEnrichment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "live jazz", r.URL.Query().Get("q"))
		assert.Equal(t, "false", r.URL.Query().Get("no_llm"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"terms": ["jazz", "concert", "bebop"],
			"date_range": {"start": "2026-03-14", "end": "2026-03-15"},
			"time_range": {"start": "18:00", "end": ""}
		}`))
	}))
	defer srv.Close()

	e := NewExtractor(NewRemoteClient(srv.URL, 100, 0))
	ext := e.Extract(context.Background(), "live jazz", false)

	assert.True(t, ext.LLMUsed)
	assert.Equal(t, []string{"jazz", "concert", "bebop"}, ext.Terms)
	require.NotNil(t, ext.DateRange)
	assert.Equal(t, "2026-03-14", ext.DateRange.Start)
	require.NotNil(t, ext.TimeRange)
	assert.Equal(t, "18:00", ext.TimeRange.Start)
	assert.Equal(t, "", ext.TimeRange.End)
}

func TestExtractRemoteEmptyTermsKeepsLocal(t *testing.T) {
	// A remote response with no terms (pure date query) must not flip llmUsed
	// away from the local terms the caller already has.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"terms": [], "date_range": {"start": "2026-03-14", "end": "2026-03-14"}}`))
	}))
	defer srv.Close()

	e := NewExtractor(NewRemoteClient(srv.URL, 100, 0))
	ext := e.Extract(context.Background(), "anything tomorrow", false)

	assert.False(t, ext.LLMUsed)
	assert.Equal(t, Tokenize("anything tomorrow"), ext.Terms)
	require.NotNil(t, ext.DateRange)
}

func TestExtractFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewExtractor(NewRemoteClient(srv.URL, 100, 0))
	ext := e.Extract(context.Background(), "jazz tonight", false)

	assert.False(t, ext.LLMUsed)
	assert.Equal(t, []string{"jazz", "tonight"}, ext.Terms)
	assert.Nil(t, ext.DateRange)
}

func TestExtractFallsBackOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	e := NewExtractor(NewRemoteClient(srv.URL, 100, 0))
	ext := e.Extract(context.Background(), "jazz tonight", false)

	assert.False(t, ext.LLMUsed)
	assert.Equal(t, []string{"jazz", "tonight"}, ext.Terms)
}

func TestExtractFallsBackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	e := NewExtractor(NewRemoteClient(srv.URL, 100, 10*time.Millisecond))
	ext := e.Extract(context.Background(), "jazz tonight", false)

	assert.False(t, ext.LLMUsed)
	assert.Equal(t, []string{"jazz", "tonight"}, ext.Terms)
}

func TestExtractFallsBackOnConnectionRefused(t *testing.T) {
	e := NewExtractor(NewRemoteClient("http://127.0.0.1:1", 100, 100*time.Millisecond))
	ext := e.Extract(context.Background(), "jazz tonight", false)

	assert.False(t, ext.LLMUsed)
	assert.Equal(t, []string{"jazz", "tonight"}, ext.Terms)
}
