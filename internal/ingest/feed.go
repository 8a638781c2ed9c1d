package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gatherhq/gather/internal/model"
)

// Feed is the upstream event dump format.
type Feed struct {
	ScrapedAt string           `json:"scraped_at"`
	Count     int              `json:"count"`
	Events    []model.RawEvent `json:"events"`
}

// LoadFeedFile reads a feed dump from disk.
func LoadFeedFile(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file %q: %w", path, err)
	}
	var feed Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("failed to parse feed file %q: %w", path, err)
	}
	return &feed, nil
}

// FetchFeed downloads a feed dump. Non-200 status and non-JSON content types
// are rejected before decoding so a captive portal page never reaches the
// catalog.
func FetchFeed(ctx context.Context, client *http.Client, url string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach events feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events feed returned HTTP %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil, fmt.Errorf("events feed returned non-JSON content-type %q", ct)
	}

	var feed Feed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("events feed response is not valid JSON: %w", err)
	}
	return &feed, nil
}
