package ingest

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Refresher periodically pulls the upstream feed and inserts new events.
// It runs independently of in-flight searches; the catalog writes are
// append-only, so a search observing a mid-refresh catalog is fine.
type Refresher struct {
	Seeder   *Seeder
	FeedURL  string
	Interval time.Duration
	HTTP     *http.Client
}

func NewRefresher(seeder *Seeder, feedURL string, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Refresher{
		Seeder:   seeder,
		FeedURL:  feedURL,
		Interval: interval,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Run blocks until ctx is cancelled, refreshing once per interval. A failed
// cycle is logged and skipped, never fatal.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RefreshOnce(ctx)
		}
	}
}

// RefreshOnce fetches the feed and applies InsertNew.
func (r *Refresher) RefreshOnce(ctx context.Context) {
	feed, err := FetchFeed(ctx, r.HTTP, r.FeedURL)
	if err != nil {
		log.Printf("event refresh skipped: %v", err)
		return
	}

	added, err := r.Seeder.InsertNew(feed.Events)
	if err != nil {
		log.Printf("event refresh failed to insert: %v", err)
		return
	}
	if added > 0 {
		log.Printf("event refresh: %d new events (%d in feed)", added, len(feed.Events))
	}
}
