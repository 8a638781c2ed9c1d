package enrich

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gatherhq/gather/internal/ingest"
	"github.com/gatherhq/gather/internal/llm"
	"github.com/gatherhq/gather/internal/model"
)

// Service answers natural-language queries over a cached raw-event pool,
// optionally widening them through a language model. The pool refreshes in
// the background; searches read whatever snapshot is current.
type Service struct {
	llm      llm.Client
	feedFile string
	feedURL  string
	http     *http.Client
	now      func() time.Time

	mu         sync.RWMutex
	events     []model.RawEvent
	lastLoaded time.Time
	loading    bool
}

// NewService builds the service. llmClient may be nil, in which case every
// search runs keyword-only.
func NewService(llmClient llm.Client, feedFile, feedURL string) *Service {
	return &Service{
		llm:      llmClient,
		feedFile: feedFile,
		feedURL:  feedURL,
		http:     &http.Client{Timeout: 60 * time.Second},
		now:      time.Now,
	}
}

// Events returns the current pool snapshot.
func (s *Service) Events() []model.RawEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events
}

// LastLoaded reports when the pool was last swapped, zero if never.
func (s *Service) LastLoaded() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastLoaded
}

func (s *Service) setPool(events []model.RawEvent) {
	s.mu.Lock()
	s.events = events
	s.lastLoaded = s.now()
	s.mu.Unlock()
}

// ErrLoadInProgress reports a refresh racing another one.
var ErrLoadInProgress = errors.New("feed load already in progress")

func (s *Service) beginLoad() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrLoadInProgress
	}
	s.loading = true
	return nil
}

func (s *Service) endLoad() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// Load refreshes the pool from the upstream URL when configured, falling
// back to the feed file. Only one load runs at a time.
func (s *Service) Load(ctx context.Context) error {
	if err := s.beginLoad(); err != nil {
		return err
	}
	defer s.endLoad()
	return s.load(ctx)
}

// Reload starts a background refresh unless one is already running.
func (s *Service) Reload() error {
	if err := s.beginLoad(); err != nil {
		return err
	}
	go func() {
		defer s.endLoad()
		if err := s.load(context.Background()); err != nil {
			log.Printf("reload failed: %v", err)
		}
	}()
	return nil
}

func (s *Service) load(ctx context.Context) error {
	if s.feedURL != "" {
		feed, err := ingest.FetchFeed(ctx, s.http, s.feedURL)
		if err == nil {
			s.setPool(feed.Events)
			return nil
		}
		log.Printf("feed fetch failed, trying file: %v", err)
	}

	if s.feedFile != "" {
		feed, err := ingest.LoadFeedFile(s.feedFile)
		if err != nil {
			return err
		}
		s.setPool(feed.Events)
		return nil
	}

	return fmt.Errorf("no feed source configured")
}

// Run loads immediately and then refreshes every interval until ctx ends.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	if err := s.Load(ctx); err != nil {
		log.Printf("initial feed load failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Load(ctx); err != nil {
				log.Printf("feed refresh failed: %v", err)
			}
		}
	}
}

// SearchResponse mirrors the JSON contract the backend's extractor consumes.
type SearchResponse struct {
	Query         string               `json:"query"`
	Terms         []string             `json:"terms"`
	LLMUsed       bool                 `json:"llm_used"`
	DateRange     *model.DateRange     `json:"date_range"`
	TimeRange     *model.TimeRange     `json:"time_range"`
	TotalSearched int                  `json:"total_searched"`
	Count         int                  `json:"count"`
	Results       []model.RemoteResult `json:"results"`
}

// Search runs the full query-understanding pipeline: base terms, optional
// LLM expansion, date/time filtering, then weighted scoring over the pool.
func (s *Service) Search(ctx context.Context, q string, top int, noLLM bool) *SearchResponse {
	base := BaseTerms(q)
	terms := base
	llmUsed := false

	var dateRange *model.DateRange
	var timeRange *model.TimeRange

	if !noLLM && s.llm != nil {
		keywords, dr, tr, err := s.expand(ctx, q)
		if err != nil {
			log.Printf("llm expansion failed, using base terms: %v", err)
		} else {
			// Resolved ranges count even when the keyword list came back empty.
			dateRange = dr
			timeRange = tr
			if len(keywords) > 0 {
				terms = mergeTerms(base, keywords)
				llmUsed = true
			}
		}
	}

	if dateRange == nil {
		dateRange = ExtractDateRange(q, s.now())
	}

	pool := s.Events()
	if dateRange != nil {
		pool = filterByDate(pool, dateRange, timeRange)
	} else if timeRange != nil {
		pool = filterByTime(pool, timeRange)
	}

	resp := &SearchResponse{
		Query:         q,
		Terms:         terms,
		LLMUsed:       llmUsed,
		DateRange:     dateRange,
		TimeRange:     timeRange,
		TotalSearched: len(pool),
	}
	if resp.Terms == nil {
		resp.Terms = []string{}
	}

	if len(terms) == 0 {
		// Pure date/time query: the whole filtered pool, unranked.
		if top > 0 && len(pool) > top {
			pool = pool[:top]
		}
		results := make([]model.RemoteResult, 0, len(pool))
		for i := range pool {
			results = append(results, toResult(&pool[i], 0))
		}
		resp.Results = results
		resp.Count = len(results)
		return resp
	}

	results := scorePool(pool, terms, top)
	if results == nil {
		results = []model.RemoteResult{}
	}
	resp.Results = results
	resp.Count = len(results)
	return resp
}
