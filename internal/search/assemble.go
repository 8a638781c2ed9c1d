package search

import (
	"sort"

	"github.com/gatherhq/gather/internal/model"
)

// Catalog is the read side of the event store the assembler needs.
type Catalog interface {
	ListEvents() ([]model.Event, error)
	GetEventByURL(url string) (*model.Event, error)
}

// Response is the search payload handed to the HTTP layer. DateRange and
// TimeRange are echoed back so the UI can pre-fill its filter controls.
type Response struct {
	Terms     []string            `json:"terms"`
	LLMUsed   bool                `json:"llmUsed"`
	Count     int                 `json:"count"`
	Results   []model.ScoredEvent `json:"results"`
	DateRange *model.DateRange    `json:"date_range,omitempty"`
	TimeRange *model.TimeRange    `json:"time_range,omitempty"`
}

// Assemble turns an extraction into the final ranked result list. A pre-ranked
// pool from the enrichment service is preferred when present; otherwise the
// local catalog is scored. Store failures are the only errors that propagate.
func Assemble(ext Extraction, catalog Catalog) (*Response, error) {
	var scored []model.ScoredEvent

	if len(ext.Pool) > 0 {
		for _, r := range ext.Pool {
			if r.URL != "" {
				if local, err := catalog.GetEventByURL(r.URL); err != nil {
					return nil, err
				} else if local != nil {
					scored = append(scored, model.ScoredEvent{Event: *local, Score: r.Score})
					continue
				}
			}
			scored = append(scored, remoteToScored(r))
		}
	} else {
		events, err := catalog.ListEvents()
		if err != nil {
			return nil, err
		}
		scored = Score(events, ext.Terms, ext.DateRange, ext.TimeRange)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if scored == nil {
		scored = []model.ScoredEvent{}
	}
	return &Response{
		Terms:     ext.Terms,
		LLMUsed:   ext.LLMUsed,
		Count:     len(scored),
		Results:   scored,
		DateRange: ext.DateRange,
		TimeRange: ext.TimeRange,
	}, nil
}

// remoteToScored synthesizes an event-shaped record for a pool entry with no
// catalog match. The id is a negative hash of the URL so it can never collide
// with a real row id.
func remoteToScored(r model.RemoteResult) model.ScoredEvent {
	start := r.Start
	var date, clock string
	if len(start) >= 10 {
		date = start[:10]
	}
	if len(start) >= 16 {
		clock = start[11:16]
	}

	name := r.Title
	if name == "" {
		name = "Event"
	}
	category := r.Group
	if category == "" {
		category = "community"
	}

	return model.ScoredEvent{
		Event: model.Event{
			ID:       syntheticID(r.URL),
			Name:     name,
			Date:     date,
			Time:     clock,
			EndDate:  date,
			EndTime:  clock,
			Location: r.Location,
			Venue:    r.Location,
			Category: category,
			Tags:     []string{},
			URL:      r.URL,
			ImageURL: r.ImageURL,
		},
		Score: r.Score,
	}
}

// syntheticID hashes a URL into a non-positive id using 31-based rolling
// arithmetic over 32-bit ints, deterministic across runs.
func syntheticID(url string) int64 {
	var h int32
	for _, c := range url {
		h = (h << 5) - h + int32(c)
	}
	if h > 0 {
		h = -h
	}
	return int64(h)
}
