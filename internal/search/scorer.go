package search

import (
	"strings"

	"github.com/gatherhq/gather/internal/model"
)

type weightedField struct {
	weight float64
	text   func(*model.Event) string
}

// Field weights for term scoring. Name matches dominate; venue and category
// tie; description and tags are tiebreakers.
var fieldWeights = []weightedField{
	{4, func(e *model.Event) string { return e.Name }},
	{2, func(e *model.Event) string { return e.Venue }},
	{2, func(e *model.Event) string { return e.Category }},
	{1, func(e *model.Event) string { return e.Description }},
	{1, func(e *model.Event) string { return strings.Join(e.Tags, " ") }},
}

// Score filters and scores catalog events against the extracted terms.
//
// With terms, an event needs at least one field match to appear (score > 0).
// With no terms but a date and/or time range, every event passing the range
// filter appears with score 0 in catalog order: a date browse is a listing,
// not a ranking.
func Score(events []model.Event, terms []string, dateRange *model.DateRange, timeRange *model.TimeRange) []model.ScoredEvent {
	pureFilter := len(terms) == 0 && (dateRange != nil || timeRange != nil)

	var scored []model.ScoredEvent
	for i := range events {
		ev := &events[i]

		if dateRange != nil {
			start := ev.Date
			end := ev.EndDate
			if end == "" {
				end = start
			}
			if start == "" {
				continue
			}
			// Multi-day events count when the intervals overlap at all.
			if end < dateRange.Start || start > dateRange.End {
				continue
			}
		}

		if timeRange != nil {
			if timeRange.Start != "" && ev.Time < timeRange.Start {
				continue
			}
			if timeRange.End != "" && ev.Time > timeRange.End {
				continue
			}
		}

		if pureFilter {
			scored = append(scored, model.ScoredEvent{Event: *ev, Score: 0})
			continue
		}

		var score float64
		for _, term := range terms {
			for _, f := range fieldWeights {
				if strings.Contains(strings.ToLower(f.text(ev)), term) {
					score += f.weight
				}
			}
		}
		if score > 0 {
			scored = append(scored, model.ScoredEvent{Event: *ev, Score: score})
		}
	}
	return scored
}
