package enrich

import (
	"sort"
	"strings"

	"github.com/gatherhq/gather/internal/model"
)

type feedField struct {
	weight float64
	text   func(*model.RawEvent) string
}

// Feed-side weights differ from the catalog scorer: the raw records have no
// curated venue/category fields, so the source group stands in for both.
var feedWeights = []feedField{
	{4, func(e *model.RawEvent) string { return e.Title }},
	{3, func(e *model.RawEvent) string { return e.Group }},
	{2, func(e *model.RawEvent) string { return e.Description }},
	{1, func(e *model.RawEvent) string { return e.Location }},
	{1, func(e *model.RawEvent) string { return strings.Join(e.Audience, " ") }},
}

// scorePool ranks the raw pool against the terms, dropping non-matches and
// keeping the top n.
func scorePool(events []model.RawEvent, terms []string, top int) []model.RemoteResult {
	var results []model.RemoteResult
	for i := range events {
		e := &events[i]
		var score float64
		for _, f := range feedWeights {
			text := strings.ToLower(f.text(e))
			if text == "" {
				continue
			}
			for _, term := range terms {
				if strings.Contains(text, term) {
					score += f.weight
				}
			}
		}
		if score > 0 {
			results = append(results, toResult(e, score))
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if top > 0 && len(results) > top {
		results = results[:top]
	}
	return results
}

// filterByDate keeps events whose start date falls inside the inclusive
// range, and inside the optional time bounds.
func filterByDate(events []model.RawEvent, dr *model.DateRange, tr *model.TimeRange) []model.RawEvent {
	var out []model.RawEvent
	for _, e := range events {
		if len(e.Start) < 10 {
			continue
		}
		day := e.Start[:10]
		if dr != nil && (day < dr.Start || day > dr.End) {
			continue
		}
		if tr != nil && !clockInRange(e.Start, tr) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func filterByTime(events []model.RawEvent, tr *model.TimeRange) []model.RawEvent {
	var out []model.RawEvent
	for _, e := range events {
		if clockInRange(e.Start, tr) {
			out = append(out, e)
		}
	}
	return out
}

func clockInRange(start string, tr *model.TimeRange) bool {
	var clock string
	if len(start) >= 16 {
		clock = start[11:16]
	}
	if tr.Start != "" && clock < tr.Start {
		return false
	}
	if tr.End != "" && clock > tr.End {
		return false
	}
	return true
}

func toResult(e *model.RawEvent, score float64) model.RemoteResult {
	return model.RemoteResult{
		URL:      e.URL,
		Title:    e.Title,
		Start:    e.Start,
		Location: e.Location,
		Group:    e.Group,
		ImageURL: e.ImageURL,
		Score:    score,
	}
}
