package ingest

import (
	"strings"

	"github.com/gatherhq/gather/internal/model"
	"github.com/gatherhq/gather/internal/taxonomy"
)

// Catalog is the write side of the event store the seeder needs.
type Catalog interface {
	EventURLs() (map[string]bool, error)
	InsertEvents(events []model.Event) (int, error)
}

// Seeder turns raw upstream feed records into catalog events: it splits
// timestamps, classifies the category, normalizes tags, and dedups by
// canonical URL on incremental runs.
type Seeder struct {
	Catalog         Catalog
	DefaultLocation string
}

func NewSeeder(catalog Catalog) *Seeder {
	return &Seeder{
		Catalog:         catalog,
		DefaultLocation: "Lincoln, NE",
	}
}

// Seed bulk-loads an empty catalog. No duplicate checking.
func (s *Seeder) Seed(raw []model.RawEvent) (int, error) {
	return s.Catalog.InsertEvents(s.transformAll(raw, nil))
}

// InsertNew applies an incremental refresh: records whose canonical URL is
// already in the catalog are skipped. Records without a URL always insert,
// an accepted limitation of URL-keyed dedup.
func (s *Seeder) InsertNew(raw []model.RawEvent) (int, error) {
	existing, err := s.Catalog.EventURLs()
	if err != nil {
		return 0, err
	}
	return s.Catalog.InsertEvents(s.transformAll(raw, existing))
}

func (s *Seeder) transformAll(raw []model.RawEvent, skipURLs map[string]bool) []model.Event {
	var events []model.Event
	for _, r := range raw {
		if r.URL != "" && skipURLs[r.URL] {
			continue
		}
		if ev, ok := s.transform(r); ok {
			events = append(events, ev)
		}
	}
	return events
}

// transform maps one raw record to a catalog event. Records without a
// parseable start date are dropped silently.
func (s *Seeder) transform(r model.RawEvent) (model.Event, bool) {
	startDate, startTime := splitTimestamp(r.Start)
	if startDate == "" {
		return model.Event{}, false
	}
	endDate, endTime := splitTimestamp(r.End)
	if endDate == "" {
		endDate, endTime = startDate, startTime
	}

	name := r.Title
	if name == "" {
		name = "Untitled Event"
	}

	tags := append([]string{}, r.Audience...)
	if r.Group != "" {
		tags = append(tags, r.Group)
	}
	tags = mergeTags(tags, taxonomy.Generalize(r.Title+" "+r.Description))

	return model.Event{
		Name:        name,
		Description: r.Description,
		Date:        startDate,
		Time:        startTime,
		EndDate:     endDate,
		EndTime:     endTime,
		Location:    s.DefaultLocation,
		Venue:       r.Location,
		Price:       0,
		Category:    taxonomy.InferCategory(r.Title + " " + r.Description + " " + r.Group),
		Tags:        tags,
		URL:         r.URL,
		ImageURL:    r.ImageURL,
	}, true
}

// splitTimestamp slices an ISO-ish timestamp into date and clock parts:
// "2026-03-15T19:00:00" -> ("2026-03-15", "19:00").
func splitTimestamp(iso string) (date, clock string) {
	if len(iso) < 10 {
		return "", ""
	}
	if len(iso) >= 16 {
		clock = iso[11:16]
	}
	return iso[:10], clock
}

func mergeTags(tags, extra []string) []string {
	seen := map[string]bool{}
	for _, t := range tags {
		seen[strings.ToLower(t)] = true
	}
	for _, t := range extra {
		if !seen[strings.ToLower(t)] {
			tags = append(tags, t)
			seen[strings.ToLower(t)] = true
		}
	}
	return tags
}
