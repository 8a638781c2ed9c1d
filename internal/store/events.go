package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gatherhq/gather/internal/model"
)

const eventColumns = `e.id, e.name, e.description, e.date, e.time, e.end_date, e.end_time,
	e.location, e.venue, e.price, e.category, e.tags, e.url, e.image_url,
	(SELECT COUNT(*) FROM groups g WHERE g.event_id = e.id) AS group_count`

// ListEvents returns the full catalog in ascending date order.
func (s *Store) ListEvents() ([]model.Event, error) {
	rows, err := s.db.Query(`SELECT ` + eventColumns + ` FROM events e ORDER BY e.date ASC, e.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, rows.Err()
}

// GetEvent returns the event with the given id, or nil when it does not exist.
func (s *Store) GetEvent(id int64) (*model.Event, error) {
	row := s.db.QueryRow(`SELECT `+eventColumns+` FROM events e WHERE e.id = ?`, id)
	return scanEventRow(row)
}

// GetEventByURL looks an event up by its canonical upstream URL.
func (s *Store) GetEventByURL(url string) (*model.Event, error) {
	row := s.db.QueryRow(`SELECT `+eventColumns+` FROM events e WHERE e.url = ?`, url)
	return scanEventRow(row)
}

func (s *Store) CountEvents() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

// EventURLs returns the set of non-empty canonical URLs already in the
// catalog. Used as the dedup key for incremental ingestion.
func (s *Store) EventURLs() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT url FROM events WHERE url IS NOT NULL AND url != ''`)
	if err != nil {
		return nil, fmt.Errorf("failed to load event urls: %w", err)
	}
	defer rows.Close()

	urls := map[string]bool{}
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls[u] = true
	}
	return urls, rows.Err()
}

// InsertEvents writes a batch of events in a single transaction. Either the
// whole batch lands or none of it does.
func (s *Store) InsertEvents(events []model.Event) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO events (name, description, date, time, end_date, end_time, location, venue, price, category, tags, url, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, ev := range events {
		tags, err := json.Marshal(ev.Tags)
		if err != nil {
			return 0, fmt.Errorf("failed to encode tags: %w", err)
		}
		if _, err := stmt.Exec(ev.Name, ev.Description, ev.Date, ev.Time, ev.EndDate, ev.EndTime,
			ev.Location, ev.Venue, ev.Price, ev.Category, string(tags), ev.URL, ev.ImageURL); err != nil {
			return 0, fmt.Errorf("failed to insert event %q: %w", ev.Name, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit insert: %w", err)
	}
	return inserted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(r rowScanner) (*model.Event, error) {
	var ev model.Event
	var desc, t, endDate, endTime, location, venue, category, tags, url, imageURL sql.NullString
	if err := r.Scan(&ev.ID, &ev.Name, &desc, &ev.Date, &t, &endDate, &endTime,
		&location, &venue, &ev.Price, &category, &tags, &url, &imageURL, &ev.GroupCount); err != nil {
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	ev.Description = desc.String
	ev.Time = t.String
	ev.EndDate = endDate.String
	ev.EndTime = endTime.String
	ev.Location = location.String
	ev.Venue = venue.String
	ev.Category = category.String
	ev.URL = url.String
	ev.ImageURL = imageURL.String
	ev.Tags = parseTags(tags.String)
	return &ev, nil
}

func scanEventRow(row *sql.Row) (*model.Event, error) {
	ev, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// parseTags decodes the stored tags JSON. A corrupt row degrades to an empty
// list rather than failing the whole listing.
func parseTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}
