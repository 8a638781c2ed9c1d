package store

import (
	"testing"

	"github.com/gatherhq/gather/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndListEvents(t *testing.T) {
	s := OpenTest(t)

	n, err := s.InsertEvents([]model.Event{
		{Name: "Later", Date: "2026-03-20", Tags: []string{"b"}},
		{Name: "Earlier", Date: "2026-03-10", Tags: []string{"a"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	events, err := s.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Catalog order is ascending date.
	assert.Equal(t, "Earlier", events[0].Name)
	assert.Equal(t, "Later", events[1].Name)
	assert.Equal(t, []string{"a"}, events[0].Tags)
}

func TestCountEvents(t *testing.T) {
	s := OpenTest(t)

	n, err := s.CountEvents()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = s.InsertEvents([]model.Event{{Name: "One", Date: "2026-01-01"}})
	require.NoError(t, err)

	n, err = s.CountEvents()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGetEvent(t *testing.T) {
	s := OpenTest(t)

	_, err := s.InsertEvents([]model.Event{{Name: "Jazz Night", Date: "2026-03-15"}})
	require.NoError(t, err)

	events, err := s.ListEvents()
	require.NoError(t, err)

	ev, err := s.GetEvent(events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "Jazz Night", ev.Name)

	missing, err := s.GetEvent(99999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetEventByURL(t *testing.T) {
	s := OpenTest(t)

	_, err := s.InsertEvents([]model.Event{
		{Name: "With URL", Date: "2026-03-15", URL: "https://events.example/a"},
		{Name: "Without URL", Date: "2026-03-16"},
	})
	require.NoError(t, err)

	ev, err := s.GetEventByURL("https://events.example/a")
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "With URL", ev.Name)

	missing, err := s.GetEventByURL("https://events.example/nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEventURLsSkipsEmpty(t *testing.T) {
	s := OpenTest(t)

	_, err := s.InsertEvents([]model.Event{
		{Name: "A", Date: "2026-03-15", URL: "https://events.example/a"},
		{Name: "B", Date: "2026-03-16"},
	})
	require.NoError(t, err)

	urls, err := s.EventURLs()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"https://events.example/a": true}, urls)
}

func TestCorruptTagsDegradeToEmptyList(t *testing.T) {
	s := OpenTest(t)

	_, err := s.db.Exec(`INSERT INTO events (name, date, tags) VALUES ('Broken', '2026-03-15', 'not json at all')`)
	require.NoError(t, err)

	events, err := s.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, []string{}, events[0].Tags)
}

func TestGroupCountSubquery(t *testing.T) {
	s := OpenTest(t)

	_, err := s.InsertEvents([]model.Event{{Name: "Jazz Night", Date: "2026-03-15"}})
	require.NoError(t, err)
	events, err := s.ListEvents()
	require.NoError(t, err)

	_, err = s.CreateGroup(events[0].ID, "Front row crew", "", "ada", "ada@example.com", "", 4, "", nil)
	require.NoError(t, err)

	events, err = s.ListEvents()
	require.NoError(t, err)
	assert.Equal(t, 1, events[0].GroupCount)
}
