package ingest

import (
	"testing"

	"github.com/gatherhq/gather/internal/model"
	"github.com/gatherhq/gather/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawJazz() model.RawEvent {
	return model.RawEvent{
		Title:       "Jazz on the Green",
		Description: "Free outdoor jazz concert",
		Start:       "2026-07-09T19:00:00",
		End:         "2026-07-09T22:00:00",
		Location:    "Turner Park",
		Group:       "Omaha Performing Arts",
		Audience:    []string{"Public", "Students"},
		URL:         "https://events.example/jazz-on-the-green",
		ImageURL:    "https://events.example/jazz.jpg",
	}
}

func TestTransformFields(t *testing.T) {
	s := NewSeeder(nil)
	ev, ok := s.transform(rawJazz())
	require.True(t, ok)

	assert.Equal(t, "Jazz on the Green", ev.Name)
	assert.Equal(t, "2026-07-09", ev.Date)
	assert.Equal(t, "19:00", ev.Time)
	assert.Equal(t, "2026-07-09", ev.EndDate)
	assert.Equal(t, "22:00", ev.EndTime)
	assert.Equal(t, "Lincoln, NE", ev.Location)
	assert.Equal(t, "Turner Park", ev.Venue)
	assert.Equal(t, "music", ev.Category)
	assert.Equal(t, "https://events.example/jazz-on-the-green", ev.URL)

	// Audience labels and the group label both land in tags.
	assert.Contains(t, ev.Tags, "Public")
	assert.Contains(t, ev.Tags, "Omaha Performing Arts")
	// The generalizer enriches tags from the text ("jazz", "concert").
	assert.Contains(t, ev.Tags, "music")
	assert.Contains(t, ev.Tags, "performance")
}

func TestTransformDefaultsEndToStart(t *testing.T) {
	raw := rawJazz()
	raw.End = ""
	ev, ok := NewSeeder(nil).transform(raw)
	require.True(t, ok)
	assert.Equal(t, ev.Date, ev.EndDate)
	assert.Equal(t, ev.Time, ev.EndTime)
}

func TestTransformDateOnlyStart(t *testing.T) {
	raw := rawJazz()
	raw.Start = "2026-07-09"
	raw.End = ""
	ev, ok := NewSeeder(nil).transform(raw)
	require.True(t, ok)
	assert.Equal(t, "2026-07-09", ev.Date)
	assert.Equal(t, "", ev.Time)
}

func TestTransformSkipsUnparseableStart(t *testing.T) {
	raw := rawJazz()
	raw.Start = ""
	_, ok := NewSeeder(nil).transform(raw)
	assert.False(t, ok)

	raw.Start = "soon"
	_, ok = NewSeeder(nil).transform(raw)
	assert.False(t, ok)
}

func TestTransformUntitledDefault(t *testing.T) {
	raw := rawJazz()
	raw.Title = ""
	ev, ok := NewSeeder(nil).transform(raw)
	require.True(t, ok)
	assert.Equal(t, "Untitled Event", ev.Name)
}

func TestSeedBulkLoad(t *testing.T) {
	st := store.OpenTest(t)
	seeder := NewSeeder(st)

	n, err := seeder.Seed([]model.RawEvent{rawJazz(), {Title: "No date"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n) // the dateless record is silently skipped

	count, err := st.CountEvents()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInsertNewDedupsByURL(t *testing.T) {
	st := store.OpenTest(t)
	seeder := NewSeeder(st)

	_, err := seeder.Seed([]model.RawEvent{rawJazz()})
	require.NoError(t, err)

	fresh := rawJazz()
	fresh.URL = "https://events.example/other"
	fresh.Title = "Other Event"

	added, err := seeder.InsertNew([]model.RawEvent{rawJazz(), fresh})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	// Running the exact same batch again adds nothing.
	added, err = seeder.InsertNew([]model.RawEvent{rawJazz(), fresh})
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	count, err := st.CountEvents()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInsertNewAlwaysInsertsURLLessRecords(t *testing.T) {
	st := store.OpenTest(t)
	seeder := NewSeeder(st)

	noURL := rawJazz()
	noURL.URL = ""

	added, err := seeder.InsertNew([]model.RawEvent{noURL})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	added, err = seeder.InsertNew([]model.RawEvent{noURL})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}
