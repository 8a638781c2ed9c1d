package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhq/gather/internal/model"
)

// Wednesday.
var wednesday = time.Date(2026, 3, 18, 14, 0, 0, 0, time.UTC)

func TestExtractDateRangeTonight(t *testing.T) {
	dr := ExtractDateRange("jazz tonight", wednesday)
	require.NotNil(t, dr)
	assert.Equal(t, &model.DateRange{Start: "2026-03-18", End: "2026-03-18"}, dr)
}

func TestExtractDateRangeTomorrow(t *testing.T) {
	dr := ExtractDateRange("anything fun tomorrow?", wednesday)
	require.NotNil(t, dr)
	assert.Equal(t, &model.DateRange{Start: "2026-03-19", End: "2026-03-19"}, dr)
}

func TestExtractDateRangeWeekend(t *testing.T) {
	dr := ExtractDateRange("concerts this weekend", wednesday)
	require.NotNil(t, dr)
	assert.Equal(t, &model.DateRange{Start: "2026-03-21", End: "2026-03-22"}, dr)
}

func TestExtractDateRangeWeekendOnSaturday(t *testing.T) {
	sat := time.Date(2026, 3, 21, 9, 0, 0, 0, time.UTC)
	dr := ExtractDateRange("weekend plans", sat)
	require.NotNil(t, dr)
	// A Saturday rolls over to the following weekend.
	assert.Equal(t, &model.DateRange{Start: "2026-03-28", End: "2026-03-29"}, dr)
}

func TestExtractDateRangeWeekendOnSunday(t *testing.T) {
	sun := time.Date(2026, 3, 22, 9, 0, 0, 0, time.UTC)
	dr := ExtractDateRange("weekend plans", sun)
	require.NotNil(t, dr)
	assert.Equal(t, &model.DateRange{Start: "2026-03-28", End: "2026-03-29"}, dr)
}

func TestExtractDateRangeNextWeek(t *testing.T) {
	dr := ExtractDateRange("workshops next week", wednesday)
	require.NotNil(t, dr)
	assert.Equal(t, &model.DateRange{Start: "2026-03-23", End: "2026-03-29"}, dr)
}

func TestExtractDateRangeNextWeekOnMonday(t *testing.T) {
	mon := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	dr := ExtractDateRange("next week", mon)
	require.NotNil(t, dr)
	assert.Equal(t, &model.DateRange{Start: "2026-03-23", End: "2026-03-29"}, dr)
}

func TestExtractDateRangeNoPhrase(t *testing.T) {
	assert.Nil(t, ExtractDateRange("jazz concerts downtown", wednesday))
}
