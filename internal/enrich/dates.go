package enrich

import (
	"strings"
	"time"

	"github.com/gatherhq/gather/internal/model"
)

const dayFormat = "2006-01-02"

// ExtractDateRange resolves the relative date phrases the LLM-free path
// understands. Anything fancier needs the language model.
func ExtractDateRange(query string, now time.Time) *model.DateRange {
	q := strings.ToLower(query)
	today := now

	switch {
	case strings.Contains(q, "tonight"):
		return dayRange(today, today)
	case strings.Contains(q, "tomorrow"):
		d := today.AddDate(0, 0, 1)
		return dayRange(d, d)
	case strings.Contains(q, "weekend"):
		// Nearest upcoming Saturday and Sunday; on a Saturday, the next one.
		days := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		sat := today.AddDate(0, 0, days)
		return dayRange(sat, sat.AddDate(0, 0, 1))
	case strings.Contains(q, "next week"):
		// Next Monday through Sunday.
		days := (int(time.Monday) - int(today.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		mon := today.AddDate(0, 0, days)
		return dayRange(mon, mon.AddDate(0, 0, 6))
	}
	return nil
}

func dayRange(start, end time.Time) *model.DateRange {
	return &model.DateRange{Start: start.Format(dayFormat), End: end.Format(dayFormat)}
}
