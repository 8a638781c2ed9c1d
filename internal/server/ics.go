package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/gatherhq/gather/internal/model"
)

// BuildICS renders a single-event iCalendar document. Times are emitted as
// floating local times since catalog events carry no zone information. An
// event without a start time becomes an all-day entry.
func BuildICS(ev *model.Event) string {
	var b strings.Builder
	write := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	write("BEGIN:VCALENDAR")
	write("VERSION:2.0")
	write("PRODID:-//gather//events//EN")
	write("BEGIN:VEVENT")
	write(fmt.Sprintf("UID:event-%d@gather", ev.ID))
	write("DTSTAMP:" + time.Now().UTC().Format("20060102T150405Z"))

	endDate := ev.EndDate
	if endDate == "" {
		endDate = ev.Date
	}
	endTime := ev.EndTime
	if endTime == "" {
		endTime = ev.Time
	}

	if ev.Time == "" {
		write("DTSTART;VALUE=DATE:" + compactDate(ev.Date))
		// DTEND is exclusive for all-day events.
		write("DTEND;VALUE=DATE:" + compactDate(nextDay(endDate)))
	} else {
		write("DTSTART:" + compactDate(ev.Date) + "T" + compactClock(ev.Time))
		write("DTEND:" + compactDate(endDate) + "T" + compactClock(endTime))
	}

	write("SUMMARY:" + escapeICS(ev.Name))
	if ev.Description != "" {
		write("DESCRIPTION:" + escapeICS(ev.Description))
	}
	location := ev.Venue
	if location == "" {
		location = ev.Location
	} else if ev.Location != "" && ev.Location != ev.Venue {
		location = ev.Venue + ", " + ev.Location
	}
	if location != "" {
		write("LOCATION:" + escapeICS(location))
	}
	if ev.URL != "" {
		write("URL:" + ev.URL)
	}
	write("END:VEVENT")
	write("END:VCALENDAR")
	return b.String()
}

// escapeICS escapes text per RFC 5545 section 3.3.11.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

func compactDate(d string) string {
	return strings.ReplaceAll(d, "-", "")
}

func compactClock(t string) string {
	return strings.ReplaceAll(t, ":", "") + "00"
}

func nextDay(d string) string {
	parsed, err := time.Parse("2006-01-02", d)
	if err != nil {
		return d
	}
	return parsed.AddDate(0, 0, 1).Format("2006-01-02")
}
