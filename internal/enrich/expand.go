package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gatherhq/gather/internal/common"
	"github.com/gatherhq/gather/internal/model"
)

const expandPrompt = `Today is %s (%s).

You are helping search a local event database. Given a query, do three things:

1. KEYWORD EXPANSION: Extract the core topics and expand each general term into specific concrete examples.
   - Include the original term AND its specific instances (e.g. "food" -> ["food", "pasta", "pizza", "tacos", "burger", "salad", "BBQ", "sushi"])
   - Include synonyms, related activities, and subcategories (e.g. "music" -> ["music", "concert", "jazz", "rock", "band", "choir", "orchestra", "recital"])
   - Include relevant people/roles (e.g. "volunteer" -> ["volunteer", "service", "community", "outreach", "nonprofit"])
   - Keep all keywords lowercase, single words or short phrases

2. DATE EXTRACTION: Resolve any relative date references using today's date.
   - "today" -> today's date
   - "tomorrow" -> tomorrow's date
   - "this weekend" -> nearest Saturday and Sunday
   - "next week" -> next Monday through Sunday
   - "two weeks from now" -> date 14 days from today
   - If no date is mentioned, return null for both date fields

3. TIME EXTRACTION: Resolve any time-of-day references to 24h "HH:MM" bounds.
   - "in the evening" -> time_from "17:00"
   - "before noon" -> time_to "12:00"
   - If no time of day is mentioned, return null for both time fields

Return ONLY a JSON object with no extra text.

Query: "%s"
JSON: {"keywords": ["keyword1", "keyword2", ...], "date_from": "YYYY-MM-DD or null", "date_to": "YYYY-MM-DD or null", "time_from": "HH:MM or null", "time_to": "HH:MM or null"}`

type expansion struct {
	Keywords []string `json:"keywords"`
	DateFrom string   `json:"date_from"`
	DateTo   string   `json:"date_to"`
	TimeFrom string   `json:"time_from"`
	TimeTo   string   `json:"time_to"`
}

// expand asks the language model for richer keywords and resolved date/time
// ranges. Returned keywords are already stop-word filtered.
func (s *Service) expand(ctx context.Context, query string) ([]string, *model.DateRange, *model.TimeRange, error) {
	now := s.now()
	prompt := fmt.Sprintf(expandPrompt, now.Format("2006-01-02 15:04"), now.Weekday(), query)

	response, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, nil, nil, err
	}

	parsed, err := common.ParseJSON[expansion](response)
	if err != nil {
		return nil, nil, nil, err
	}

	var keywords []string
	for _, kw := range parsed.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len(kw) > 1 && !stopWords[kw] {
			keywords = append(keywords, kw)
		}
	}

	var dateRange *model.DateRange
	if start, ok := validDate(parsed.DateFrom); ok {
		end := start
		if e, ok := validDate(parsed.DateTo); ok {
			end = e
		}
		dateRange = &model.DateRange{Start: start, End: end}
	}

	var timeRange *model.TimeRange
	from, okFrom := validClock(parsed.TimeFrom)
	to, okTo := validClock(parsed.TimeTo)
	if okFrom || okTo {
		timeRange = &model.TimeRange{Start: from, End: to}
	}

	return keywords, dateRange, timeRange, nil
}

func validDate(v string) (string, bool) {
	if v == "" || v == "null" {
		return "", false
	}
	if _, err := time.Parse(dayFormat, v); err != nil {
		return "", false
	}
	return v, true
}

func validClock(v string) (string, bool) {
	if v == "" || v == "null" {
		return "", false
	}
	if _, err := time.Parse("15:04", v); err != nil {
		return "", false
	}
	return v, true
}
