package model

// Event is a catalog row as served to clients. Dates are "YYYY-MM-DD" and
// times are 24h "HH:MM" strings, so lexicographic comparison matches
// chronological order.
type Event struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	EndDate     string   `json:"endDate"`
	EndTime     string   `json:"endTime"`
	Location    string   `json:"location"`
	Venue       string   `json:"venue"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	GroupCount  int      `json:"groupCount"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"imageUrl"`
}

// ScoredEvent is an Event plus its search relevance score.
type ScoredEvent struct {
	Event
	Score float64 `json:"score"`
}

// RawEvent is one record of the upstream feed, before it is transformed
// into a catalog Event. Start/End are ISO-ish timestamps.
type RawEvent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Location    string   `json:"location"`
	Group       string   `json:"group"`
	Audience    []string `json:"audience"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url"`
}

// DateRange is an inclusive calendar date range.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeRange bounds the event start time. Either bound may be empty,
// meaning that side is open.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RemoteResult is one entry of the pre-ranked pool returned by the
// query-understanding service.
type RemoteResult struct {
	URL      string  `json:"url"`
	Title    string  `json:"title"`
	Start    string  `json:"start"`
	Location string  `json:"location"`
	Group    string  `json:"group"`
	ImageURL string  `json:"image_url"`
	Score    float64 `json:"score"`
}
