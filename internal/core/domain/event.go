package domain

// Platform is a named event source identified by a stable id.
type Platform struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlatformAll is the selector value that disables platform filtering.
const PlatformAll = "all"

// DefaultTime is the time-of-day assumed for events without one.
const DefaultTime = "00:00:00"

// Event is one calendar entry for a given date. Events are immutable value
// records retrieved wholesale per date; optional fields are zero when absent
// and resolved through TimeOfDay and Weight, never at call sites.
type Event struct {
	Platform      string   `json:"platform"`
	EventDate     string   `json:"event_date"`
	EventTime     string   `json:"event_time,omitempty"`
	Title         string   `json:"title"`
	Content       string   `json:"content,omitempty"`
	Category      string   `json:"category,omitempty"`
	Country       string   `json:"country,omitempty"`
	City          string   `json:"city,omitempty"`
	Stocks        []string `json:"stocks,omitempty"`
	Importance    int      `json:"importance,omitempty"`
	IsNew         bool     `json:"is_new,omitempty"`
	DiscoveryDate string   `json:"discovery_date,omitempty"`
}

// TimeOfDay returns the event's HH:MM:SS time, defaulting absent times to
// DefaultTime so they order before any timed event on the same day.
func (e Event) TimeOfDay() string {
	if e.EventTime == "" {
		return DefaultTime
	}
	return e.EventTime
}

// Weight returns the importance in the 1..5 domain, defaulting to 1.
func (e Event) Weight() int {
	if e.Importance < 1 {
		return 1
	}
	return e.Importance
}
