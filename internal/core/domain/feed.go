package domain

// DayDocument is the per-date event document served from the data tree.
// Absence of the resource for a date is a valid "no data" signal, distinct
// from a transport failure.
type DayDocument struct {
	Date        string         `json:"date"`
	TotalEvents int            `json:"total_events"`
	NewEvents   int            `json:"new_events"`
	Platforms   map[string]int `json:"platforms"`
	Events      []Event        `json:"events"`
}

// DateRange bounds the dates covered by the data tree.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Metadata is the platform catalog document, retrieved once at startup.
type Metadata struct {
	Platforms   []Platform `json:"platforms"`
	DateRange   DateRange  `json:"date_range"`
	LastUpdated string     `json:"last_updated"`
}

// LatestSummary is the generator's most-recent-day digest.
type LatestSummary struct {
	Date        string `json:"date"`
	TotalEvents int    `json:"total_events"`
	NewEvents   int    `json:"new_events"`
	LastUpdated string `json:"last_updated"`
}
