package services

import (
	"sort"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
)

// SortByTime returns a new slice ordered ascending by time of day. The
// HH:MM:SS shape makes lexical comparison chronological for same-day values;
// events without a time sort first as domain.DefaultTime. The sort is stable:
// equal times keep their relative input order.
func SortByTime(events []domain.Event) []domain.Event {
	out := make([]domain.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimeOfDay() < out[j].TimeOfDay()
	})
	return out
}
