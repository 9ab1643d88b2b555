package services

import "github.com/fincal-labs/fincal-cli/internal/core/domain"

// Filter returns the order-preserving subset of events matching the
// criteria. Platform and novelty criteria compose by AND; the input is never
// mutated. Filtering twice with the same criteria yields the same subset.
func Filter(events []domain.Event, c domain.FilterCriteria) []domain.Event {
	if c.IsIdentity() {
		return events
	}

	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if c.Platform != "" && c.Platform != domain.PlatformAll && e.Platform != c.Platform {
			continue
		}
		if c.NewOnly && !e.IsNew {
			continue
		}
		out = append(out, e)
	}
	return out
}
