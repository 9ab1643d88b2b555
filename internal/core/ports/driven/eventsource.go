package driven

import (
	"context"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
)

// EventSource retrieves the calendar data documents. Implementations make a
// single attempt per call; callers distinguish domain.ErrNoData (absent day
// resource) from any other error (transport or parse failure).
type EventSource interface {
	// FetchMetadata retrieves the platform catalog document.
	FetchMetadata(ctx context.Context) (*domain.Metadata, error)

	// FetchDay retrieves the event document for an ISO date. Returns
	// domain.ErrNoData when the date has no dataset.
	FetchDay(ctx context.Context, date string) (*domain.DayDocument, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Write(text string) error
}
