package driving

import (
	"context"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
)

// CalendarService is the driving port for the presentation surface. The
// pure pipeline (filter, sort, view model, export) lives behind Render and
// Export so the surface never touches raw events directly.
type CalendarService interface {
	// LoadMetadata retrieves and stores the platform catalog. It is called
	// once at startup; on failure the service keeps functioning with
	// platform names falling back to raw ids.
	LoadMetadata(ctx context.Context) error

	// Platforms returns the loaded catalog, empty when metadata failed.
	Platforms() []domain.Platform

	// PlatformName resolves a platform id to its display name, falling back
	// to the raw id when the catalog is absent or the id is unknown.
	PlatformName(id string) string

	// FetchDay retrieves the event collection for an ISO date. Returns
	// domain.ErrNoData for an absent dataset.
	FetchDay(ctx context.Context, date string) ([]domain.Event, error)

	// Render filters, sorts, and assembles the render model for display.
	Render(events []domain.Event, c domain.FilterCriteria) domain.RenderModel

	// Export serializes the currently filtered set to canonical JSON text.
	Export(events []domain.Event, c domain.FilterCriteria) (string, error)
}
