package services

import (
	"context"
	"errors"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
	"github.com/fincal-labs/fincal-cli/internal/core/ports/driven"
	"github.com/fincal-labs/fincal-cli/internal/core/ports/driving"
	"github.com/fincal-labs/fincal-cli/internal/logger"
)

// Ensure CalendarService implements the interface.
var _ driving.CalendarService = (*CalendarService)(nil)

// CalendarService owns the platform catalog and fronts the event source for
// the presentation surface. The catalog is written once by LoadMetadata and
// read-only afterwards.
type CalendarService struct {
	source    driven.EventSource
	platforms []domain.Platform
}

// NewCalendarService creates a calendar service over an event source.
func NewCalendarService(source driven.EventSource) *CalendarService {
	return &CalendarService{source: source}
}

// LoadMetadata retrieves the platform catalog once at startup. On failure
// the store stays empty and the failure is logged; callers keep functioning
// with platform names falling back to raw ids.
func (s *CalendarService) LoadMetadata(ctx context.Context) error {
	md, err := s.source.FetchMetadata(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("metadata load failed, platform names fall back to ids")
		return err
	}
	s.platforms = md.Platforms
	logger.Info().Int("platforms", len(md.Platforms)).Msg("metadata loaded")
	return nil
}

// Platforms returns the loaded catalog, empty when metadata failed.
func (s *CalendarService) Platforms() []domain.Platform {
	return s.platforms
}

// PlatformName resolves an id to its display name, falling back to the id.
func (s *CalendarService) PlatformName(id string) string {
	for _, p := range s.platforms {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

// FetchDay retrieves the event collection for a date. A single attempt, no
// retry; domain.ErrNoData passes through as the valid-empty outcome and any
// other failure is logged.
func (s *CalendarService) FetchDay(ctx context.Context, date string) ([]domain.Event, error) {
	doc, err := s.source.FetchDay(ctx, date)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			logger.Debug().Str("date", date).Msg("no dataset for date")
		} else {
			logger.Error().Err(err).Str("date", date).Msg("event retrieval failed")
		}
		return nil, err
	}
	return doc.Events, nil
}

// Render runs the pure pipeline: filter, stable time sort, view model.
func (s *CalendarService) Render(events []domain.Event, c domain.FilterCriteria) domain.RenderModel {
	return BuildRenderModel(SortByTime(Filter(events, c)), s.platforms)
}

// Export serializes the filtered set in document order.
func (s *CalendarService) Export(events []domain.Event, c domain.FilterCriteria) (string, error) {
	return Serialize(Filter(events, c))
}
