package services

import (
	"fmt"
	"strings"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
)

const maxStocksShown = 3

// BuildRenderModel assembles the display structure for an already filtered
// and sorted event collection. Platform ids resolve through the catalog and
// fall back to the raw id when the catalog is empty or the id is unknown.
// Source events are never mutated.
func BuildRenderModel(events []domain.Event, platforms []domain.Platform) domain.RenderModel {
	names := make(map[string]string, len(platforms))
	for _, p := range platforms {
		if _, ok := names[p.ID]; !ok {
			names[p.ID] = p.Name
		}
	}

	m := domain.RenderModel{
		TotalCount: len(events),
		Items:      make([]domain.EventView, 0, len(events)),
	}
	for _, e := range events {
		if e.IsNew {
			m.NewCount++
		}
		m.Items = append(m.Items, buildEventView(e, names))
	}
	return m
}

func buildEventView(e domain.Event, names map[string]string) domain.EventView {
	name, ok := names[e.Platform]
	if !ok {
		name = e.Platform
	}

	return domain.EventView{
		Time:         e.TimeOfDay(),
		Title:        e.Title,
		Content:      e.Content,
		PlatformName: name,
		Stars:        strings.Repeat("★", e.Weight()),
		IsNew:        e.IsNew,
		Details:      buildDetails(e),
	}
}

// buildDetails lists present-only attributes in fixed priority order:
// category, country, city, stocks, then discovery date for new events.
func buildDetails(e domain.Event) []string {
	var details []string
	if e.Category != "" {
		details = append(details, e.Category)
	}
	if e.Country != "" {
		details = append(details, e.Country)
	}
	if e.City != "" {
		details = append(details, e.City)
	}
	if len(e.Stocks) > 0 {
		details = append(details, formatStocks(e.Stocks))
	}
	if e.IsNew && e.DiscoveryDate != "" {
		details = append(details, "discovered "+e.DiscoveryDate)
	}
	return details
}

func formatStocks(stocks []string) string {
	if len(stocks) <= maxStocksShown {
		return strings.Join(stocks, ", ")
	}
	shown := strings.Join(stocks[:maxStocksShown], ", ")
	return fmt.Sprintf("%s and %d more", shown, len(stocks)-maxStocksShown)
}
