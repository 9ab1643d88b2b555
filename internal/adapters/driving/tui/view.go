package tui

import (
	"fmt"
	"strings"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
	"github.com/fincal-labs/fincal-cli/internal/core/services"
)

// View renders the whole screen from the current state. The render model is
// rebuilt on every call, never patched incrementally.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("fincal · financial events calendar"))
	b.WriteString("\n\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	switch m.state.Phase {
	case services.PhaseLoading:
		b.WriteString(fmt.Sprintf("\n%s loading %s...\n", m.spin.View(), m.state.Date))
	case services.PhaseFailed:
		b.WriteString("\n" + m.styles.Error.Render(m.state.ErrMsg) + "\n")
	case services.PhaseLoaded:
		b.WriteString(m.renderResults())
	case services.PhaseIdle:
		// Nothing yet; the startup query is on its way.
	}

	if m.notice != "" {
		b.WriteString("\n" + m.styles.Notice.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m *Model) renderFilterBar() string {
	date := m.dateInput.Value()
	if m.editingDate {
		date = m.dateInput.View()
	}

	platform := "all platforms"
	if c := m.state.Criteria; c.Platform != "" && c.Platform != domain.PlatformAll {
		platform = m.styles.FilterOn.Render(m.calendar.PlatformName(c.Platform))
	}

	novelty := "all events"
	if m.state.Criteria.NewOnly {
		novelty = m.styles.FilterOn.Render("new only")
	}

	return fmt.Sprintf("date: %s   platform: %s   show: %s", date, platform, novelty)
}

func (m *Model) renderResults() string {
	model := m.calendar.Render(m.state.Events, m.state.Criteria)

	var b strings.Builder
	if m.state.Notice != "" {
		b.WriteString("\n" + m.styles.Notice.Render(m.state.Notice) + "\n")
		return b.String()
	}

	b.WriteString("\n" + m.styles.Stats.Render(
		fmt.Sprintf("%d events · %d new", model.TotalCount, model.NewCount)) + "\n\n")

	for _, item := range model.Items {
		b.WriteString(m.renderItem(item))
	}
	return b.String()
}

func (m *Model) renderItem(item domain.EventView) string {
	var b strings.Builder

	header := fmt.Sprintf("%s  %s  %s",
		m.styles.Time.Render(item.Time),
		m.styles.Stars.Render(item.Stars),
		m.styles.Event.Render(item.Title))
	if item.IsNew {
		header += "  " + m.styles.NewBadge.Render("NEW")
	}
	header += "  " + m.styles.Platform.Render("["+item.PlatformName+"]")
	b.WriteString(header + "\n")

	if len(item.Details) > 0 {
		b.WriteString("    " + m.styles.Detail.Render(strings.Join(item.Details, " · ")) + "\n")
	}
	if item.Content != "" {
		b.WriteString("    " + m.styles.Detail.Render(item.Content) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderHelp() string {
	export := "c copy json"
	if m.copied {
		export = m.styles.FilterOn.Render("copied!")
	}
	return m.styles.Help.Render(
		fmt.Sprintf("d edit date · enter query · p platform · n new only · %s · q quit", export))
}
