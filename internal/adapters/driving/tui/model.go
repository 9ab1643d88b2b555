// Package tui is the interactive presentation surface: a date-scoped event
// list with platform and novelty filters and a clipboard export action.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincal-labs/fincal-cli/internal/adapters/driving/tui/messages"
	"github.com/fincal-labs/fincal-cli/internal/adapters/driving/tui/styles"
	"github.com/fincal-labs/fincal-cli/internal/core/domain"
	"github.com/fincal-labs/fincal-cli/internal/core/ports/driven"
	"github.com/fincal-labs/fincal-cli/internal/core/ports/driving"
	"github.com/fincal-labs/fincal-cli/internal/core/services"
	"github.com/fincal-labs/fincal-cli/internal/logger"
)

const defaultRevertDelay = 2 * time.Second

const emptyDatePrompt = "enter a date (YYYY-MM-DD)"

// Model drives the calendar screen. All query state lives in an immutable
// services.State value replaced through its reducers; the model itself only
// holds widget state and the transient export indicator.
type Model struct {
	styles   *styles.Styles
	keys     KeyMap
	calendar driving.CalendarService
	clip     driven.Clipboard

	state       services.State
	dateInput   textinput.Model
	spin        spinner.Model
	editingDate bool
	platformIdx int
	copied      bool
	notice      string
	revertDelay time.Duration
	started     bool

	width  int
	height int
	ready  bool
}

// NewModel creates the calendar screen with the date preset to today.
func NewModel(calendar driving.CalendarService, clip driven.Clipboard, s *styles.Styles, revertDelay time.Duration) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if revertDelay <= 0 {
		revertDelay = defaultRevertDelay
	}

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Prompt = ""
	ti.SetValue(time.Now().Format("2006-01-02"))

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &Model{
		styles:      s,
		keys:        DefaultKeyMap(),
		calendar:    calendar,
		clip:        clip,
		state:       services.NewState(ti.Value()),
		dateInput:   ti,
		spin:        sp,
		revertDelay: revertDelay,
	}
}

// Init loads the platform catalog. The startup day query follows once the
// metadata retrieval settles, whether or not it succeeded.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadMetadata(), m.spin.Tick)
}

// Update handles messages and key input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case messages.MetadataLoaded:
		// Failure degrades platform-name display only; the startup query
		// proceeds regardless.
		if !m.started {
			m.started = true
			return m, m.submitQuery()
		}
		return m, nil

	case messages.QueryCompleted:
		m.state = m.state.WithResult(services.QueryResult{
			Token:  msg.Token,
			Date:   msg.Date,
			Events: msg.Events,
			Err:    msg.Err,
		})
		return m, nil

	case messages.ExportFinished:
		if msg.Err != nil {
			m.notice = "copy failed, export written to log"
			return m, nil
		}
		m.copied = true
		m.notice = ""
		return m, tea.Tick(m.revertDelay, func(time.Time) tea.Msg {
			return messages.ExportReverted{}
		})

	case messages.ExportReverted:
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingDate {
		return m.handleDateInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.EditDate):
		m.editingDate = true
		m.dateInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Query):
		return m, m.submitQuery()

	case key.Matches(msg, m.keys.Platform):
		m.cyclePlatform()
		return m, nil

	case key.Matches(msg, m.keys.NewOnly):
		c := m.state.Criteria
		c.NewOnly = !c.NewOnly
		m.state = m.state.WithCriteria(c)
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.exportFiltered()
	}

	return m, nil
}

func (m *Model) handleDateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editingDate = false
		m.dateInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.editingDate = false
		m.dateInput.Blur()
		return m, m.submitQuery()
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

// submitQuery begins a date query through the state reducer. An empty date
// surfaces a prompt and causes no transition.
func (m *Model) submitQuery() tea.Cmd {
	date := strings.TrimSpace(m.dateInput.Value())
	next, token, err := m.state.WithQuery(date)
	if err != nil {
		m.notice = emptyDatePrompt
		return nil
	}
	m.notice = ""
	m.state = next
	return tea.Batch(m.spin.Tick, m.fetchDay(date, token))
}

func (m *Model) fetchDay(date string, token uint64) tea.Cmd {
	return func() tea.Msg {
		events, err := m.calendar.FetchDay(context.Background(), date)
		return messages.QueryCompleted{Token: token, Date: date, Events: events, Err: err}
	}
}

func (m *Model) loadMetadata() tea.Cmd {
	return func() tea.Msg {
		err := m.calendar.LoadMetadata(context.Background())
		return messages.MetadataLoaded{Err: err}
	}
}

// cyclePlatform walks all → each catalog platform → all.
func (m *Model) cyclePlatform() {
	platforms := m.calendar.Platforms()
	m.platformIdx = (m.platformIdx + 1) % (len(platforms) + 1)

	c := m.state.Criteria
	if m.platformIdx == 0 {
		c.Platform = domain.PlatformAll
	} else {
		c.Platform = platforms[m.platformIdx-1].ID
	}
	m.state = m.state.WithCriteria(c)
}

// exportFiltered serializes the currently filtered set and writes it to the
// clipboard. On write failure the payload goes to the log for manual
// recovery and the copied indicator is not shown.
func (m *Model) exportFiltered() tea.Cmd {
	text, err := m.calendar.Export(m.state.Events, m.state.Criteria)
	if err != nil {
		return func() tea.Msg { return messages.ExportFinished{Err: err} }
	}

	clip := m.clip
	return func() tea.Msg {
		if err := clip.Write(text); err != nil {
			logger.Error().Err(err).Msg("clipboard write failed")
			logger.Info().Str("export", text).Msg("export payload for manual recovery")
			return messages.ExportFinished{Err: err}
		}
		return messages.ExportFinished{}
	}
}
