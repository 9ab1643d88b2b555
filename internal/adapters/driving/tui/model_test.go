package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincal-labs/fincal-cli/internal/adapters/driving/tui/messages"
	"github.com/fincal-labs/fincal-cli/internal/core/domain"
	"github.com/fincal-labs/fincal-cli/internal/core/services"
)

var testPlatforms = []domain.Platform{
	{ID: "cls", Name: "财联社"},
	{ID: "eastmoney", Name: "东方财富"},
}

// MockCalendarService implements driving.CalendarService for testing.
type MockCalendarService struct {
	LoadMetadataFunc func(ctx context.Context) error
	FetchDayFunc     func(ctx context.Context, date string) ([]domain.Event, error)
	ExportFunc       func(events []domain.Event, c domain.FilterCriteria) (string, error)
}

func (m *MockCalendarService) LoadMetadata(ctx context.Context) error {
	if m.LoadMetadataFunc != nil {
		return m.LoadMetadataFunc(ctx)
	}
	return nil
}

func (m *MockCalendarService) Platforms() []domain.Platform { return testPlatforms }

func (m *MockCalendarService) PlatformName(id string) string {
	for _, p := range testPlatforms {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

func (m *MockCalendarService) FetchDay(ctx context.Context, date string) ([]domain.Event, error) {
	if m.FetchDayFunc != nil {
		return m.FetchDayFunc(ctx, date)
	}
	return nil, nil
}

func (m *MockCalendarService) Render(events []domain.Event, c domain.FilterCriteria) domain.RenderModel {
	return services.BuildRenderModel(services.SortByTime(services.Filter(events, c)), testPlatforms)
}

func (m *MockCalendarService) Export(events []domain.Event, c domain.FilterCriteria) (string, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(events, c)
	}
	return services.Serialize(services.Filter(events, c))
}

// MockClipboard implements driven.Clipboard for testing.
type MockClipboard struct {
	WriteFunc func(text string) error
	written   string
}

func (m *MockClipboard) Write(text string) error {
	m.written = text
	if m.WriteFunc != nil {
		return m.WriteFunc(text)
	}
	return nil
}

func newTestModel() (*Model, *MockCalendarService, *MockClipboard) {
	calendar := &MockCalendarService{}
	clip := &MockClipboard{}
	return NewModel(calendar, clip, nil, 50*time.Millisecond), calendar, clip
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func updated(t *testing.T, m tea.Model, msg tea.Msg) (*Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(*Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewModel_PresetsTodaysDate(t *testing.T) {
	m, _, _ := newTestModel()

	assert.Equal(t, time.Now().Format("2006-01-02"), m.dateInput.Value())
	assert.Equal(t, services.PhaseIdle, m.state.Phase)
	assert.Equal(t, domain.DefaultCriteria(), m.state.Criteria)
}

func TestModel_MetadataLoadedStartsFirstQuery(t *testing.T) {
	m, _, _ := newTestModel()

	m, cmd := updated(t, m, messages.MetadataLoaded{})

	assert.True(t, m.started)
	assert.Equal(t, services.PhaseLoading, m.state.Phase)
	assert.NotNil(t, cmd)
}

func TestModel_MetadataFailureStillStartsQuery(t *testing.T) {
	m, _, _ := newTestModel()

	m, cmd := updated(t, m, messages.MetadataLoaded{Err: errors.New("unavailable")})

	assert.True(t, m.started)
	assert.Equal(t, services.PhaseLoading, m.state.Phase)
	assert.NotNil(t, cmd)
}

func TestModel_MetadataLoadedOnlyStartsOnce(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = updated(t, m, messages.MetadataLoaded{})
	firstToken := m.state.Token

	m, cmd := updated(t, m, messages.MetadataLoaded{})

	assert.Nil(t, cmd)
	assert.Equal(t, firstToken, m.state.Token)
}

func TestModel_QueryCompleted(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = updated(t, m, messages.MetadataLoaded{})

	events := []domain.Event{{Platform: "cls", Title: "a"}}
	m, _ = updated(t, m, messages.QueryCompleted{
		Token: m.state.Token, Date: m.state.Date, Events: events,
	})

	assert.Equal(t, services.PhaseLoaded, m.state.Phase)
	assert.Equal(t, events, m.state.Events)
}

func TestModel_QueryCompleted_StaleTokenIgnored(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = updated(t, m, messages.MetadataLoaded{})
	staleToken := m.state.Token

	// A second query supersedes the first.
	m.dateInput.SetValue("2025-06-02")
	m, _ = updated(t, m, keyRune('r'))
	m, _ = updated(t, m, messages.QueryCompleted{
		Token: m.state.Token, Date: "2025-06-02",
		Events: []domain.Event{{Title: "current"}},
	})

	m, _ = updated(t, m, messages.QueryCompleted{
		Token: staleToken, Date: "2025-06-01",
		Events: []domain.Event{{Title: "stale"}},
	})

	require.Len(t, m.state.Events, 1)
	assert.Equal(t, "current", m.state.Events[0].Title)
}

func TestModel_QueryCompleted_NoDataShowsNotice(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = updated(t, m, messages.MetadataLoaded{})

	m, _ = updated(t, m, messages.QueryCompleted{Token: m.state.Token, Err: domain.ErrNoData})

	assert.Equal(t, services.PhaseLoaded, m.state.Phase)
	assert.Equal(t, services.NoticeNoData, m.state.Notice)
	assert.Contains(t, m.View(), services.NoticeNoData)
}

func TestModel_QueryCompleted_FailureShowsError(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = updated(t, m, messages.MetadataLoaded{})

	m, _ = updated(t, m, messages.QueryCompleted{Token: m.state.Token, Err: errors.New("status 500")})

	assert.Equal(t, services.PhaseFailed, m.state.Phase)
	assert.Contains(t, m.View(), services.NoticeFailure)
}

func TestModel_EmptyDateShowsPromptWithoutQuerying(t *testing.T) {
	m, _, _ := newTestModel()
	m.dateInput.SetValue("")

	cmd := m.submitQuery()

	assert.Nil(t, cmd)
	assert.Equal(t, services.PhaseIdle, m.state.Phase)
	assert.Equal(t, emptyDatePrompt, m.notice)
}

func TestModel_DateEditing(t *testing.T) {
	m, _, _ := newTestModel()

	m, _ = updated(t, m, keyRune('d'))
	assert.True(t, m.editingDate)

	// Escape cancels without querying.
	m, cmd := updated(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editingDate)
	assert.Nil(t, cmd)
	assert.Equal(t, services.PhaseIdle, m.state.Phase)
}

func TestModel_DateEditing_EnterSubmits(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = updated(t, m, keyRune('d'))
	m.dateInput.SetValue("2025-06-01")

	m, cmd := updated(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.editingDate)
	assert.NotNil(t, cmd)
	assert.Equal(t, services.PhaseLoading, m.state.Phase)
	assert.Equal(t, "2025-06-01", m.state.Date)
}

func TestModel_NewOnlyToggle(t *testing.T) {
	m, _, _ := newTestModel()

	m, _ = updated(t, m, keyRune('n'))
	assert.True(t, m.state.Criteria.NewOnly)

	m, _ = updated(t, m, keyRune('n'))
	assert.False(t, m.state.Criteria.NewOnly)
}

func TestModel_PlatformCycle(t *testing.T) {
	m, _, _ := newTestModel()

	m, _ = updated(t, m, keyRune('p'))
	assert.Equal(t, "cls", m.state.Criteria.Platform)

	m, _ = updated(t, m, keyRune('p'))
	assert.Equal(t, "eastmoney", m.state.Criteria.Platform)

	m, _ = updated(t, m, keyRune('p'))
	assert.Equal(t, domain.PlatformAll, m.state.Criteria.Platform)
}

func TestModel_FilterChangeKeepsLoadedEvents(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = updated(t, m, messages.MetadataLoaded{})
	m, _ = updated(t, m, messages.QueryCompleted{
		Token: m.state.Token, Events: []domain.Event{{Platform: "cls", Title: "a"}},
	})

	m, _ = updated(t, m, keyRune('n'))

	assert.Equal(t, services.PhaseLoaded, m.state.Phase)
	assert.Len(t, m.state.Events, 1)
}

func TestModel_ExportWritesFilteredJSON(t *testing.T) {
	m, _, clip := newTestModel()
	m, _ = updated(t, m, messages.MetadataLoaded{})
	m, _ = updated(t, m, messages.QueryCompleted{
		Token: m.state.Token,
		Events: []domain.Event{
			{Platform: "cls", EventDate: "2025-06-01", Title: "kept", IsNew: true},
			{Platform: "cls", EventDate: "2025-06-01", Title: "dropped"},
		},
	})
	m, _ = updated(t, m, keyRune('n'))

	_, cmd := updated(t, m, keyRune('c'))
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, messages.ExportFinished{}, msg)
	assert.Contains(t, clip.written, "kept")
	assert.NotContains(t, clip.written, "dropped")
}

func TestModel_ExportFinishedShowsCopiedThenReverts(t *testing.T) {
	m, _, _ := newTestModel()

	m, cmd := updated(t, m, messages.ExportFinished{})
	assert.True(t, m.copied)
	assert.Contains(t, m.View(), "copied!")
	require.NotNil(t, cmd)

	m, _ = updated(t, m, messages.ExportReverted{})
	assert.False(t, m.copied)
	assert.NotContains(t, m.View(), "copied!")
}

func TestModel_ExportClipboardFailure(t *testing.T) {
	m, _, clip := newTestModel()
	clip.WriteFunc = func(string) error { return errors.New("no display") }
	m, _ = updated(t, m, messages.MetadataLoaded{})
	m, _ = updated(t, m, messages.QueryCompleted{
		Token: m.state.Token, Events: []domain.Event{{Platform: "cls", Title: "a"}},
	})

	_, cmd := updated(t, m, keyRune('c'))
	require.NotNil(t, cmd)
	msg := cmd()
	finished, ok := msg.(messages.ExportFinished)
	require.True(t, ok)
	require.Error(t, finished.Err)

	m, _ = updated(t, m, finished)
	assert.False(t, m.copied)
	assert.NotEmpty(t, m.notice)
}

func TestModel_QuitKey(t *testing.T) {
	m, _, _ := newTestModel()

	_, cmd := updated(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewShowsStats(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = updated(t, m, messages.MetadataLoaded{})
	m, _ = updated(t, m, messages.QueryCompleted{
		Token: m.state.Token,
		Events: []domain.Event{
			{Platform: "cls", EventTime: "09:00:00", Title: "opening", IsNew: true},
			{Platform: "eastmoney", Title: "untimed"},
		},
	})

	view := m.View()

	assert.Contains(t, view, "2 events · 1 new")
	assert.Contains(t, view, "opening")
	assert.Contains(t, view, "财联社")
	assert.Contains(t, view, "NEW")
}
