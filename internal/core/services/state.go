package services

import (
	"errors"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
)

// Phase is the display phase of the query state machine.
type Phase int

const (
	// PhaseIdle is the initial phase before the first query.
	PhaseIdle Phase = iota
	// PhaseLoading has a query outstanding.
	PhaseLoading
	// PhaseLoaded holds the last successfully retrieved collection.
	PhaseLoaded
	// PhaseFailed holds a retrieval failure message.
	PhaseFailed
)

// User-facing messages for the two non-success retrieval outcomes.
const (
	NoticeNoData  = "no events for this date"
	NoticeFailure = "failed to load events"
)

// QueryResult is the completion of one date query, tagged with the request
// token it was issued under.
type QueryResult struct {
	Token  uint64
	Date   string
	Events []domain.Event
	Err    error
}

// State is the immutable controller state. Transitions go through the
// With... reducers, each returning the next state value; nothing mutates a
// State in place. Token is the most recently issued request token; results
// carrying any other token are stale and discarded, so the latest issued
// query always wins the displayed state even when completions arrive out of
// order.
type State struct {
	Phase    Phase
	Date     string
	Criteria domain.FilterCriteria
	Events   []domain.Event
	Notice   string
	ErrMsg   string
	Token    uint64
}

// NewState returns the idle initial state with the date preset.
func NewState(date string) State {
	return State{
		Phase:    PhaseIdle,
		Date:     date,
		Criteria: domain.DefaultCriteria(),
	}
}

// WithQuery begins a new date query from any phase, issuing a fresh request
// token. An empty date is rejected with domain.ErrEmptyDate and no
// transition. Outstanding queries are not cancelled; their results are
// discarded by the token check in WithResult.
func (s State) WithQuery(date string) (State, uint64, error) {
	if date == "" {
		return s, 0, domain.ErrEmptyDate
	}
	next := s
	next.Phase = PhaseLoading
	next.Date = date
	next.Notice = ""
	next.ErrMsg = ""
	next.Token++
	return next, next.Token, nil
}

// WithResult applies a query completion. Stale tokens leave the state
// untouched. domain.ErrNoData is a valid empty result with its own notice;
// any other error is a retrieval failure.
func (s State) WithResult(r QueryResult) State {
	if r.Token != s.Token {
		return s
	}

	next := s
	switch {
	case r.Err == nil:
		next.Phase = PhaseLoaded
		next.Events = r.Events
		next.Notice = ""
		next.ErrMsg = ""
	case errors.Is(r.Err, domain.ErrNoData):
		next.Phase = PhaseLoaded
		next.Events = nil
		next.Notice = NoticeNoData
		next.ErrMsg = ""
	default:
		next.Phase = PhaseFailed
		next.Events = nil
		next.Notice = ""
		next.ErrMsg = NoticeFailure
	}
	return next
}

// WithCriteria replaces the filter criteria. The render model is recomputed
// from the held collection; no phase transition and no network call.
func (s State) WithCriteria(c domain.FilterCriteria) State {
	next := s
	next.Criteria = c
	return next
}

// Loading reports whether a query is outstanding; it drives the loading
// indicator visibility.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}
