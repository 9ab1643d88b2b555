// Package messages defines the bubbletea messages exchanged between the
// calendar view's commands and its update loop.
package messages

import "github.com/fincal-labs/fincal-cli/internal/core/domain"

// MetadataLoaded reports the startup platform-catalog retrieval. Err is
// non-nil on failure; the view keeps going with raw platform ids either way.
type MetadataLoaded struct {
	Err error
}

// QueryCompleted carries the outcome of one date query. Token identifies
// the request so stale completions can be discarded.
type QueryCompleted struct {
	Token  uint64
	Date   string
	Events []domain.Event
	Err    error
}

// ExportFinished reports the clipboard write.
type ExportFinished struct {
	Err error
}

// ExportReverted expires the transient "copied" indicator.
type ExportReverted struct{}
