package domain

import "errors"

var (
	// ErrNoData indicates the queried date has no dataset. This is a valid
	// empty result with its own user message, not a retrieval failure.
	ErrNoData = errors.New("no events for this date")

	// ErrEmptyDate rejects a query submitted without a date.
	ErrEmptyDate = errors.New("date is required")

	// ErrNotFound is a generic lookup miss (unknown platform id).
	ErrNotFound = errors.New("not found")
)
