package services

import (
	"encoding/json"
	"fmt"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
)

// Serialize renders the filtered event set as two-space-indented JSON with
// no value transformation. Callers pass the filter output in document order;
// the display sort is deliberately not applied to exports.
func Serialize(events []domain.Event) (string, error) {
	if events == nil {
		events = []domain.Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize events: %w", err)
	}
	return string(data), nil
}
