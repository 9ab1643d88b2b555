package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
)

func TestSerialize_RoundTrip(t *testing.T) {
	filtered := Filter(testEvents(), domain.FilterCriteria{Platform: "cls"})

	text, err := Serialize(filtered)
	require.NoError(t, err)

	var parsed []domain.Event
	require.NoError(t, json.Unmarshal([]byte(text), &parsed))
	assert.Equal(t, filtered, parsed)
}

func TestSerialize_EmptySetIsEmptyArray(t *testing.T) {
	text, err := Serialize(nil)

	require.NoError(t, err)
	assert.Equal(t, "[]", text)
}

func TestSerialize_Indented(t *testing.T) {
	text, err := Serialize([]domain.Event{{Platform: "cls", EventDate: "2025-06-01", Title: "a"}})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "[\n  {"))
	assert.Contains(t, text, "\"platform\": \"cls\"")
}

func TestSerialize_OmitsAbsentFields(t *testing.T) {
	text, err := Serialize([]domain.Event{{Platform: "cls", EventDate: "2025-06-01", Title: "a"}})

	require.NoError(t, err)
	assert.NotContains(t, text, "event_time")
	assert.NotContains(t, text, "importance")
	assert.NotContains(t, text, "stocks")
}

// Exports carry the filter output in document order; the display sort is
// not applied.
func TestSerialize_DocumentOrder(t *testing.T) {
	events := []domain.Event{
		{Platform: "cls", Title: "late", EventTime: "20:00:00"},
		{Platform: "cls", Title: "early", EventTime: "06:00:00"},
	}

	text, err := Serialize(Filter(events, domain.DefaultCriteria()))
	require.NoError(t, err)

	var parsed []domain.Event
	require.NoError(t, json.Unmarshal([]byte(text), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, "late", parsed[0].Title)
	assert.Equal(t, "early", parsed[1].Title)
}
