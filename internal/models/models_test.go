package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPropertyJSONFieldNames(t *testing.T) {
	property := Property{
		ID:          7,
		Title:       "Harbour View Flat",
		Description: "One-bedroom flat overlooking the marina.",
		Price:       289000.50,
		Location:    "Seattle, WA",
		CreatedAt:   time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(property)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{"id", "title", "description", "price", "location", "created_at"} {
		require.Contains(t, decoded, key)
	}
	require.Len(t, decoded, 6, "serialized property must expose exactly the six contract fields")
	require.EqualValues(t, 7, decoded["id"])
	require.EqualValues(t, 289000.50, decoded["price"])
}
