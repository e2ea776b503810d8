package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// marshalJSON encodes v for storage in a TEXT column.
func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json column: %w", err)
	}
	return string(b), nil
}

// unmarshalJSON decodes a TEXT column into out. Empty strings decode to the
// zero value rather than erroring, so old rows with absent blobs stay loadable.
func unmarshalJSON(s string, out any) error {
	if s == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return fmt.Errorf("decoding json column: %w", err)
	}
	return nil
}

// parseTime parses an RFC3339 time column.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time column: %w", err)
	}
	return t, nil
}

// formatTime formats a time for an RFC3339 TEXT column.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// nullableFloatToValue converts a *float64 to a driver value, NULL when nil.
func nullableFloatToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
