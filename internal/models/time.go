package models

import (
	"fmt"
	"strings"
	"time"
)

// Time wraps time.Time to accept the backend's timestamp encoding. The
// backend serializes timestamps without a zone offset ("2006-01-02T15:04:05"
// with optional fractional seconds); standard RFC 3339 is accepted too.
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON parses a backend timestamp. Null and empty strings decode
// to the zero time.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

// MarshalJSON emits RFC 3339, which the backend accepts.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
