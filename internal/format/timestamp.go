package format

import (
	"time"

	"github.com/a2-coder/dvmm/internal/domain"
)

// ParseTimestamp parses an RFC 3339 timestamp (fractional seconds optional).
// The offset of the input is kept on the returned time.
func ParseTimestamp(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, domain.ShapeMismatch("format.timestamp.parse", field, err)
	}
	return t, nil
}

// FormatTimestamp is the inverse of ParseTimestamp for canonical input.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func ParseOptionalTimestamp(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseTimestamp(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FormatOptionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}
