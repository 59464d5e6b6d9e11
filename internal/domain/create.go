package domain

import (
	"fmt"
	"strings"
	"time"
)

// DeadlineLayouts are the accepted local date-time forms, most specific first.
// The first matches what an HTML datetime-local input produces.
var DeadlineLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParsePayerList splits a comma-separated list, trims each entry and keeps
// order and duplicates. The contract is the one to reject bad entries.
func ParsePayerList(raw string) []Address {
	parts := strings.Split(raw, ",")
	payers := make([]Address, 0, len(parts))
	for _, part := range parts {
		payers = append(payers, Address(strings.TrimSpace(part)))
	}
	return payers
}

// ParseDeadline reads a local date-time in loc and truncates to whole seconds.
func ParseDeadline(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDeadline)
	}

	for _, layout := range DeadlineLayouts {
		parsed, err := time.ParseInLocation(layout, trimmed, loc)
		if err == nil {
			return time.Unix(parsed.Unix(), 0).In(loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DDTHH:MM)", ErrInvalidDeadline, raw)
}
