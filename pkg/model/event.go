package model

import (
	"fmt"
	"strings"
	"time"
)

// ExternalEvent is one provider record from a sync batch. Start and End keep
// the provider's raw values: RFC 3339 for timed events, YYYY-MM-DD for
// all-day events. Events are ephemeral; nothing outlives snapshot extraction.
type ExternalEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
}

// Snapshot is the last observed (title, description, start) triple for one
// external event id. Drift is computed by value inequality against it.
type Snapshot struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
}

// SnapshotOf extracts the drift-detection triple from an event.
func SnapshotOf(ev ExternalEvent) Snapshot {
	return Snapshot{Title: ev.Title, Description: ev.Description, Start: ev.Start}
}

const allDayLayout = "2006-01-02"

// ParseEventTime parses a provider time value, accepting both timed
// (RFC 3339) and all-day (YYYY-MM-DD) forms.
func ParseEventTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty event time")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(allDayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable event time %q: %w", s, err)
	}
	return t, nil
}
