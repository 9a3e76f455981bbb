// Package google fetches calendar events as the sync engine's provider
// input. Sync is one-way: this package only ever reads.
package google

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/jwoolee/timsync/pkg/model"
)

// CalendarClient reads events from one Google Calendar.
type CalendarClient struct {
	srv        *calendar.Service
	calendarID string
}

// NewCalendarClient wraps an authenticated calendar service.
func NewCalendarClient(srv *calendar.Service, calendarID string) *CalendarClient {
	return &CalendarClient{srv: srv, calendarID: calendarID}
}

// EventsInWindow fetches the materialized event instances whose start falls
// inside [start, end], in provider order. Recurring events are expanded by
// the provider; recurrence rules themselves are never interpreted locally.
func (c *CalendarClient) EventsInWindow(start, end time.Time) ([]model.ExternalEvent, error) {
	events, err := c.srv.Events.List(c.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve events from calendar: %w", err)
	}

	batch := make([]model.ExternalEvent, 0, len(events.Items))
	for _, item := range events.Items {
		batch = append(batch, toExternalEvent(item))
	}
	return batch, nil
}

// toExternalEvent flattens a provider event to the engine's input shape,
// keeping the raw start/end values (timed events carry DateTime, all-day
// events carry Date).
func toExternalEvent(ev *calendar.Event) model.ExternalEvent {
	out := model.ExternalEvent{
		ID:          ev.Id,
		Title:       ev.Summary,
		Description: ev.Description,
	}
	if ev.Start != nil {
		out.Start = ev.Start.DateTime
		if out.Start == "" {
			out.Start = ev.Start.Date
		}
	}
	if ev.End != nil {
		out.End = ev.End.DateTime
		if out.End == "" {
			out.End = ev.End.Date
		}
	}
	return out
}
