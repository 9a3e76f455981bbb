package google

import (
	"context"
	"fmt"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/jwoolee/timsync/pkg/auth"
)

// NewClient resolves a calendar by name and returns a client for it.
func NewClient(ctx context.Context, calendarName string) (*CalendarClient, error) {
	client, err := auth.GetClient(ctx, auth.Scopes())
	if err != nil {
		return nil, err
	}

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar client: %w", err)
	}

	calendarList, err := srv.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve calendar list: %w", err)
	}

	var calendarID string
	for _, item := range calendarList.Items {
		if item.Summary == calendarName {
			calendarID = item.Id
			break
		}
	}
	if calendarID == "" {
		return nil, fmt.Errorf("calendar %q not found", calendarName)
	}

	return NewCalendarClient(srv, calendarID), nil
}
