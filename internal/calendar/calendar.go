// Package calendar mirrors confirmed bookings into an external calendar.
// Every call is best-effort: a sync failure is logged and must never roll
// back or delay a booking mutation.
package calendar

import (
	"context"
	"fmt"
	"time"
)

// Event is the provider-neutral description of a booking on the calendar.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendee    string
}

// Client is the outbound port. UpsertEvent returns the provider's event
// id; with an empty existingID it creates, otherwise it updates.
type Client interface {
	UpsertEvent(ctx context.Context, existingID string, ev Event) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// BuildEvent formats a booking into its calendar representation.
func BuildEvent(
	bookingID uint,
	serviceName string,
	hairdresserName string,
	clientName string,
	clientEmail string,
	notes string,
	start time.Time,
	end time.Time,
) Event {

	description := fmt.Sprintf(
		"Booking: #%d\nService: %s\nHairdresser: %s\nClient: %s",
		bookingID, serviceName, hairdresserName, clientName,
	)
	if notes != "" {
		description += "\nNotes: " + notes
	}

	return Event{
		Summary:     fmt.Sprintf("%s - %s", serviceName, clientName),
		Description: description,
		Start:       start,
		End:         end,
		Attendee:    clientEmail,
	}
}
