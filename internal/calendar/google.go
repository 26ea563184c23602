package calendar

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/WhiteWolfWCY/Trimly/internal/config"
	"github.com/WhiteWolfWCY/Trimly/internal/timezone"
)

// GoogleClient syncs events into one Google Calendar, authenticated with
// an offline refresh token.
type GoogleClient struct {
	calendarID string
	service    *gcal.Service
}

func NewGoogleClient(ctx context.Context, cfg *config.Config) (*GoogleClient, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
		Scopes: []string{gcal.CalendarScope},
	}

	source := oauthCfg.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cfg.GoogleRefreshToken,
	})

	service, err := gcal.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, err
	}

	return &GoogleClient{
		calendarID: cfg.GoogleCalendarID,
		service:    service,
	}, nil
}

func toGoogleEvent(ev Event) *gcal.Event {
	return &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &gcal.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: timezone.SalonTimezone,
		},
		End: &gcal.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: timezone.SalonTimezone,
		},
		Attendees: []*gcal.EventAttendee{
			{Email: ev.Attendee},
		},
	}
}

func (g *GoogleClient) UpsertEvent(
	ctx context.Context,
	existingID string,
	ev Event,
) (string, error) {

	body := toGoogleEvent(ev)

	if existingID != "" {
		updated, err := g.service.Events.
			Update(g.calendarID, existingID, body).
			Context(ctx).
			Do()
		if err != nil {
			return "", err
		}
		return updated.Id, nil
	}

	created, err := g.service.Events.
		Insert(g.calendarID, body).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	return created.Id, nil
}

func (g *GoogleClient) DeleteEvent(ctx context.Context, eventID string) error {
	return g.service.Events.
		Delete(g.calendarID, eventID).
		Context(ctx).
		Do()
}

var _ Client = (*GoogleClient)(nil)
