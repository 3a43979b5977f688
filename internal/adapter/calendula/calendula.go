package calendula

import (
	"context"
	"log/slog"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

// ListUsers fetches the user directory for the collaborator selector.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []apiUser
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return mapUsers(users), nil
}

// ListCalendars fetches the acting user's calendars.
func (c *Client) ListCalendars(ctx context.Context) ([]domain.CalendarRef, error) {
	var calendars []apiCalendar
	if err := c.getJSON(ctx, "/calendars", &calendars); err != nil {
		return nil, err
	}
	return mapCalendars(calendars), nil
}

// CreateEvent submits a finished event to the upstream.
func (c *Client) CreateEvent(ctx context.Context, sub domain.EventSubmission) (*domain.CreatedEvent, error) {
	req := createEventRequest{
		Title:        sub.Title,
		Description:  sub.Description,
		Category:     sub.Category.String(),
		Type:         sub.Type.String(),
		StartAt:      sub.Slot.StartAt.Format(domain.TimestampLayout),
		EndAt:        sub.Slot.EndAt.Format(domain.TimestampLayout),
		CalendarID:   sub.CalendarID,
		Color:        sub.Color,
		Participants: make([]apiParticipant, 0, len(sub.Participants)),
	}
	for _, p := range sub.Participants {
		req.Participants = append(req.Participants, apiParticipant{UserID: p.UserID})
	}

	var resp createEventResponse
	if err := c.postJSON(ctx, "/events", req, &resp); err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "event created upstream",
		slog.String("event_id", resp.ID.String()),
	)
	return &domain.CreatedEvent{EventID: resp.ID}, nil
}
