package calendula

import (
	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

// Wire types for the Calendula API.

type errorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

type apiUser struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture"`
}

type apiCalendar struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Type  string    `json:"type"`
}

type apiParticipant struct {
	UserID uuid.UUID `json:"userId"`
}

type createEventRequest struct {
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	Category     string           `json:"category"`
	Type         string           `json:"type"`
	StartAt      string           `json:"startAt"`
	EndAt        string           `json:"endAt"`
	CalendarID   uuid.UUID        `json:"calendarId"`
	Color        string           `json:"color"`
	Participants []apiParticipant `json:"participants"`
}

type createEventResponse struct {
	ID uuid.UUID `json:"id"`
}

func mapUsers(in []apiUser) []domain.User {
	out := make([]domain.User, 0, len(in))
	for _, u := range in {
		out = append(out, domain.User{
			ID:             u.ID,
			FullName:       u.FullName,
			Email:          u.Email,
			ProfilePicture: u.ProfilePicture,
		})
	}
	return out
}

func mapCalendars(in []apiCalendar) []domain.CalendarRef {
	out := make([]domain.CalendarRef, 0, len(in))
	for _, c := range in {
		out = append(out, domain.CalendarRef{
			ID:    c.ID,
			Title: c.Title,
			Type:  domain.CalendarType(c.Type),
		})
	}
	return out
}
