package domain

import "github.com/google/uuid"

// CalendarRef is a calendar visible to the user, as reported by the
// upstream. Read-only from this service's perspective.
type CalendarRef struct {
	ID    uuid.UUID    `json:"id"`
	Title string       `json:"title"`
	Type  CalendarType `json:"type"`
}

// DefaultCalendarID picks the calendar an event targets when the user
// has made no explicit choice: the first calendar of type "main", else
// the first calendar of the supplied ordered list. Returns false when
// the list is empty (the form stays incomplete and submission is
// blocked).
func DefaultCalendarID(calendars []CalendarRef) (uuid.UUID, bool) {
	for _, c := range calendars {
		if c.Type == CalendarTypeMain {
			return c.ID, true
		}
	}
	if len(calendars) > 0 {
		return calendars[0].ID, true
	}
	return uuid.Nil, false
}
