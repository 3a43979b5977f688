package domain

import "github.com/google/uuid"

// DefaultEventColor matches the color the creation form opens with.
const DefaultEventColor = "#D50000"

// Participant is the per-user element of an event submission. Only the
// user ID travels; roles stay local to the form.
type Participant struct {
	UserID uuid.UUID `json:"userId"`
}

// EventSubmission is the payload handed to the upstream event-creation
// call. Constructed once per submit attempt and immutable once built.
type EventSubmission struct {
	Title        string
	Description  string
	Category     EventCategory
	Type         EventType
	Slot         TimeSlot
	CalendarID   uuid.UUID
	Color        string
	Participants []Participant
}

// CreatedEvent is the upstream's acknowledgement of a successful
// creation.
type CreatedEvent struct {
	EventID uuid.UUID
}
