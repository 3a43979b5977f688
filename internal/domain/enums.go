package domain

// EventType represents the kind of event being composed.
type EventType string

const (
	EventTypeMeeting  EventType = "meeting"
	EventTypeReminder EventType = "reminder"
	EventTypeTask     EventType = "task"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeMeeting, EventTypeReminder, EventTypeTask:
		return true
	}
	return false
}

// EventCategory represents the life area an event belongs to.
type EventCategory string

const (
	EventCategoryWork  EventCategory = "work"
	EventCategoryHome  EventCategory = "home"
	EventCategoryHobby EventCategory = "hobby"
)

func (c EventCategory) String() string { return string(c) }

func (c EventCategory) IsValid() bool {
	switch c {
	case EventCategoryWork, EventCategoryHome, EventCategoryHobby:
		return true
	}
	return false
}

// Role represents a collaborator's role on an event.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleMember, RoleViewer:
		return true
	}
	return false
}

// CalendarType distinguishes a user's primary calendar from secondary ones.
type CalendarType string

const (
	// CalendarTypeMain is the user's default calendar.
	CalendarTypeMain CalendarType = "main"
)

func (t CalendarType) String() string { return string(t) }
