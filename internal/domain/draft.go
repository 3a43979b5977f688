package domain

import "github.com/google/uuid"

// DraftEvent is an unsaved, partially filled event description kept in
// the externally owned draft store while the user navigates away from
// the creation view. All fields are optional pending full entry. At
// most one live draft exists per user; the store is replace-only.
type DraftEvent struct {
	Title      string              `json:"title,omitempty"`
	StartDate  string              `json:"startDate,omitempty"`
	EndDate    string              `json:"endDate,omitempty"`
	StartTime  string              `json:"startTime,omitempty"`
	EndTime    string              `json:"endTime,omitempty"`
	Type       EventType           `json:"type,omitempty"`
	CalendarID *uuid.UUID          `json:"calendarId,omitempty"`
	Collabs    []CollaboratorEntry `json:"selectedUsers,omitempty"`
}

// Usable reports whether the draft restores into the form. The check
// deliberately keys off calendar presence rather than draft existence:
// a draft that never reached calendar selection is treated as no
// usable draft at all.
func (d *DraftEvent) Usable() bool {
	return d != nil && d.CalendarID != nil
}
