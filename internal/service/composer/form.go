package composer

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

// InitState tracks the form's initialization lifecycle. The form is a
// state machine rather than a pile of re-run effects: it moves through
// restoring (draft read) or defaulting (waiting for a calendar list to
// pick a default from) before settling on ready.
type InitState string

const (
	StateUninitialized InitState = "uninitialized"
	StateRestoring     InitState = "restoring"
	StateDefaulting    InitState = "defaulting"
	StateReady         InitState = "ready"
)

// Form is one user's in-progress event-creation state. All access goes
// through its methods; a single mutex covers every field.
type Form struct {
	svc    *Service
	userID uuid.UUID

	mu    sync.Mutex
	state InitState

	title       string
	description string
	category    domain.EventCategory
	eventType   domain.EventType
	color       string
	schedule    domain.Schedule

	calendarID     *uuid.UUID
	calendarChosen bool
	calendars      []domain.CalendarRef

	roster *domain.Roster

	inFlight bool
}

func newForm(svc *Service, userID uuid.UUID) *Form {
	return &Form{
		svc:       svc,
		userID:    userID,
		state:     StateUninitialized,
		category:  domain.EventCategoryWork,
		eventType: domain.EventTypeMeeting,
		color:     domain.DefaultEventColor,
		roster:    domain.NewRoster(userID, nil),
	}
}

// Snapshot is the read model the view layer renders from.
type Snapshot struct {
	State       InitState                  `json:"state"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Category    domain.EventCategory       `json:"category"`
	Type        domain.EventType           `json:"type"`
	Color       string                     `json:"color"`
	StartDate   string                     `json:"startDate"`
	StartTime   string                     `json:"startTime"`
	EndDate     string                     `json:"endDate"`
	EndTime     string                     `json:"endTime"`
	AllDay      bool                       `json:"allDay"`
	CalendarID  *uuid.UUID                 `json:"calendarId"`
	Calendars   []domain.CalendarRef       `json:"calendars"`
	Roster      []domain.CollaboratorEntry `json:"roster"`
	CanSubmit   bool                       `json:"canSubmit"`
	InFlight    bool                       `json:"inFlight"`
}

// Snapshot returns a copy of the current form state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	calendars := make([]domain.CalendarRef, len(f.calendars))
	copy(calendars, f.calendars)

	return Snapshot{
		State:       f.state,
		Title:       f.title,
		Description: f.description,
		Category:    f.category,
		Type:        f.eventType,
		Color:       f.color,
		StartDate:   f.schedule.StartDate,
		StartTime:   f.schedule.StartTime,
		EndDate:     f.schedule.EndDate,
		EndTime:     f.schedule.EndTime,
		AllDay:      f.schedule.AllDay,
		CalendarID:  f.calendarID,
		Calendars:   calendars,
		Roster:      f.roster.Entries(),
		CanSubmit:   f.canSubmitLocked(),
		InFlight:    f.inFlight,
	}
}

// Update applies edited fields to the form. A calendar in the input is
// an explicit user selection: once made, defaulting never overrides it.
func (f *Form) Update(input UpdateInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if input.Title != nil {
		f.title = *input.Title
	}
	if input.Description != nil {
		f.description = *input.Description
	}
	if input.Category != nil {
		f.category = *input.Category
	}
	if input.Type != nil {
		f.eventType = *input.Type
	}
	if input.Color != nil {
		f.color = *input.Color
	}
	if input.StartDate != nil {
		f.schedule.StartDate = *input.StartDate
	}
	if input.StartTime != nil {
		f.schedule.StartTime = *input.StartTime
	}
	if input.EndDate != nil {
		f.schedule.EndDate = *input.EndDate
	}
	if input.EndTime != nil {
		f.schedule.EndTime = *input.EndTime
	}
	if input.AllDay != nil {
		f.schedule.AllDay = *input.AllDay
	}
	if input.CalendarID != nil {
		id := *input.CalendarID
		f.calendarID = &id
		f.calendarChosen = true
	}
	return nil
}

// AddCollaborator puts a user on the roster; duplicates are no-ops.
func (f *Form) AddCollaborator(userID uuid.UUID, role domain.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roster.Add(userID, role)
	return nil
}

// RemoveCollaborator takes a user off the roster. The acting user is
// protected by the roster's owner invariant.
func (f *Form) RemoveCollaborator(userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roster.Remove(userID)
}

// SetCollaboratorRole changes a collaborator's role, subject to the
// owner invariant.
func (f *Form) SetCollaboratorRole(userID uuid.UUID, role domain.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roster.SetRole(userID, role)
}

// CanSubmit mirrors the creation button's enabled state: title and
// both dates present, plus both times unless all-day. Submission
// re-validates on its own.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmitLocked()
}

func (f *Form) canSubmitLocked() bool {
	if f.title == "" || f.schedule.StartDate == "" || f.schedule.EndDate == "" {
		return false
	}
	if !f.schedule.AllDay && (f.schedule.StartTime == "" || f.schedule.EndTime == "") {
		return false
	}
	return true
}
