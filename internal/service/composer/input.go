package composer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

// Field limits, matching the creation form's own constraints.
const (
	MaxTitleLen       = 50
	MaxDescriptionLen = 250
)

// UpdateInput carries edited form fields. Nil means "not touched";
// a non-nil pointer replaces the field (for strings, possibly with
// the empty value).
type UpdateInput struct {
	Title       *string
	Description *string
	Category    *domain.EventCategory
	Type        *domain.EventType
	Color       *string
	StartDate   *string
	StartTime   *string
	EndDate     *string
	EndTime     *string
	AllDay      *bool
	CalendarID  *uuid.UUID
}

// Validate checks all supplied fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil && len(*i.Title) > MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 50 characters"})
	}
	if i.Description != nil && len(*i.Description) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 250 characters"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be work, home or hobby"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be meeting, reminder or task"})
	}
	if i.Color != nil && !strings.HasPrefix(*i.Color, "#") {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a hex color"})
	}
	if i.StartDate != nil && *i.StartDate != "" && !validDate(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "invalid date"})
	}
	if i.EndDate != nil && *i.EndDate != "" && !validDate(*i.EndDate) {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "invalid date"})
	}
	if i.StartTime != nil && *i.StartTime != "" && !domain.OnTimeGrid(*i.StartTime) {
		errs = append(errs, domain.FieldError{Field: "startTime", Message: "not a half-hour grid value"})
	}
	if i.EndTime != nil && *i.EndTime != "" && !domain.OnTimeGrid(*i.EndTime) {
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "not a half-hour grid value"})
	}
	if i.CalendarID != nil && *i.CalendarID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "calendarId", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}
