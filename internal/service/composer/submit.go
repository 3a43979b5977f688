package composer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

// Submit validates the form, materializes the time slot, and hands the
// submission to the upstream. Validation runs independently of the
// submit control's enabled state: a stale UI must not be able to push
// an incomplete form through. At most one submission per form may be
// in flight; a concurrent attempt is rejected without any upstream
// call. Every rejected path notifies the user.
func (f *Form) Submit(ctx context.Context) (*domain.CreatedEvent, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		f.svc.notify.Errors(ctx, f.userID, nil, msgInFlight)
		return nil, domain.ErrSubmissionInFlight
	}

	if errs := f.validateLocked(); len(errs) > 0 {
		f.mu.Unlock()
		f.svc.notify.Errors(ctx, f.userID, errs, msgCreateFailed)
		return nil, domain.NewIncompleteScheduleError(errs)
	}

	slot, err := f.schedule.Resolve()
	if err != nil {
		f.mu.Unlock()
		f.svc.notify.Errors(ctx, f.userID, domain.FieldErrors(err), msgCreateFailed)
		return nil, err
	}

	sub := domain.EventSubmission{
		Title:        f.title,
		Description:  f.description,
		Category:     f.category,
		Type:         f.eventType,
		Slot:         slot,
		CalendarID:   *f.calendarID,
		Color:        f.color,
		Participants: f.roster.Participants(),
	}
	f.inFlight = true
	f.mu.Unlock()

	if slot.Inverted() {
		// Ordering is deliberately not enforced; the upstream decides.
		f.svc.log.WarnContext(ctx, "submitting inverted time slot",
			slog.String("user_id", f.userID.String()),
			slog.Time("start_at", slot.StartAt),
			slog.Time("end_at", slot.EndAt),
		)
	}

	created, err := f.svc.api.CreateEvent(ctx, sub)

	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()

	if err != nil {
		// Field errors verbatim when the upstream supplied them,
		// generic failure otherwise. Form state stays untouched so the
		// user can correct and retry.
		f.svc.notify.Errors(ctx, f.userID, domain.FieldErrors(err), msgCreateFailed)
		f.svc.log.ErrorContext(ctx, "event creation failed",
			slog.String("user_id", f.userID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create event: %w", err)
	}

	f.svc.log.InfoContext(ctx, "event created",
		slog.String("user_id", f.userID.String()),
		slog.String("event_id", created.EventID.String()),
	)

	// Creation is durable from here on: refresh, notify, navigate, in
	// that order, with no compensation if any of them fails.
	if err := f.RefreshCalendars(ctx); err != nil {
		f.svc.log.WarnContext(ctx, "calendar refresh after create failed",
			slog.String("user_id", f.userID.String()),
			slog.String("error", err.Error()),
		)
	}
	f.svc.notify.Success(ctx, f.userID, msgCreateSuccess)
	f.svc.nav.NavigateTo(ctx, f.userID, calendarRoute)

	f.svc.release(f.userID)
	return created, nil
}

// validateLocked collects every missing required field: title, both
// dates, the target calendar, and both times unless all-day.
func (f *Form) validateLocked() []domain.FieldError {
	var errs []domain.FieldError
	if f.title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	errs = append(errs, f.schedule.MissingFields()...)
	if f.calendarID == nil {
		errs = append(errs, domain.FieldError{Field: "calendarId", Message: "required"})
	}
	return errs
}
