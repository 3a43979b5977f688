package composer

import (
	"context"
	"log/slog"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

// initialize runs the mount-time state machine: read the draft, either
// restore it verbatim or fall back to calendar defaulting. A failing
// draft read degrades to "no usable draft" rather than blocking the
// form; the user just starts from defaults.
func (f *Form) initialize(ctx context.Context) {
	f.mu.Lock()
	f.state = StateRestoring
	f.mu.Unlock()

	draft, err := f.svc.drafts.Read(ctx, f.userID)
	if err != nil {
		f.svc.log.WarnContext(ctx, "draft read failed",
			slog.String("user_id", f.userID.String()),
			slog.String("error", err.Error()),
		)
		draft = nil
	}

	if draft.Usable() {
		f.restore(draft)
		f.svc.log.InfoContext(ctx, "draft restored",
			slog.String("user_id", f.userID.String()),
			slog.String("calendar_id", draft.CalendarID.String()),
		)
		return
	}

	f.mu.Lock()
	f.state = StateDefaulting
	f.mu.Unlock()

	calendars, err := f.svc.api.ListCalendars(ctx)
	if err != nil {
		// Stay in defaulting; a later RefreshCalendars retries.
		f.svc.log.WarnContext(ctx, "calendar list failed",
			slog.String("user_id", f.userID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	f.ApplyCalendars(calendars)
}

// restore copies every draft field into the form verbatim, including
// an empty collaborator list (the acting user is re-seeded as owner by
// roster construction). Absent type falls back to the form default.
func (f *Form) restore(draft *domain.DraftEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.title = draft.Title
	f.schedule.StartDate = draft.StartDate
	f.schedule.EndDate = draft.EndDate
	f.schedule.StartTime = draft.StartTime
	f.schedule.EndTime = draft.EndTime
	if draft.Type.IsValid() {
		f.eventType = draft.Type
	}
	id := *draft.CalendarID
	f.calendarID = &id
	f.roster = domain.NewRoster(f.userID, draft.Collabs)
	f.state = StateReady
}

// ApplyCalendars feeds an arrived calendar list into the form. While
// the user has made no explicit selection and no draft supplied one,
// the default selector re-runs on every arrival; an explicit pick is
// never overridden.
func (f *Form) ApplyCalendars(calendars []domain.CalendarRef) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calendars = calendars

	if f.calendarChosen || f.calendarID != nil {
		if f.state == StateDefaulting {
			f.state = StateReady
		}
		return
	}

	if id, ok := domain.DefaultCalendarID(calendars); ok {
		f.calendarID = &id
		f.state = StateReady
		return
	}
	// No calendars yet: stay incomplete, submission remains blocked.
	f.state = StateDefaulting
}

// RefreshCalendars re-fetches the calendar list and applies it.
func (f *Form) RefreshCalendars(ctx context.Context) error {
	calendars, err := f.svc.api.ListCalendars(ctx)
	if err != nil {
		return err
	}
	f.ApplyCalendars(calendars)
	return nil
}

// State returns the current initialization state.
func (f *Form) State() InitState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}
