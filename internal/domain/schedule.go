package domain

import (
	"fmt"
	"time"
)

// Wire layouts for schedule fields. Timestamps are second-precision and
// timezone-naive: the upstream stores them exactly as entered.
const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Schedule holds the independently edited date/time fields of the event
// form. Dates are civil dates (DateLayout); times are HH:MM values from
// the half-hour grid (see TimeGrid).
type Schedule struct {
	StartDate string
	StartTime string
	EndDate   string
	EndTime   string
	AllDay    bool
}

// TimeSlot is the resolved half-open interval submitted with an event.
// Never mutated after Resolve; owned solely by the submission payload.
type TimeSlot struct {
	StartAt time.Time
	EndAt   time.Time
}

// Inverted reports whether the slot ends at or before it starts.
// Resolve deliberately does not reject inverted slots; callers may use
// this for logging.
func (s TimeSlot) Inverted() bool {
	return !s.StartAt.Before(s.EndAt)
}

// Resolve materializes the schedule into a concrete TimeSlot.
//
// All-day events span a single calendar day: 00:00:00 to 23:59:59 of
// StartDate, with EndDate deliberately ignored. Timed events combine
// each date with its HH:MM field at second precision. Returns an
// ErrIncompleteSchedule validation error when a field required for the
// selected mode is missing or malformed. Ordering of start vs end is
// not checked here.
func (s Schedule) Resolve() (TimeSlot, error) {
	if errs := s.MissingFields(); len(errs) > 0 {
		return TimeSlot{}, NewIncompleteScheduleError(errs)
	}

	startDay, err := time.ParseInLocation(DateLayout, s.StartDate, time.Local)
	if err != nil {
		return TimeSlot{}, NewIncompleteScheduleError([]FieldError{{Field: "startDate", Message: "invalid date"}})
	}

	if s.AllDay {
		return TimeSlot{
			StartAt: startDay,
			EndAt:   startDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second),
		}, nil
	}

	endDay, err := time.ParseInLocation(DateLayout, s.EndDate, time.Local)
	if err != nil {
		return TimeSlot{}, NewIncompleteScheduleError([]FieldError{{Field: "endDate", Message: "invalid date"}})
	}

	startAt, err := atClock(startDay, s.StartTime)
	if err != nil {
		return TimeSlot{}, NewIncompleteScheduleError([]FieldError{{Field: "startTime", Message: err.Error()}})
	}
	endAt, err := atClock(endDay, s.EndTime)
	if err != nil {
		return TimeSlot{}, NewIncompleteScheduleError([]FieldError{{Field: "endTime", Message: err.Error()}})
	}

	return TimeSlot{StartAt: startAt, EndAt: endAt}, nil
}

// MissingFields lists the schedule fields absent for the selected mode.
func (s Schedule) MissingFields() []FieldError {
	var errs []FieldError
	if s.StartDate == "" {
		errs = append(errs, FieldError{Field: "startDate", Message: "required"})
	}
	if s.EndDate == "" {
		errs = append(errs, FieldError{Field: "endDate", Message: "required"})
	}
	if !s.AllDay {
		if s.StartTime == "" {
			errs = append(errs, FieldError{Field: "startTime", Message: "required"})
		}
		if s.EndTime == "" {
			errs = append(errs, FieldError{Field: "endTime", Message: "required"})
		}
	}
	return errs
}

// atClock combines a civil day with an HH:MM grid value.
func atClock(day time.Time, clock string) (time.Time, error) {
	if !OnTimeGrid(clock) {
		return time.Time{}, fmt.Errorf("not a half-hour grid value: %q", clock)
	}
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time: %q", clock)
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// TimeGrid returns the 48 half-hour HH:MM slots covering a full day,
// in order: "00:00", "00:30", ... "23:30".
func TimeGrid() []string {
	grid := make([]string, 0, 48)
	for h := 0; h < 24; h++ {
		grid = append(grid, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return grid
}

// OnTimeGrid reports whether clock is a valid half-hour grid value.
func OnTimeGrid(clock string) bool {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil || len(clock) != 5 {
		return false
	}
	return t.Minute() == 0 || t.Minute() == 30
}
