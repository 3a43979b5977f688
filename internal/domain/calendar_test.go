package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestDefaultCalendarID(t *testing.T) {
	t.Parallel()

	work1 := CalendarRef{ID: uuid.New(), Title: "Work", Type: "work"}
	main := CalendarRef{ID: uuid.New(), Title: "Personal", Type: CalendarTypeMain}
	work2 := CalendarRef{ID: uuid.New(), Title: "Side project", Type: "work"}

	t.Run("prefers main calendar", func(t *testing.T) {
		t.Parallel()
		id, ok := DefaultCalendarID([]CalendarRef{work1, main, work2})
		if !ok || id != main.ID {
			t.Errorf("got (%v, %v), want (%v, true)", id, ok, main.ID)
		}
	})

	t.Run("falls back to first calendar", func(t *testing.T) {
		t.Parallel()
		id, ok := DefaultCalendarID([]CalendarRef{work1, work2})
		if !ok || id != work1.ID {
			t.Errorf("got (%v, %v), want (%v, true)", id, ok, work1.ID)
		}
	})

	t.Run("single calendar", func(t *testing.T) {
		t.Parallel()
		id, ok := DefaultCalendarID([]CalendarRef{work1})
		if !ok || id != work1.ID {
			t.Errorf("got (%v, %v), want (%v, true)", id, ok, work1.ID)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		id, ok := DefaultCalendarID(nil)
		if ok || id != uuid.Nil {
			t.Errorf("got (%v, %v), want (Nil, false)", id, ok)
		}
	})
}
