package draft

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

func TestMemoryStore_ReadAbsent(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	d, err := s.Read(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != nil {
		t.Errorf("draft = %+v, want nil", d)
	}
}

func TestMemoryStore_WriteReadClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()
	userID := uuid.New()
	calID := uuid.New()

	in := domain.DraftEvent{
		Title:      "Planning",
		StartDate:  "2024-03-11",
		CalendarID: &calID,
		Collabs:    []domain.CollaboratorEntry{{UserID: uuid.New(), Role: domain.RoleMember}},
	}
	if err := s.Write(ctx, userID, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := s.Read(ctx, userID)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got == nil || got.Title != "Planning" || got.CalendarID == nil || *got.CalendarID != calID {
		t.Fatalf("draft = %+v, want stored draft back", got)
	}
	if len(got.Collabs) != 1 {
		t.Fatalf("collabs = %+v, want 1 entry", got.Collabs)
	}

	// Returned draft is a copy: mutating it must not leak into the store.
	got.Title = "mutated"
	got.Collabs[0].Role = domain.RoleViewer
	again, _ := s.Read(ctx, userID)
	if again.Title != "Planning" || again.Collabs[0].Role != domain.RoleMember {
		t.Error("store state leaked through a read copy")
	}

	if err := s.Clear(ctx, userID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	gone, _ := s.Read(ctx, userID)
	if gone != nil {
		t.Errorf("draft after clear = %+v, want nil", gone)
	}
}

func TestMemoryStore_WriteReplacesSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()
	userID := uuid.New()

	s.Write(ctx, userID, domain.DraftEvent{Title: "first"})
	s.Write(ctx, userID, domain.DraftEvent{Title: "second"})

	got, _ := s.Read(ctx, userID)
	if got == nil || got.Title != "second" {
		t.Errorf("draft = %+v, want the replacing write", got)
	}
}
