package notify

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

func TestFeed_PushDrainOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := NewFeed()
	userID := uuid.New()

	f.Errors(ctx, userID, []domain.FieldError{{Field: "title", Message: "required"}}, "Failed to create event")
	f.Success(ctx, userID, "Event created successfully")
	f.NavigateTo(ctx, userID, "/calendar")

	items, err := f.Drain(ctx, userID)
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if items[0].Kind != KindError || len(items[0].Fields) != 1 {
		t.Errorf("items[0] = %+v, want error with fields", items[0])
	}
	if items[1].Kind != KindSuccess || items[1].Message != "Event created successfully" {
		t.Errorf("items[1] = %+v, want success toast", items[1])
	}
	if items[2].Kind != KindNavigate || items[2].Route != "/calendar" {
		t.Errorf("items[2] = %+v, want navigation hint", items[2])
	}

	again, _ := f.Drain(ctx, userID)
	if len(again) != 0 {
		t.Errorf("second Drain = %+v, want empty", again)
	}
}

func TestFeed_PerUserIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := NewFeed()
	a, b := uuid.New(), uuid.New()

	f.Success(ctx, a, "for a")

	items, _ := f.Drain(ctx, b)
	if len(items) != 0 {
		t.Errorf("user b feed = %+v, want empty", items)
	}
	items, _ = f.Drain(ctx, a)
	if len(items) != 1 {
		t.Errorf("user a feed = %+v, want 1 item", items)
	}
}

func TestFeed_BoundedPerUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := NewFeed()
	userID := uuid.New()

	for i := 0; i < maxPerUser+10; i++ {
		f.Success(ctx, userID, "toast")
	}

	items, _ := f.Drain(ctx, userID)
	if len(items) != maxPerUser {
		t.Errorf("len(items) = %d, want cap %d", len(items), maxPerUser)
	}
}
