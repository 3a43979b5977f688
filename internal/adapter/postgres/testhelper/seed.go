package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

// SeedDraft inserts an event draft row directly, bypassing the
// repository under test. Returns the stored draft.
func SeedDraft(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, draft domain.DraftEvent) domain.DraftEvent {
	t.Helper()
	ctx := context.Background()

	collabs, err := json.Marshal(draft.Collabs)
	if err != nil {
		t.Fatalf("testhelper: SeedDraft encode collaborators: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO event_drafts (user_id, title, start_date, end_date, start_time, end_time,
		                           event_type, calendar_id, collaborators, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		userID, draft.Title, draft.StartDate, draft.EndDate, draft.StartTime, draft.EndTime,
		draft.Type.String(), draft.CalendarID, collabs, time.Now(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDraft insert: %v", err)
	}

	return draft
}
