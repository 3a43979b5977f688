// Package draft is the PostgreSQL draft store: one row per user,
// replaced on every write.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Strawberry-Team/calendula-client/internal/adapter/postgres"
	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

const table = "event_drafts"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo persists event drafts in PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo creates a draft repository on the given pool.
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Read returns the user's draft, or nil, nil when none is stored.
func (r *Repo) Read(ctx context.Context, userID uuid.UUID) (*domain.DraftEvent, error) {
	query := builder.
		Select("title", "start_date", "end_date", "start_time", "end_time",
			"event_type", "calendar_id", "collaborators").
		From(table).
		Where(squirrel.Eq{"user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build draft select: %w", err)
	}

	var (
		d          domain.DraftEvent
		eventType  string
		calendarID *uuid.UUID
		collabs    []byte
	)
	row := r.pool.QueryRow(ctx, sql, args...)
	err = row.Scan(&d.Title, &d.StartDate, &d.EndDate, &d.StartTime, &d.EndTime,
		&eventType, &calendarID, &collabs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "draft", userID)
	}

	d.Type = domain.EventType(eventType)
	d.CalendarID = calendarID
	if len(collabs) > 0 {
		if err := json.Unmarshal(collabs, &d.Collabs); err != nil {
			return nil, fmt.Errorf("decode draft collaborators: %w", err)
		}
	}
	return &d, nil
}

// Write replaces the user's draft slot.
func (r *Repo) Write(ctx context.Context, userID uuid.UUID, draft domain.DraftEvent) error {
	collabs, err := json.Marshal(draft.Collabs)
	if err != nil {
		return fmt.Errorf("encode draft collaborators: %w", err)
	}

	query := builder.
		Insert(table).
		Columns("user_id", "title", "start_date", "end_date", "start_time", "end_time",
			"event_type", "calendar_id", "collaborators", "updated_at").
		Values(userID, draft.Title, draft.StartDate, draft.EndDate, draft.StartTime,
			draft.EndTime, draft.Type.String(), draft.CalendarID, collabs, time.Now()).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			title = EXCLUDED.title,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			event_type = EXCLUDED.event_type,
			calendar_id = EXCLUDED.calendar_id,
			collaborators = EXCLUDED.collaborators,
			updated_at = EXCLUDED.updated_at`)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build draft upsert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "draft", userID)
	}
	return nil
}

// Clear removes the user's draft. Clearing an absent draft is a no-op.
func (r *Repo) Clear(ctx context.Context, userID uuid.UUID) error {
	query := builder.Delete(table).Where(squirrel.Eq{"user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build draft delete: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "draft", userID)
	}
	return nil
}
