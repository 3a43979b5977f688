// Package draft provides implementations of the per-user draft store.
package draft

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

// MemoryStore keeps one draft slot per user in process memory. Writing
// replaces the slot; reading an absent slot yields nil, nil.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]domain.DraftEvent
}

// NewMemoryStore creates an empty in-memory draft store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[uuid.UUID]domain.DraftEvent)}
}

func (s *MemoryStore) Read(_ context.Context, userID uuid.UUID) (*domain.DraftEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[userID]
	if !ok {
		return nil, nil
	}
	out := d
	out.Collabs = append([]domain.CollaboratorEntry(nil), d.Collabs...)
	if d.CalendarID != nil {
		id := *d.CalendarID
		out.CalendarID = &id
	}
	return &out, nil
}

func (s *MemoryStore) Write(_ context.Context, userID uuid.UUID, draft domain.DraftEvent) error {
	stored := draft
	stored.Collabs = append([]domain.CollaboratorEntry(nil), draft.Collabs...)
	if draft.CalendarID != nil {
		id := *draft.CalendarID
		stored.CalendarID = &id
	}

	s.mu.Lock()
	s.drafts[userID] = stored
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	delete(s.drafts, userID)
	s.mu.Unlock()
	return nil
}
