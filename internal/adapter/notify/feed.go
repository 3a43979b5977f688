// Package notify is an in-memory per-user notification feed. The
// composer pushes toasts and navigation hints into it; the client
// drains them over the REST surface.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

// Kind classifies a feed item.
type Kind string

const (
	KindSuccess  Kind = "success"
	KindError    Kind = "error"
	KindNavigate Kind = "navigate"
)

// Item is one pending notification.
type Item struct {
	ID        uuid.UUID           `json:"id"`
	Kind      Kind                `json:"kind"`
	Message   string              `json:"message,omitempty"`
	Fields    []domain.FieldError `json:"fields,omitempty"`
	Route     string              `json:"route,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// maxPerUser caps a user's pending feed; the oldest items drop first.
const maxPerUser = 50

// Feed buffers notifications per user until the client drains them.
type Feed struct {
	mu    sync.Mutex
	items map[uuid.UUID][]Item
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{items: make(map[uuid.UUID][]Item)}
}

// Success pushes a success toast.
func (f *Feed) Success(_ context.Context, userID uuid.UUID, message string) {
	f.push(userID, Item{Kind: KindSuccess, Message: message})
}

// Errors pushes one error toast. Field errors are carried verbatim;
// fallback is the message shown when no fields are present.
func (f *Feed) Errors(_ context.Context, userID uuid.UUID, errs []domain.FieldError, fallback string) {
	f.push(userID, Item{Kind: KindError, Message: fallback, Fields: errs})
}

// NavigateTo pushes a navigation hint.
func (f *Feed) NavigateTo(_ context.Context, userID uuid.UUID, route string) {
	f.push(userID, Item{Kind: KindNavigate, Route: route})
}

// Drain returns and removes the user's pending items in push order.
func (f *Feed) Drain(_ context.Context, userID uuid.UUID) ([]Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := f.items[userID]
	delete(f.items, userID)
	return items, nil
}

func (f *Feed) push(userID uuid.UUID, item Item) {
	item.ID = uuid.New()
	item.CreatedAt = time.Now()

	f.mu.Lock()
	defer f.mu.Unlock()

	items := append(f.items[userID], item)
	if len(items) > maxPerUser {
		items = items[len(items)-maxPerUser:]
	}
	f.items[userID] = items
}
