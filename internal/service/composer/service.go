// Package composer implements the event-creation form core: draft
// restoration, calendar defaulting, the collaborator roster, and the
// submission flow against the upstream Calendula API.
package composer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
	"github.com/Strawberry-Team/calendula-client/pkg/ctxutil"
)

// Toast messages surfaced through the notifier.
const (
	msgCreateSuccess = "Event created successfully"
	msgCreateFailed  = "Failed to create event"
	msgInFlight      = "Event creation is already in progress"
)

// calendarRoute is where the client lands after a successful creation.
const calendarRoute = "/calendar"

type upstreamAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListCalendars(ctx context.Context) ([]domain.CalendarRef, error)
	CreateEvent(ctx context.Context, sub domain.EventSubmission) (*domain.CreatedEvent, error)
}

// draftReader is the read side of the externally owned draft store.
// The composer never writes or clears drafts; that lifecycle belongs
// to the store's own surface.
type draftReader interface {
	Read(ctx context.Context, userID uuid.UUID) (*domain.DraftEvent, error)
}

type notifier interface {
	Success(ctx context.Context, userID uuid.UUID, message string)
	Errors(ctx context.Context, userID uuid.UUID, errs []domain.FieldError, fallback string)
}

type navigator interface {
	NavigateTo(ctx context.Context, userID uuid.UUID, route string)
}

// Service manages one event-creation Form per user and carries the
// external collaborators every form needs.
type Service struct {
	api    upstreamAPI
	drafts draftReader
	notify notifier
	nav    navigator
	log    *slog.Logger

	mu    sync.Mutex
	forms map[uuid.UUID]*Form
}

// NewService creates the composer service.
func NewService(
	log *slog.Logger,
	api upstreamAPI,
	drafts draftReader,
	notify notifier,
	nav navigator,
) *Service {
	return &Service{
		api:    api,
		drafts: drafts,
		notify: notify,
		nav:    nav,
		log:    log.With("service", "composer"),
		forms:  make(map[uuid.UUID]*Form),
	}
}

// Form returns the acting user's live form, creating and initializing
// it on first access (the "view entry" of the creation page).
func (s *Service) Form(ctx context.Context) (*Form, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	f, exists := s.forms[userID]
	if !exists {
		f = newForm(s, userID)
		s.forms[userID] = f
	}
	s.mu.Unlock()

	if !exists {
		f.initialize(ctx)
	}
	return f, nil
}

// Discard drops the acting user's live form so the next entry
// re-initializes from the draft store.
func (s *Service) Discard(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	s.release(userID)
	return nil
}

// Users lists the users available to the collaborator selector.
func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	return s.api.ListUsers(ctx)
}

func (s *Service) release(userID uuid.UUID) {
	s.mu.Lock()
	delete(s.forms, userID)
	s.mu.Unlock()
}
