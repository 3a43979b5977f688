package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
	"github.com/Strawberry-Team/calendula-client/pkg/ctxutil"
)

// draftStore is the full draft lifecycle: the client persists the
// in-progress form here and clears it once it no longer matters.
type draftStore interface {
	Read(ctx context.Context, userID uuid.UUID) (*domain.DraftEvent, error)
	Write(ctx context.Context, userID uuid.UUID, draft domain.DraftEvent) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// DraftHandler serves the draft endpoints.
type DraftHandler struct {
	store draftStore
	log   *slog.Logger
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(store draftStore, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{store: store, log: logger.With("handler", "draft")}
}

// Get handles GET /api/v1/draft. An absent draft is 404.
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	draft, err := h.store.Read(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if draft == nil {
		writeError(w, http.StatusNotFound, "no draft")
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Put handles PUT /api/v1/draft: replaces the user's draft slot.
func (h *DraftHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var draft domain.DraftEvent
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.Write(r.Context(), userID, draft); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /api/v1/draft. Deleting an absent draft
// succeeds.
func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.store.Clear(r.Context(), userID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
