package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/adapter/notify"
	"github.com/Strawberry-Team/calendula-client/pkg/ctxutil"
)

type notificationFeed interface {
	Drain(ctx context.Context, userID uuid.UUID) ([]notify.Item, error)
}

// NotificationHandler serves the pending notification feed.
type NotificationHandler struct {
	feed notificationFeed
	log  *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(feed notificationFeed, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{feed: feed, log: logger.With("handler", "notifications")}
}

// List handles GET /api/v1/notifications: returns and clears the
// user's pending items.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	items, err := h.feed.Drain(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if items == nil {
		items = []notify.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}
