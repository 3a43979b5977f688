package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
	"github.com/Strawberry-Team/calendula-client/internal/service/composer"
)

// formService defines the minimal interface needed by FormHandler.
type formService interface {
	Form(ctx context.Context) (*composer.Form, error)
	Discard(ctx context.Context) error
	Users(ctx context.Context) ([]domain.User, error)
}

// FormHandler serves the event-creation form endpoints.
type FormHandler struct {
	svc formService
	log *slog.Logger
}

// NewFormHandler creates a FormHandler.
func NewFormHandler(svc formService, logger *slog.Logger) *FormHandler {
	return &FormHandler{svc: svc, log: logger.With("handler", "form")}
}

// updateRequest mirrors composer.UpdateInput on the wire. Absent keys
// leave fields untouched.
type updateRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Category    *domain.EventCategory `json:"category"`
	Type        *domain.EventType     `json:"type"`
	Color       *string               `json:"color"`
	StartDate   *string               `json:"startDate"`
	StartTime   *string               `json:"startTime"`
	EndDate     *string               `json:"endDate"`
	EndTime     *string               `json:"endTime"`
	AllDay      *bool                 `json:"allDay"`
	CalendarID  *uuid.UUID            `json:"calendarId"`
}

type collaboratorRequest struct {
	UserID uuid.UUID   `json:"userId"`
	Role   domain.Role `json:"role"`
}

type roleRequest struct {
	Role domain.Role `json:"role"`
}

type createdResponse struct {
	EventID uuid.UUID `json:"eventId"`
}

// Get handles GET /api/v1/form.
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Form(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, f.Snapshot())
}

// Update handles PATCH /api/v1/form.
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := h.svc.Form(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := f.Update(composer.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Color:       req.Color,
		StartDate:   req.StartDate,
		StartTime:   req.StartTime,
		EndDate:     req.EndDate,
		EndTime:     req.EndTime,
		AllDay:      req.AllDay,
		CalendarID:  req.CalendarID,
	}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, f.Snapshot())
}

// Submit handles POST /api/v1/form/submit.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Form(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := f.Submit(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{EventID: created.EventID})
}

// Discard handles POST /api/v1/form/discard.
func (h *FormHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Discard(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AddCollaborator handles POST /api/v1/form/collaborators.
func (h *FormHandler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	var req collaboratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	f, err := h.svc.Form(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := f.AddCollaborator(req.UserID, req.Role); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, f.Snapshot())
}

// RemoveCollaborator handles DELETE /api/v1/form/collaborators/{userID}.
func (h *FormHandler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	f, err := h.svc.Form(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := f.RemoveCollaborator(userID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, f.Snapshot())
}

// SetCollaboratorRole handles PATCH /api/v1/form/collaborators/{userID}.
func (h *FormHandler) SetCollaboratorRole(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req roleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := h.svc.Form(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := f.SetCollaboratorRole(userID, req.Role); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, f.Snapshot())
}

// Users handles GET /api/v1/users.
func (h *FormHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
