package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Form          *FormHandler
	Draft         *DraftHandler
	Notifications *NotificationHandler
	Health        *HealthHandler
}

// NewRouter mounts all REST routes on a fresh mux. Auth and the rest
// of the middleware chain wrap the returned handler at the app level.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/form", h.Form.Get)
	mux.HandleFunc("PATCH /api/v1/form", h.Form.Update)
	mux.HandleFunc("POST /api/v1/form/submit", h.Form.Submit)
	mux.HandleFunc("POST /api/v1/form/discard", h.Form.Discard)
	mux.HandleFunc("POST /api/v1/form/collaborators", h.Form.AddCollaborator)
	mux.HandleFunc("PATCH /api/v1/form/collaborators/{userID}", h.Form.SetCollaboratorRole)
	mux.HandleFunc("DELETE /api/v1/form/collaborators/{userID}", h.Form.RemoveCollaborator)

	mux.HandleFunc("GET /api/v1/users", h.Form.Users)

	mux.HandleFunc("GET /api/v1/draft", h.Draft.Get)
	mux.HandleFunc("PUT /api/v1/draft", h.Draft.Put)
	mux.HandleFunc("DELETE /api/v1/draft", h.Draft.Delete)

	mux.HandleFunc("GET /api/v1/notifications", h.Notifications.List)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
