package user

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the admin user management endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin surface behind the supplied guards
// (RequireAuth then RequireAdmin).
func (h *Handler) RegisterRoutes(router *chi.Mux, guards ...func(http.Handler) http.Handler) {
	router.Route("/api/admin/users", func(r chi.Router) {
		r.Use(guards...)
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	if users == nil {
		users = []*User{}
	}
	respond(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, u)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "No data provided"})
		return
	}
	if _, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"message": apperror.Message(err)})
}
