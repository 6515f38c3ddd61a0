package auth

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the public authentication endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Post("/api/register", h.register)
	router.Post("/api/login", h.login)
	router.Post("/api/decode", h.decode)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "No data provided"})
		return
	}

	token, _, err := h.service.Register(r.Context(), req)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]string{
		"message": "User created successfully",
		"token":   token,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "No data provided"})
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "No token provided"})
		return
	}

	u, err := h.service.Decode(r.Context(), req.Token)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"message": "Token decoded successfully",
		"user": map[string]interface{}{
			"id":       u.ID,
			"username": u.Username,
			"email":    u.Email,
		},
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"message": apperror.Message(err)})
}
