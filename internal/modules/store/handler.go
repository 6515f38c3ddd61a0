package store

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/georgemunganga/marketplace-backend/internal/modules/auth"
	"github.com/go-chi/chi/v5"
)

// Handler exposes store HTTP endpoints. Reads are public; writes sit
// behind the injected auth guard.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, requireAuth func(http.Handler) http.Handler) {
	router.Route("/api/stores", func(r chi.Router) {
		r.Get("/", h.listStores)
		r.Get("/{id}", h.getStore)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.createStore)
			r.Put("/{id}", h.updateStore)
			r.Delete("/{id}", h.deleteStore)
		})
	})
}

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListStores(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	if stores == nil {
		stores = []*Store{}
	}
	respond(w, http.StatusOK, stores)
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.GetStore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, st)
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	var req CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "No data provided"})
		return
	}

	st, err := h.service.CreateStore(r.Context(), caller, req)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{
		"message":  "Store created successfully",
		"store_id": st.ID,
	})
}

func (h *Handler) updateStore(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	var req UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "No data provided"})
		return
	}

	if _, err := h.service.UpdateStore(r.Context(), caller, chi.URLParam(r, "id"), req); err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Store updated successfully"})
}

func (h *Handler) deleteStore(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	if err := h.service.DeleteStore(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Store deleted successfully"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"message": apperror.Message(err)})
}
