package order

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/georgemunganga/marketplace-backend/internal/modules/auth"
	"github.com/go-chi/chi/v5"
)

// Handler exposes order HTTP endpoints. Every route requires a token.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, requireAuth func(http.Handler) http.Handler) {
	router.Route("/api/orders", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.getOrders)
		r.Post("/", h.createOrder)
		r.Get("/{id}", h.getOrder)
		r.Delete("/{id}", h.deleteOrder)
	})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	orders, err := h.service.GetOrders(r.Context(), caller)
	if err != nil {
		fail(w, err)
		return
	}
	if orders == nil {
		orders = []*Order{}
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Items must be a list"})
		return
	}

	o, err := h.service.CreateOrder(r.Context(), caller, req)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{
		"message":  "Order created successfully",
		"order_id": o.ID,
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	o, err := h.service.GetOrder(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	if err := h.service.DeleteOrder(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"message": apperror.Message(err)})
}
