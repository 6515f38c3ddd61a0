package product

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/georgemunganga/marketplace-backend/internal/modules/auth"
	"github.com/go-chi/chi/v5"
)

// Handler exposes product HTTP endpoints. Reads are public; writes sit
// behind the injected auth guard.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, requireAuth func(http.Handler) http.Handler) {
	router.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Get("/{id}", h.getProduct)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.createProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	if products == nil {
		products = []*Product{}
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "No data provided"})
		return
	}

	p, err := h.service.CreateProduct(r.Context(), caller, req)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{
		"message":    "Product created successfully",
		"product_id": p.ID,
	})
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "No data provided"})
		return
	}

	if _, err := h.service.UpdateProduct(r.Context(), caller, chi.URLParam(r, "id"), req); err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
		return
	}

	if err := h.service.DeleteProduct(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, err error) {
	respond(w, apperror.Status(err), map[string]string{"message": apperror.Message(err)})
}
