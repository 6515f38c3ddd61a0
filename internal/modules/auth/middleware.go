package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/google/uuid"
)

type ctxKey int

const userCtxKey ctxKey = 0

// Middleware gates routes on a valid bearer token. RequireAuth resolves
// the token to a live user record and stores it in the request context;
// RequireAdmin must be composed after RequireAuth.
type Middleware struct {
	users  user.Repository
	issuer *Issuer
}

func NewMiddleware(users user.Repository, issuer *Issuer) *Middleware {
	return &Middleware{users: users, issuer: issuer}
}

// RequireAuth rejects the request with 401 unless it carries a valid
// bearer token referencing an existing user.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			deny(w, http.StatusUnauthorized, "Token is missing")
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			deny(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		userID, err := m.issuer.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			deny(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		u, err := m.users.GetUserByID(r.Context(), userID)
		if err != nil {
			deny(w, http.StatusUnauthorized, "User not found")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey, u)))
	})
}

// RequireAdmin rejects the request with 403 unless the caller resolved
// by RequireAuth is an admin.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			deny(w, http.StatusUnauthorized, "Token is missing")
			return
		}
		if !u.IsAdmin {
			deny(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ContextWithUser returns a context carrying the caller, as RequireAuth
// sets it.
func ContextWithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userCtxKey, u)
}

// UserFromContext returns the caller placed in the context by RequireAuth.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userCtxKey).(*user.User)
	return u, ok
}

// CanManage is the ownership rule shared by stores, products, and
// orders: the owner or an admin may act.
func CanManage(caller *user.User, ownerID uuid.UUID) bool {
	return caller.IsAdmin || caller.ID == ownerID
}

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
