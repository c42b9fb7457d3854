package http

import (
	"context"
	"net/http"
	"strings"

	"openshelf-backend/internal/security"
)

type contextKey string

const memberIDKey contextKey = "member_id"

// AuthMiddleware validates the Bearer token and stashes the member id on
// the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}

		ctx := context.WithValue(r.Context(), memberIDKey, claims.MemberID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// memberIDFromContext returns the authenticated member id, zero if the
// request skipped the auth middleware.
func memberIDFromContext(ctx context.Context) int32 {
	id, _ := ctx.Value(memberIDKey).(int32)
	return id
}
