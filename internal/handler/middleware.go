package handler

import (
	"context"
	"net/http"
	"strings"

	"mdshare/internal/domain"
)

// localUserHeader is a trusted development-only header carrying a user ID.
// It is honored exclusively in offline mode and must never be exposed
// outside a trusted network.
const localUserHeader = "X-User-Id"

// AuthMiddleware resolves the caller's identity and stores it in the
// request context. A missing token yields 401; a presented but unverifiable
// token yields 403.
type AuthMiddleware struct {
	resolver domain.IdentityResolver
	logger   domain.Logger
	offline  bool
}

// NewAuthMiddleware creates a new auth middleware around the configured
// identity resolver.
func NewAuthMiddleware(resolver domain.IdentityResolver, logger domain.Logger, offline bool) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
		offline:  offline,
	}
}

// Middleware wraps a handler with authentication.
func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.offline {
			principal, _ := m.resolver.Resolve(r.Context(), "")
			if headerID := r.Header.Get(localUserHeader); headerID != "" {
				principal = domain.Principal{ID: headerID}
			}
			next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		token := parts[1]
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Token required")
			return
		}

		principal, err := m.resolver.Resolve(r.Context(), token)
		if err != nil || principal.IsAnonymous() {
			m.logger.Warn("Rejected request with invalid token", "path", r.URL.Path)
			writeError(w, http.StatusForbidden, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
	})
}

func withPrincipal(ctx context.Context, principal domain.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}
