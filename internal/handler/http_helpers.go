package handler

import (
	"encoding/json"
	"net/http"

	"mdshare/internal/domain"
)

type contextKey string

const principalContextKey contextKey = "principal"

// GetPrincipalFromContext extracts the authenticated principal from request context
func GetPrincipalFromContext(r *http.Request) (domain.Principal, bool) {
	principal, ok := r.Context().Value(principalContextKey).(domain.Principal)
	return principal, ok
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"message": message})
}
