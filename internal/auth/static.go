// Package auth provides the identity resolver strategies: a static local
// identity for offline development and Cognito JWT verification for
// production. The strategy is chosen once at startup in the container.
package auth

import (
	"context"

	"mdshare/internal/domain"
)

// DefaultLocalUserID is the pseudo-identity used in offline mode when no
// LOCAL_USER_ID is configured.
const DefaultLocalUserID = "local-user-1234"

// StaticResolver returns a fixed principal unconditionally. Offline mode
// only; it never makes network calls and never fails.
type StaticResolver struct {
	principal domain.Principal
}

// NewStaticResolver creates a static resolver for the given user ID.
func NewStaticResolver(userID string) *StaticResolver {
	if userID == "" {
		userID = DefaultLocalUserID
	}
	return &StaticResolver{principal: domain.Principal{ID: userID}}
}

// Resolve ignores the token and returns the configured principal.
func (r *StaticResolver) Resolve(_ context.Context, _ string) (domain.Principal, error) {
	return r.principal, nil
}
