package domain

import "context"

// Principal is the resolved caller identity. The zero value is anonymous
// and never matches any document owner.
type Principal struct {
	ID string `json:"id"`
}

// IsAnonymous reports whether the principal carries no identity.
func (p Principal) IsAnonymous() bool {
	return p.ID == ""
}

// IdentityResolver turns raw request credentials into a Principal.
// Implementations are selected once at startup and never swapped at runtime.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (Principal, error)
}
