package auth

import (
	"context"
	"fmt"

	"mdshare/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// CognitoIssuerURL returns the expected iss claim for a user pool.
func CognitoIssuerURL(region, userPoolID string) string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", region, userPoolID)
}

// CognitoJWKSURL returns the published key set URL for a user pool.
func CognitoJWKSURL(region, userPoolID string) string {
	return CognitoIssuerURL(region, userPoolID) + "/.well-known/jwks.json"
}

// CognitoResolver verifies RS256 bearer tokens against the user pool's
// published keys and extracts the subject claim as the principal ID.
type CognitoResolver struct {
	issuer   string
	audience string
	keys     *KeySet
	logger   domain.Logger
}

// NewCognitoResolver creates a resolver that accepts tokens issued by
// issuer for audience, verified with keys.
func NewCognitoResolver(issuer, audience string, keys *KeySet, logger domain.Logger) *CognitoResolver {
	return &CognitoResolver{
		issuer:   issuer,
		audience: audience,
		keys:     keys,
		logger:   logger,
	}
}

// Resolve verifies the token and returns the authenticated principal. All
// verification failures collapse into domain.ErrInvalidToken; the underlying
// cause is logged, not returned to the caller.
func (r *CognitoResolver) Resolve(ctx context.Context, tokenString string) (domain.Principal, error) {
	if tokenString == "" {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			kid, ok := token.Header["kid"].(string)
			if !ok || kid == "" {
				return nil, fmt.Errorf("token has no kid header")
			}
			return r.keys.KeyForKid(ctx, kid)
		},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(r.issuer),
		jwt.WithAudience(r.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		r.logger.Warn("Token verification failed", "error", err)
		return domain.Principal{}, domain.ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		r.logger.Warn("Token has no subject claim")
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{ID: sub}, nil
}
