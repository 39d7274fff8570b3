package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"mdshare/internal/domain"
)

// jwk is the subset of an RFC 7517 key we need for RS256 verification.
type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

// KeySet is a process-wide cache of the identity provider's published
// verification keys, keyed by kid. It is populated lazily on the first
// lookup and never expires on its own; key rotation is handled by calling
// Invalidate (or by the frequent process restarts of the target deployment).
type KeySet struct {
	jwksURL string
	client  *http.Client
	logger  domain.Logger

	mu   sync.Mutex
	keys map[string]*rsa.PublicKey
}

// NewKeySet creates an empty key set cache backed by the given JWKS URL.
func NewKeySet(jwksURL string, logger domain.Logger) *KeySet {
	return &KeySet{
		jwksURL: jwksURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// KeyForKid returns the verification key for kid, fetching and caching the
// key set on the first call. Unknown kids return an error; the cache is not
// refetched for them, matching the explicit-invalidation lifecycle.
func (k *KeySet) KeyForKid(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.keys == nil {
		keys, err := k.fetch(ctx)
		if err != nil {
			return nil, err
		}
		k.keys = keys
	}

	key, ok := k.keys[kid]
	if !ok {
		return nil, fmt.Errorf("no verification key for kid %q", kid)
	}
	return key, nil
}

// Invalidate clears the cached keys so the next lookup refetches the JWKS.
func (k *KeySet) Invalidate() {
	k.mu.Lock()
	k.keys = nil
	k.mu.Unlock()
}

// fetch downloads the JWKS document and converts each RSA key to an
// *rsa.PublicKey. Caller holds the mutex.
func (k *KeySet) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.jwksURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build jwks request: %w", err)
	}

	resp, err := k.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, key := range doc.Keys {
		if key.Kty != "RSA" {
			continue
		}
		pub, err := rsaPublicKey(key)
		if err != nil {
			k.logger.Warn("Skipping unparsable JWK", "kid", key.Kid, "error", err)
			continue
		}
		keys[key.Kid] = pub
	}

	k.logger.Info("Fetched JWKS", "url", k.jwksURL, "keys", len(keys))
	return keys, nil
}

// rsaPublicKey builds an *rsa.PublicKey from the base64url modulus and
// exponent of an RSA JWK.
func rsaPublicKey(key jwk) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	if e <= 1 {
		return nil, fmt.Errorf("invalid exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
