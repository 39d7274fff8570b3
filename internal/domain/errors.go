package domain

import "errors"

// Domain errors. ErrDocumentNotFound deliberately covers both "no such slug"
// and "slug owned by someone else" so callers cannot probe for existence.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrContentRequired  = errors.New("content is required")
	ErrInvalidToken     = errors.New("invalid token")
)
