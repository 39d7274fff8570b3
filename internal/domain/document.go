package domain

import (
	"context"
	"time"
)

// CurrentSchemaVersion is stamped onto every new document record. It is
// bookkeeping for forward-compatible migrations; nothing in this service
// interprets it.
const CurrentSchemaVersion = 1

// Document represents a Markdown document owned by a single principal.
// The slug doubles as the public URL token and is immutable after creation.
type Document struct {
	OwnerID string `json:"userId" dynamodbav:"userId"`
	Slug    string `json:"slug" dynamodbav:"slug"`

	Content  string `json:"content" dynamodbav:"content"`
	IsPublic bool   `json:"isPublic" dynamodbav:"isPublic"`

	SchemaVersion int            `json:"schemaVersion" dynamodbav:"schemaVersion"`
	Metadata      map[string]any `json:"docMetadata,omitempty" dynamodbav:"docMetadata,omitempty"`

	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// DocumentStore defines persistence operations for documents. Records are
// keyed by (ownerID, slug); GetBySlug goes through the slug secondary index
// so public reads never need the owner.
type DocumentStore interface {
	Put(ctx context.Context, doc *Document) error
	GetByOwnerAndSlug(ctx context.Context, ownerID, slug string) (*Document, error)
	GetBySlug(ctx context.Context, slug string) (*Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Document, error)
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, ownerID, slug string) error
}

// DocumentService defines the use-case operations for documents.
type DocumentService interface {
	ListOwn(ctx context.Context, principal Principal) ([]*Document, error)
	GetOwnBySlug(ctx context.Context, slug string, principal Principal) (*Document, error)
	GetPublicBySlug(ctx context.Context, slug string) (*Document, error)
	Create(ctx context.Context, content string, principal Principal, isPublic bool) (*Document, error)
	Update(ctx context.Context, slug, content string, principal Principal, isPublic bool) (*Document, error)
	Delete(ctx context.Context, slug string, principal Principal) error
}
