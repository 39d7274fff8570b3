package repository

import (
	"context"
	"fmt"
	"sort"

	"mdshare/internal/domain"

	"github.com/hashicorp/go-memdb"
)

const tblDocuments = "documents"

// memorySchema mirrors the persistent layout: a composite (OwnerID, Slug)
// primary key, a unique slug secondary index, and an owner index for lists.
var memorySchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tblDocuments: {
			Name: tblDocuments,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:   "id",
					Unique: true,
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "OwnerID"},
							&memdb.StringFieldIndex{Field: "Slug"},
						},
					},
				},
				"slug": {
					Name:    "slug",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Slug"},
				},
				"owner": {
					Name:    "owner",
					Indexer: &memdb.StringFieldIndex{Field: "OwnerID"},
				},
			},
		},
	},
}

// MemoryStore is an in-memory DocumentStore for offline mode and tests.
type MemoryStore struct {
	db *memdb.MemDB
}

// NewMemoryStore returns a new in-memory document store.
func NewMemoryStore() (*MemoryStore, error) {
	db, err := memdb.NewMemDB(memorySchema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}
	return &MemoryStore{db: db}, nil
}

// Put inserts a new document, enforcing global slug uniqueness.
func (s *MemoryStore) Put(_ context.Context, doc *domain.Document) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, "slug", doc.Slug)
	if err != nil {
		return fmt.Errorf("find document by slug: %w", err)
	}
	if raw != nil {
		return fmt.Errorf("slug %q already exists", doc.Slug)
	}

	if err := txn.Insert(tblDocuments, cloneDocument(doc)); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	txn.Commit()
	return nil
}

// GetByOwnerAndSlug reads a document by its composite key.
func (s *MemoryStore) GetByOwnerAndSlug(_ context.Context, ownerID, slug string) (*domain.Document, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, "id", ownerID, slug)
	if err != nil {
		return nil, fmt.Errorf("find document: %w", err)
	}
	if raw == nil {
		return nil, domain.ErrDocumentNotFound
	}
	return cloneDocument(raw.(*domain.Document)), nil
}

// GetBySlug reads a document through the slug index.
func (s *MemoryStore) GetBySlug(_ context.Context, slug string) (*domain.Document, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, "slug", slug)
	if err != nil {
		return nil, fmt.Errorf("find document by slug: %w", err)
	}
	if raw == nil {
		return nil, domain.ErrDocumentNotFound
	}
	return cloneDocument(raw.(*domain.Document)), nil
}

// ListByOwner returns all documents owned by ownerID, oldest first. Never
// nil on empty.
func (s *MemoryStore) ListByOwner(_ context.Context, ownerID string) ([]*domain.Document, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tblDocuments, "owner", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]*domain.Document, 0)
	for raw := it.Next(); raw != nil; raw = it.Next() {
		docs = append(docs, cloneDocument(raw.(*domain.Document)))
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].Slug < docs[j].Slug
		}
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
	return docs, nil
}

// Update rewrites an existing record; missing records are not upserted.
func (s *MemoryStore) Update(_ context.Context, doc *domain.Document) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, "id", doc.OwnerID, doc.Slug)
	if err != nil {
		return fmt.Errorf("find document: %w", err)
	}
	if raw == nil {
		return domain.ErrDocumentNotFound
	}

	if err := txn.Insert(tblDocuments, cloneDocument(doc)); err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	txn.Commit()
	return nil
}

// Delete removes a record by its composite key.
func (s *MemoryStore) Delete(_ context.Context, ownerID, slug string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, "id", ownerID, slug)
	if err != nil {
		return fmt.Errorf("find document: %w", err)
	}
	if raw == nil {
		return domain.ErrDocumentNotFound
	}

	if err := txn.Delete(tblDocuments, raw); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	txn.Commit()
	return nil
}

// Load bulk-inserts documents, used to seed offline mode with fixtures.
func (s *MemoryStore) Load(docs []*domain.Document) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	for _, doc := range docs {
		if err := txn.Insert(tblDocuments, cloneDocument(doc)); err != nil {
			return fmt.Errorf("insert document %q: %w", doc.Slug, err)
		}
	}
	txn.Commit()
	return nil
}

// cloneDocument copies a record so callers never alias stored state.
func cloneDocument(doc *domain.Document) *domain.Document {
	clone := *doc
	if doc.Metadata != nil {
		clone.Metadata = make(map[string]any, len(doc.Metadata))
		for k, v := range doc.Metadata {
			clone.Metadata[k] = v
		}
	}
	return &clone
}
