// Package service implements the document use cases on top of the
// authorization rules and the document store.
package service

import (
	"context"
	"strings"
	"time"

	"mdshare/internal/domain"

	"github.com/google/uuid"
)

// DocumentService orchestrates authorization and persistence for the six
// document operations.
type DocumentService struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewDocumentService creates a new document service.
func NewDocumentService(store domain.DocumentStore, logger domain.Logger) *DocumentService {
	return &DocumentService{
		store:  store,
		logger: logger,
	}
}

// ListOwn returns every document owned by the principal. An owner with no
// documents gets an empty slice, never an error.
func (s *DocumentService) ListOwn(ctx context.Context, principal domain.Principal) ([]*domain.Document, error) {
	docs, err := s.store.ListByOwner(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = make([]*domain.Document, 0)
	}
	return docs, nil
}

// GetOwnBySlug returns the principal's document with the given slug. The
// composite-key lookup makes another owner's document indistinguishable from
// a missing one.
func (s *DocumentService) GetOwnBySlug(ctx context.Context, slug string, principal domain.Principal) (*domain.Document, error) {
	doc, err := s.store.GetByOwnerAndSlug(ctx, principal.ID, slug)
	if err != nil {
		return nil, err
	}
	if !domain.CanReadOwn(doc, principal) {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}

// GetPublicBySlug returns the document with the given slug if it is public.
// The public endpoint honors only the isPublic flag; even the owner gets
// not-found for a private document here.
func (s *DocumentService) GetPublicBySlug(ctx context.Context, slug string) (*domain.Document, error) {
	doc, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !domain.CanReadPublic(doc) {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}

// Create persists a new document owned by the principal with a freshly
// generated slug. Visibility defaults to private unless isPublic is set.
func (s *DocumentService) Create(ctx context.Context, content string, principal domain.Principal, isPublic bool) (*domain.Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrContentRequired
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		OwnerID:       principal.ID,
		Slug:          uuid.NewString(),
		Content:       content,
		IsPublic:      isPublic,
		SchemaVersion: domain.CurrentSchemaVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Put(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("Document created", "slug", doc.Slug, "owner", doc.OwnerID)
	return doc, nil
}

// Update replaces the content and visibility of the principal's document and
// refreshes its updated timestamp. Owner, slug, creation time, and schema
// version never change.
func (s *DocumentService) Update(ctx context.Context, slug, content string, principal domain.Principal, isPublic bool) (*domain.Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrContentRequired
	}

	doc, err := s.store.GetByOwnerAndSlug(ctx, principal.ID, slug)
	if err != nil {
		return nil, err
	}
	if !domain.CanWrite(doc, principal) {
		return nil, domain.ErrDocumentNotFound
	}

	doc.Content = content
	doc.IsPublic = isPublic
	doc.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("Document updated", "slug", doc.Slug, "owner", doc.OwnerID, "isPublic", doc.IsPublic)
	return doc, nil
}

// Delete removes the principal's document. A second delete of the same slug
// reports not-found because the record is already gone.
func (s *DocumentService) Delete(ctx context.Context, slug string, principal domain.Principal) error {
	doc, err := s.store.GetByOwnerAndSlug(ctx, principal.ID, slug)
	if err != nil {
		return err
	}
	if !domain.CanWrite(doc, principal) {
		return domain.ErrDocumentNotFound
	}

	if err := s.store.Delete(ctx, doc.OwnerID, doc.Slug); err != nil {
		return err
	}

	s.logger.Info("Document deleted", "slug", slug, "owner", principal.ID)
	return nil
}
