// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mdshare/internal/domain"
	apperrors "mdshare/pkg/errors"

	"github.com/gorilla/mux"
)

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	documentService domain.DocumentService
	logger          domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService domain.DocumentService, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
	}
}

type createDocumentRequest struct {
	Content  string `json:"content"`
	IsPublic *bool  `json:"isPublic,omitempty"`
}

type updateDocumentRequest struct {
	Content  string `json:"content"`
	IsPublic bool   `json:"isPublic"`
}

// ListDocuments returns every document owned by the caller.
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	docs, err := h.documentService.ListOwn(r.Context(), principal)
	if err != nil {
		h.writeServiceError(w, err, "Failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// GetDocument returns one of the caller's documents by slug. Documents of
// other owners look exactly like missing ones.
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	slug := mux.Vars(r)["slug"]

	doc, err := h.documentService.GetOwnBySlug(r.Context(), slug, principal)
	if err != nil {
		h.writeServiceError(w, err, "Failed to get document")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// GetPublicDocument returns a public document by slug without
// authentication. Private documents are not-found here, owner or not.
func (h *DocumentHandler) GetPublicDocument(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	doc, err := h.documentService.GetPublicBySlug(r.Context(), slug)
	if err != nil {
		h.writeServiceError(w, err, "Failed to get public document")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// CreateDocument creates a new document owned by the caller.
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	doc, err := h.documentService.Create(r.Context(), req.Content, principal, isPublic)
	if err != nil {
		h.writeServiceError(w, err, "Failed to create document")
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

// UpdateDocument replaces the content and visibility of one of the caller's
// documents.
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	slug := mux.Vars(r)["slug"]

	var req updateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := h.documentService.Update(r.Context(), slug, req.Content, principal, req.IsPublic)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update document")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// DeleteDocument removes one of the caller's documents.
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	slug := mux.Vars(r)["slug"]

	if err := h.documentService.Delete(r.Context(), slug, principal); err != nil {
		h.writeServiceError(w, err, "Failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps service errors to the response taxonomy. Anything
// unexpected becomes a fixed-message 500; internals are logged, never sent.
func (h *DocumentHandler) writeServiceError(w http.ResponseWriter, err error, logMsg string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, domain.ErrContentRequired):
		appErr = apperrors.NewValidationError("Content is required")
	case errors.Is(err, domain.ErrDocumentNotFound):
		appErr = apperrors.NewNotFoundError("Document not found")
	default:
		h.logger.Error(logMsg, err)
		appErr = apperrors.NewInternalError("Internal server error", err)
	}
	writeError(w, appErr.StatusCode, appErr.Message)
}
