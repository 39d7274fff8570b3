package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mdshare/internal/domain"

	"github.com/gorilla/mux"
)

type mockDocumentService struct {
	docs []*domain.Document
	doc  *domain.Document
	err  error

	lastContent  string
	lastIsPublic bool
	lastSlug     string
}

func (m *mockDocumentService) ListOwn(_ context.Context, _ domain.Principal) ([]*domain.Document, error) {
	return m.docs, m.err
}

func (m *mockDocumentService) GetOwnBySlug(_ context.Context, slug string, _ domain.Principal) (*domain.Document, error) {
	m.lastSlug = slug
	return m.doc, m.err
}

func (m *mockDocumentService) GetPublicBySlug(_ context.Context, slug string) (*domain.Document, error) {
	m.lastSlug = slug
	return m.doc, m.err
}

func (m *mockDocumentService) Create(_ context.Context, content string, _ domain.Principal, isPublic bool) (*domain.Document, error) {
	m.lastContent = content
	m.lastIsPublic = isPublic
	return m.doc, m.err
}

func (m *mockDocumentService) Update(_ context.Context, slug, content string, _ domain.Principal, isPublic bool) (*domain.Document, error) {
	m.lastSlug = slug
	m.lastContent = content
	m.lastIsPublic = isPublic
	return m.doc, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, slug string, _ domain.Principal) error {
	m.lastSlug = slug
	return m.err
}

// newHandlerRequest builds an authenticated request with mux vars set.
func newHandlerRequest(t *testing.T, method, target string, body []byte, slug string) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader([]byte{})
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(withPrincipal(req.Context(), domain.Principal{ID: "u1"}))
	if slug != "" {
		req = mux.SetURLVars(req, map[string]string{"slug": slug})
	}
	return req
}

func TestListDocuments_EmptyReturnsArray(t *testing.T) {
	svc := &mockDocumentService{docs: []*domain.Document{}}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.ListDocuments(rr, newHandlerRequest(t, http.MethodGet, "/api/docs", nil, ""))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.HasPrefix(strings.TrimSpace(rr.Body.String()), "[") {
		t.Fatalf("expected JSON array, got %s", rr.Body.String())
	}
}

func TestListDocuments_Unauthenticated(t *testing.T) {
	svc := &mockDocumentService{}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	// No principal in context.
	h.ListDocuments(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestListDocuments_StoreError(t *testing.T) {
	svc := &mockDocumentService{err: errors.New("store down")}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.ListDocuments(rr, newHandlerRequest(t, http.MethodGet, "/api/docs", nil, ""))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	// Internal detail must not leak.
	if strings.Contains(rr.Body.String(), "store down") {
		t.Fatalf("internal error leaked to client: %s", rr.Body.String())
	}
}

func TestGetDocument_NotFound(t *testing.T) {
	svc := &mockDocumentService{err: domain.ErrDocumentNotFound}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.GetDocument(rr, newHandlerRequest(t, http.MethodGet, "/api/docs/s1", nil, "s1"))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	if svc.lastSlug != "s1" {
		t.Fatalf("expected slug s1, got %q", svc.lastSlug)
	}
}

func TestGetPublicDocument_OK(t *testing.T) {
	svc := &mockDocumentService{doc: &domain.Document{OwnerID: "u1", Slug: "s1", Content: "# Hi", IsPublic: true}}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/documents/s1", nil)
	req = mux.SetURLVars(req, map[string]string{"slug": "s1"})
	h.GetPublicDocument(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var doc domain.Document
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if doc.Slug != "s1" || !doc.IsPublic {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestCreateDocument_Created(t *testing.T) {
	svc := &mockDocumentService{doc: &domain.Document{OwnerID: "u1", Slug: "new-slug", Content: "# Hello"}}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	body := []byte(`{"content":"# Hello"}`)
	rr := httptest.NewRecorder()
	h.CreateDocument(rr, newHandlerRequest(t, http.MethodPost, "/api/docs", body, ""))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}
	if svc.lastContent != "# Hello" {
		t.Fatalf("expected content to reach service, got %q", svc.lastContent)
	}
	if svc.lastIsPublic {
		t.Fatal("isPublic should default to false when omitted")
	}
}

func TestCreateDocument_ExplicitIsPublic(t *testing.T) {
	svc := &mockDocumentService{doc: &domain.Document{Slug: "s"}}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	body := []byte(`{"content":"x","isPublic":true}`)
	rr := httptest.NewRecorder()
	h.CreateDocument(rr, newHandlerRequest(t, http.MethodPost, "/api/docs", body, ""))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}
	if !svc.lastIsPublic {
		t.Fatal("expected isPublic=true to reach service")
	}
}

func TestCreateDocument_MissingContent(t *testing.T) {
	svc := &mockDocumentService{err: domain.ErrContentRequired}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	body := []byte(`{}`)
	rr := httptest.NewRecorder()
	h.CreateDocument(rr, newHandlerRequest(t, http.MethodPost, "/api/docs", body, ""))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Content is required") {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestCreateDocument_MalformedBody(t *testing.T) {
	svc := &mockDocumentService{}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.CreateDocument(rr, newHandlerRequest(t, http.MethodPost, "/api/docs", []byte("{not json"), ""))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestUpdateDocument_NotFound(t *testing.T) {
	svc := &mockDocumentService{err: domain.ErrDocumentNotFound}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	body := []byte(`{"content":"x","isPublic":false}`)
	rr := httptest.NewRecorder()
	h.UpdateDocument(rr, newHandlerRequest(t, http.MethodPut, "/api/docs/s1", body, "s1"))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestUpdateDocument_OK(t *testing.T) {
	svc := &mockDocumentService{doc: &domain.Document{Slug: "s1", Content: "# Hi", IsPublic: true}}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	body := []byte(`{"content":"# Hi","isPublic":true}`)
	rr := httptest.NewRecorder()
	h.UpdateDocument(rr, newHandlerRequest(t, http.MethodPut, "/api/docs/s1", body, "s1"))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if svc.lastSlug != "s1" || svc.lastContent != "# Hi" || !svc.lastIsPublic {
		t.Fatalf("service received wrong arguments: slug=%q content=%q isPublic=%v",
			svc.lastSlug, svc.lastContent, svc.lastIsPublic)
	}
}

func TestDeleteDocument_NoContent(t *testing.T) {
	svc := &mockDocumentService{}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.DeleteDocument(rr, newHandlerRequest(t, http.MethodDelete, "/api/docs/s1", nil, "s1"))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %s", rr.Body.String())
	}
}

func TestDeleteDocument_NotFound(t *testing.T) {
	svc := &mockDocumentService{err: domain.ErrDocumentNotFound}
	h := NewDocumentHandler(svc, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.DeleteDocument(rr, newHandlerRequest(t, http.MethodDelete, "/api/docs/s1", nil, "s1"))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
