package repository

import (
	"time"

	"mdshare/internal/domain"
)

// Sample owner IDs for documents that do not belong to the local user.
// Their public documents are reachable through the public endpoint; their
// private ones exercise the not-found merging.
const (
	seedOwnerTwo   = "b6631d43-3f5d-43f7-84a5-76a9b8c9820f"
	seedOwnerThree = "f38b3dd9-7f81-4f3a-9dc0-291bd5341305"
)

// SampleDocuments returns the fixtures loaded into the memory store in
// offline mode: a mix of public and private documents for the local user
// and two other owners.
func SampleDocuments(localUserID string) []*domain.Document {
	base := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

	fixtures := []struct {
		owner    string
		slug     string
		content  string
		isPublic bool
	}{
		{localUserID, "052bb610-7dc3-4220-af0a-cb13ad04e42c", "This is the first document.", false},
		{localUserID, "b1e7ddfa-3d0b-4a1f-a3d3-000000000003", "# Draft notes\n\nStill private.", false},
		{localUserID, "b1e7ddfa-3d0b-4a1f-a3d3-000000000005", "# Published guide\n\nVisible to everyone.", true},
		{localUserID, "b1e7ddfa-3d0b-4a1f-a3d3-000000000006", "# Second public document", true},
		{seedOwnerTwo, "a7252e70-2799-4b80-b8ee-a2ca2231c660", "# TEST title test\n\nThis is the second document.", true},
		{seedOwnerTwo, "b1e7ddfa-3d0b-4a1f-a3d3-000000000008", "Another owner's private document.", false},
		{seedOwnerThree, "b1e7ddfa-3d0b-4a1f-a3d3-000000000012", "# Third owner, public", true},
	}

	docs := make([]*domain.Document, 0, len(fixtures))
	for i, f := range fixtures {
		created := base.Add(time.Duration(i) * time.Minute)
		docs = append(docs, &domain.Document{
			OwnerID:       f.owner,
			Slug:          f.slug,
			Content:       f.content,
			IsPublic:      f.isPublic,
			SchemaVersion: domain.CurrentSchemaVersion,
			CreatedAt:     created,
			UpdatedAt:     created,
		})
	}
	return docs
}
