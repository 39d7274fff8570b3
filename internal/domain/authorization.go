package domain

// Authorization is ownership plus a public flag; there are no roles, groups,
// or delegation. Publish/unpublish rights are just write rights.

// CanReadOwn reports whether principal may read doc through the owner endpoints.
func CanReadOwn(doc *Document, principal Principal) bool {
	return !principal.IsAnonymous() && doc.OwnerID == principal.ID
}

// CanReadPublic reports whether doc is readable by anyone, owner included,
// through the public endpoint.
func CanReadPublic(doc *Document) bool {
	return doc.IsPublic
}

// CanWrite reports whether principal may update, delete, or change the
// visibility of doc.
func CanWrite(doc *Document, principal Principal) bool {
	return !principal.IsAnonymous() && doc.OwnerID == principal.ID
}
