package document

import "github.com/dshills/notemark/internal/span"

// Snapshot provides a read-only view of a document at a specific point in
// time. It is safe for concurrent access and will not change even if the
// original document is modified.
type Snapshot struct {
	text       string
	spans      []span.Span
	migrated   bool
	revisionID RevisionID
}

// Text returns the snapshot's text.
func (s *Snapshot) Text() string {
	return s.text
}

// Spans returns the snapshot's span list. The slice is owned by the
// snapshot; callers must not modify it.
func (s *Snapshot) Spans() []span.Span {
	return s.spans
}

// Migrated returns true if the document was in span mode.
func (s *Snapshot) Migrated() bool {
	return s.migrated
}

// RevisionID returns the revision the snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}
