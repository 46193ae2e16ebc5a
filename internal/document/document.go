package document

import (
	"sync"

	"github.com/dshills/notemark/internal/markup"
	"github.com/dshills/notemark/internal/span"
)

// Document holds one note's text and formatting state.
// All methods are thread-safe.
//
// A document starts in markup mode: the text carries visible markers and
// spans are derived on demand. After Migrate the document is in span mode:
// the text is plain and the span list is the formatting source of truth,
// maintained through AddSpan, RemoveSpan and ToggleSpan.
type Document struct {
	mu         sync.RWMutex
	text       string
	spans      []span.Span
	migrated   bool
	revisionID RevisionID
	scheme     markup.Scheme
}

// Option configures a Document.
type Option func(*Document)

// WithScheme sets the bullet scheme used by block toggles.
func WithScheme(s markup.Scheme) Option {
	return func(d *Document) {
		d.scheme = s
	}
}

// New creates an empty document in markup mode.
func New(opts ...Option) *Document {
	d := &Document{
		revisionID: NewRevisionID(),
		scheme:     markup.DefaultScheme(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFromMarkup creates a document holding marker-embedded text.
func NewFromMarkup(text string, opts ...Option) *Document {
	d := New(opts...)
	d.text = text
	return d
}

// NewFromPlain creates a document already in span mode, holding plain text
// and a span list. The spans are normalized on the way in.
func NewFromPlain(text string, spans []span.Span, opts ...Option) *Document {
	d := New(opts...)
	d.text = text
	d.spans = span.Normalize(spans)
	d.migrated = true
	return d
}

// Text returns the document's current text. In markup mode this includes
// the markers; in span mode it is plain.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// SetText replaces the document's text. In span mode the caller is
// responsible for keeping the span list consistent with the edit.
func (d *Document) SetText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = text
	d.revisionID = NewRevisionID()
}

// Len returns the text length in bytes.
func (d *Document) Len() markup.ByteOffset {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return markup.ByteOffset(len(d.text))
}

// Migrated returns true once the document is in span mode.
func (d *Document) Migrated() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.migrated
}

// RevisionID returns the current revision ID.
func (d *Document) RevisionID() RevisionID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.revisionID
}

// Spans returns the document's formatting spans. In span mode this is the
// maintained list; in markup mode the spans are derived from the markers
// without altering the text. The returned slice is a copy.
func (d *Document) Spans() []span.Span {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.migrated {
		_, derived := span.Decode(d.text)
		return derived
	}
	return copySpans(d.spans)
}

// Markers scans the current text for inline markers, for live
// highlighting. Only meaningful in markup mode; in span mode the text is
// plain and the result is normally empty.
func (d *Document) Markers() []markup.Marker {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return markup.FindMarkers(d.text)
}

// ToggleInline toggles an inline style on the selection and returns the
// updated selection for the caller's widget. Markup mode only; in span
// mode use ToggleSpan.
func (d *Document) ToggleInline(sel markup.Range, tag markup.Tag) markup.Range {
	d.mu.Lock()
	defer d.mu.Unlock()

	text, start, end := markup.ToggleInline(d.text, sel.Start, sel.End, tag)
	d.text = text
	d.revisionID = NewRevisionID()
	return markup.NewRange(start, end)
}

// ToggleBullets toggles bullet prefixes on the lines covering the
// selection and returns the updated selection.
func (d *Document) ToggleBullets(sel markup.Range) markup.Range {
	d.mu.Lock()
	defer d.mu.Unlock()

	text, start, end := d.scheme.ToggleBullets(d.text, sel.Start, sel.End)
	d.text = text
	d.revisionID = NewRevisionID()
	return markup.NewRange(start, end)
}

// Migrate converts the document from markup mode to span mode: markers
// are stripped out of the text and recorded as normalized spans.
// Migrating twice is a no-op.
func (d *Document) Migrate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.migrated {
		return
	}
	plain, spans := span.Decode(d.text)
	d.text = plain
	d.spans = span.Normalize(spans)
	d.migrated = true
	d.revisionID = NewRevisionID()
}

// AddSpan adds a formatting span over [start, end).
func (d *Document) AddSpan(tag markup.Tag, start, end markup.ByteOffset) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.spans = span.Add(d.spans, tag, start, end)
	d.revisionID = NewRevisionID()
}

// RemoveSpan removes every span of the tag overlapping [start, end).
func (d *Document) RemoveSpan(tag markup.Tag, start, end markup.ByteOffset) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.spans = span.Remove(d.spans, tag, start, end)
	d.revisionID = NewRevisionID()
}

// ToggleSpan toggles the tag over [start, end).
func (d *Document) ToggleSpan(tag markup.Tag, start, end markup.ByteOffset) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.spans = span.Toggle(d.spans, tag, start, end)
	d.revisionID = NewRevisionID()
}

// Snapshot returns a read-only view of the current document state.
// Safe for concurrent access from other goroutines.
func (d *Document) Snapshot() *Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return &Snapshot{
		text:       d.text,
		spans:      copySpans(d.spans),
		migrated:   d.migrated,
		revisionID: d.revisionID,
	}
}

func copySpans(spans []span.Span) []span.Span {
	if spans == nil {
		return nil
	}
	out := make([]span.Span, len(spans))
	copy(out, spans)
	return out
}
