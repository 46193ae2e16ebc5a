package span

import (
	"fmt"
	"sort"

	"github.com/dshills/notemark/internal/markup"
)

// Span is one formatting run over plain text. Start is inclusive, End is
// exclusive. A meaningful span has Start < End; zero-width spans may exist
// transiently but are never emitted by Decode.
type Span struct {
	Tag   markup.Tag        `json:"tag"`
	Start markup.ByteOffset `json:"start"`
	End   markup.ByteOffset `json:"end"`
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d)", s.Tag, s.Start, s.End)
}

// IsEmpty returns true if the span has zero width.
func (s Span) IsEmpty() bool {
	return s.Start >= s.End
}

// Overlaps returns true if the span overlaps [start, end) at all.
func (s Span) Overlaps(start, end markup.ByteOffset) bool {
	return !(s.End <= start || s.Start >= end)
}

// Normalize returns the spans sorted by (tag, start) with same-tag spans
// merged wherever they overlap or touch (next.Start <= prev.End). Spans of
// differing tags are never merged; styles compose freely across tags.
// Normalize is idempotent and never mutates its input.
func Normalize(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Tag != sorted[j].Tag {
			return sorted[i].Tag < sorted[j].Tag
		}
		return sorted[i].Start < sorted[j].Start
	})

	out := make([]Span, 0, len(sorted))
	for _, s := range sorted {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.Tag == s.Tag && s.Start <= last.End {
				if s.End > last.End {
					last.End = s.End
				}
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// Add appends a span for the tag over [start, end) and returns the
// normalized result.
func Add(spans []Span, tag markup.Tag, start, end markup.ByteOffset) []Span {
	out := make([]Span, 0, len(spans)+1)
	out = append(out, spans...)
	out = append(out, Span{Tag: tag, Start: start, End: end})
	return Normalize(out)
}

// Remove drops every span of the tag that overlaps [start, end) at all.
// A partially overlapping span is removed whole; there is no splitting or
// trimming. Spans of other tags are untouched.
func Remove(spans []Span, tag markup.Tag, start, end markup.ByteOffset) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Tag == tag && s.Overlaps(start, end) {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Toggle removes the tag's spans overlapping [start, end) if any exist,
// otherwise adds a span over the range.
func Toggle(spans []Span, tag markup.Tag, start, end markup.ByteOffset) []Span {
	for _, s := range spans {
		if s.Tag == tag && s.Overlaps(start, end) {
			return Remove(spans, tag, start, end)
		}
	}
	return Add(spans, tag, start, end)
}
