package markup

import "fmt"

// ByteOffset represents a byte position in a text buffer.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// Range represents a byte range in a text buffer.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start ByteOffset // Inclusive start position
	End   ByteOffset // Exclusive end position
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end ByteOffset) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (Start <= End).
func (r Range) IsValid() bool {
	return r.Start <= r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset ByteOffset) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps returns true if this range overlaps with another range.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Union returns the smallest range that contains both ranges.
func (r Range) Union(other Range) Range {
	start := r.Start
	if other.Start < start {
		start = other.Start
	}
	end := r.End
	if other.End > end {
		end = other.End
	}
	return Range{Start: start, End: end}
}

// Clamp returns the range constrained to a buffer of the given length,
// with Start and End swapped if they arrive inverted. Toggle operations
// clamp caller selections instead of rejecting them so an out-of-range
// selection degrades to an edit at the buffer edge.
func (r Range) Clamp(length ByteOffset) Range {
	start, end := r.Start, r.End
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if start > length {
		start = length
	}
	if end > length {
		end = length
	}
	return Range{Start: start, End: end}
}

// clampOffsets is shorthand used by the toggle entry points.
func clampOffsets(text string, start, end ByteOffset) (ByteOffset, ByteOffset) {
	r := Range{Start: start, End: end}.Clamp(ByteOffset(len(text)))
	return r.Start, r.End
}
