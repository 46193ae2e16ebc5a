package markup

import "fmt"

// Tag identifies an inline formatting style.
type Tag uint8

const (
	// TagBold is strong emphasis, delimited by "**".
	TagBold Tag = iota

	// TagItalic is emphasis, delimited by a single "*".
	TagItalic

	// TagUnderline is underlined text, delimited by "<u>" and "</u>".
	TagUnderline

	// TagStrike is struck-through text, delimited by "~~".
	TagStrike

	// tagCount is a sentinel for iteration.
	tagCount
)

// String returns the canonical name of the tag, as stored in span records.
func (t Tag) String() string {
	switch t {
	case TagBold:
		return "bold"
	case TagItalic:
		return "italic"
	case TagUnderline:
		return "underline"
	case TagStrike:
		return "strike"
	default:
		return "unknown"
	}
}

// IsValid returns true if the tag is one of the known styles.
func (t Tag) IsValid() bool {
	return t < tagCount
}

// MarshalText encodes the tag as its canonical name, so span records
// serialize as {"tag": "bold", ...} rather than a bare number.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("unknown tag %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a canonical tag name.
func (t *Tag) UnmarshalText(text []byte) error {
	tag, ok := ParseTag(string(text))
	if !ok {
		return fmt.Errorf("unknown tag %q", text)
	}
	*t = tag
	return nil
}

// ParseTag converts a canonical tag name back to a Tag.
// Returns false if the name is not recognized.
func ParseTag(name string) (Tag, bool) {
	switch name {
	case "bold":
		return TagBold, true
	case "italic":
		return TagItalic, true
	case "underline":
		return TagUnderline, true
	case "strike":
		return TagStrike, true
	default:
		return tagCount, false
	}
}

// Pair is the literal delimiter pair for an inline style.
// Delimiters are matched verbatim; there is no escaping.
type Pair struct {
	Left  string
	Right string
}

// Len returns the combined length of both delimiters in bytes.
func (p Pair) Len() ByteOffset {
	return ByteOffset(len(p.Left) + len(p.Right))
}

// pairs maps each tag to its delimiter pair.
var pairs = [tagCount]Pair{
	TagBold:      {Left: "**", Right: "**"},
	TagItalic:    {Left: "*", Right: "*"},
	TagUnderline: {Left: "<u>", Right: "</u>"},
	TagStrike:    {Left: "~~", Right: "~~"},
}

// Pair returns the delimiter pair for the tag.
// Unknown tags return the bold pair; callers should validate with IsValid.
func (t Tag) Pair() Pair {
	if !t.IsValid() {
		return pairs[TagBold]
	}
	return pairs[t]
}

// Tags returns all known tags in declaration order.
func Tags() []Tag {
	return []Tag{TagBold, TagItalic, TagUnderline, TagStrike}
}
