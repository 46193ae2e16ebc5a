package span

import (
	"strings"

	"github.com/dshills/notemark/internal/markup"
)

// Decode converts marker-embedded text into plain text plus the spans the
// markers described, in one left-to-right pass. This is the one-time
// migration path from inline-markup storage to span storage.
//
// At each position the first pattern to match wins, in priority order
// bold, strike, underline, italic; nested or interleaved markers are not
// specially resolved. Span coordinates index the plain output, and only
// non-empty spans are emitted.
//
// The result is in increasing start order but is not normalized; callers
// needing merged spans run the result through Normalize.
func Decode(text string) (string, []Span) {
	var plain strings.Builder
	var spans []Span

	pos := 0
	for {
		m, inner, ok := markup.NextMarker(text, pos)
		if !ok {
			break
		}

		plain.WriteString(text[pos:m.Range.Start])
		start := markup.ByteOffset(plain.Len())
		plain.WriteString(inner)
		end := markup.ByteOffset(plain.Len())

		if inner != "" {
			spans = append(spans, Span{Tag: m.Tag, Start: start, End: end})
		}
		pos = int(m.Range.End)
	}

	plain.WriteString(text[pos:])
	return plain.String(), spans
}
