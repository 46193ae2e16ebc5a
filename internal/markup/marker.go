package markup

import "strings"

// Marker is a matched inline marker pair in a buffer. The range covers the
// full marked region, delimiters included.
type Marker struct {
	Tag   Tag
	Range Range
}

// scanOrder is the per-tag report order for FindMarkers. Each tag's scan
// is independent; italic avoids bold delimiter runs via the adjacency
// rules in opensAt and findClose.
var scanOrder = [tagCount]Tag{TagBold, TagItalic, TagUnderline, TagStrike}

// FindMarkers scans the buffer independently for each marker pattern and
// returns every non-overlapping match per pattern. Results are concatenated
// per tag type in scan order; they are not merged or sorted across tags.
//
// Matching is non-greedy: a pair closes at the nearest following closing
// delimiter with at least one byte of inner content. Unterminated or
// malformed markup yields no match and is left as literal text.
func FindMarkers(text string) []Marker {
	var markers []Marker
	for _, tag := range scanOrder {
		for _, r := range scanTag(text, tag) {
			markers = append(markers, Marker{Tag: tag, Range: r})
		}
	}
	return markers
}

// scanTag finds every non-overlapping match of one tag's pattern.
func scanTag(text string, tag Tag) []Range {
	pair := tag.Pair()
	var out []Range

	i := 0
	for i < len(text) {
		if !opensAt(text, i, tag, pair) {
			i++
			continue
		}
		closeIdx := findClose(text, i+len(pair.Left), tag, pair)
		if closeIdx < 0 {
			i++
			continue
		}
		end := closeIdx + len(pair.Right)
		out = append(out, Range{Start: ByteOffset(i), End: ByteOffset(end)})
		i = end
	}
	return out
}

// opensAt reports whether the tag's left delimiter matches at position i.
// For italic, a "*" adjacent to another "*" is a bold delimiter fragment,
// never an italic delimiter.
func opensAt(text string, i int, tag Tag, pair Pair) bool {
	if !strings.HasPrefix(text[i:], pair.Left) {
		return false
	}
	if tag == TagItalic {
		if i > 0 && text[i-1] == '*' {
			return false
		}
		if i+1 < len(text) && text[i+1] == '*' {
			return false
		}
	}
	return true
}

// findClose returns the byte index of the nearest valid closing delimiter
// at or after from, leaving at least one byte of inner content.
// Returns -1 if the marker is unterminated.
func findClose(text string, from int, tag Tag, pair Pair) int {
	for j := from + 1; j+len(pair.Right) <= len(text); j++ {
		if !strings.HasPrefix(text[j:], pair.Right) {
			continue
		}
		if tag == TagItalic {
			if text[j-1] == '*' {
				continue
			}
			if j+1 < len(text) && text[j+1] == '*' {
				continue
			}
		}
		return j
	}
	return -1
}

// matchAt attempts to match one tag's full pattern starting exactly at
// position i. Returns the end of the match (exclusive) and the inner
// delimiter-stripped content. Used by the single-pass migration scan.
func matchAt(text string, i int, tag Tag) (end int, inner string, ok bool) {
	pair := tag.Pair()
	if !opensAt(text, i, tag, pair) {
		return 0, "", false
	}
	closeIdx := findClose(text, i+len(pair.Left), tag, pair)
	if closeIdx < 0 {
		return 0, "", false
	}
	return closeIdx + len(pair.Right), text[i+len(pair.Left) : closeIdx], true
}

// decodeOrder is the priority order for the single-pass migration scan:
// the first pattern to match at a position wins.
var decodeOrder = [tagCount]Tag{TagBold, TagStrike, TagUnderline, TagItalic}

// NextMarker finds the leftmost marker match at or after position from,
// resolving overlapping syntaxes by decode priority (bold, strike,
// underline, italic). Returns ok=false when no marker remains.
func NextMarker(text string, from int) (m Marker, inner string, ok bool) {
	for i := from; i < len(text); i++ {
		for _, tag := range decodeOrder {
			end, in, matched := matchAt(text, i, tag)
			if matched {
				return Marker{Tag: tag, Range: Range{Start: ByteOffset(i), End: ByteOffset(end)}}, in, true
			}
		}
	}
	return Marker{}, "", false
}
