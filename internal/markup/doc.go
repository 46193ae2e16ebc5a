// Package markup implements the inline and block markup engine for note
// text. Text is stored with markers visible: the markers are part of the
// buffer content, and a display layer applies visual formatting on top of
// them.
//
// Markup conventions:
//
//   - Bold:          **text**
//   - Italic:        *text*
//   - Underline:     <u>text</u>
//   - Strikethrough: ~~text~~
//   - Bullet:        line(s) starting with "• "
//
// The package provides three groups of operations:
//
//   - FindMarkers scans a buffer for marker pairs, for live highlighting.
//   - ToggleInline wraps or unwraps a selection with an inline marker pair
//     and returns the updated text plus the selection to re-apply.
//   - ToggleBullets adds or removes bullet prefixes on the whole lines
//     covering a selection.
//
// Every operation is a pure function over value inputs: the package holds
// no state between calls, and identical inputs always produce identical
// outputs. Offsets are byte offsets into the text, ranges are half-open
// [Start, End). Out-of-range offsets are clamped to the buffer rather than
// rejected, so malformed caller input degrades to a sensible edit instead
// of corrupting the buffer.
//
// Bullet recognition is configurable through a Scheme; everything else
// uses the fixed marker literals above.
package markup
