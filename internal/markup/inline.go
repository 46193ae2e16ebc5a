package markup

// ToggleInline toggles an inline style on the selected range and returns
// the updated text plus the selection for the caller to re-apply.
//
// The operation attempts an unwrap first: if the selection itself begins
// with the tag's left delimiter and ends with its right delimiter, the
// delimiters are stripped and the returned selection covers exactly the
// surviving inner text. Otherwise the selection is wrapped: for an empty
// selection both delimiters are inserted back-to-back with the returned
// selection placed between them for typing; for a non-empty selection the
// returned selection extends to cover the content plus both delimiters.
//
// Applying the same toggle twice, feeding the returned selection back in,
// restores the original text and selection.
func ToggleInline(text string, start, end ByteOffset, tag Tag) (string, ByteOffset, ByteOffset) {
	start, end = clampOffsets(text, start, end)
	pair := tag.Pair()

	if newText, ns, ne, ok := unwrap(text, start, end, pair); ok {
		return newText, ns, ne
	}
	return wrap(text, start, end, pair)
}

// ToggleBold toggles "**" delimiters on the selection.
func ToggleBold(text string, start, end ByteOffset) (string, ByteOffset, ByteOffset) {
	return ToggleInline(text, start, end, TagBold)
}

// ToggleItalic toggles "*" delimiters on the selection.
func ToggleItalic(text string, start, end ByteOffset) (string, ByteOffset, ByteOffset) {
	return ToggleInline(text, start, end, TagItalic)
}

// ToggleUnderline toggles "<u>"/"</u>" delimiters on the selection.
func ToggleUnderline(text string, start, end ByteOffset) (string, ByteOffset, ByteOffset) {
	return ToggleInline(text, start, end, TagUnderline)
}

// ToggleStrikethrough toggles "~~" delimiters on the selection.
func ToggleStrikethrough(text string, start, end ByteOffset) (string, ByteOffset, ByteOffset) {
	return ToggleInline(text, start, end, TagStrike)
}

// unwrap removes the delimiter pair when the selection spans it exactly:
// text[start:end] must begin with the left delimiter and end with the
// right delimiter, with room for both. The inner text collapses into
// their place and the returned selection covers it.
func unwrap(text string, start, end ByteOffset, pair Pair) (string, ByteOffset, ByteOffset, bool) {
	left := ByteOffset(len(pair.Left))
	right := ByteOffset(len(pair.Right))
	if end-start < left+right {
		return "", 0, 0, false
	}
	if text[start:start+left] != pair.Left || text[end-right:end] != pair.Right {
		return "", 0, 0, false
	}

	inner := text[start+left : end-right]
	newText := text[:start] + inner + text[end:]
	return newText, start, start + ByteOffset(len(inner)), true
}

// wrap inserts the delimiter pair around the selection. An empty selection
// gets both delimiters back-to-back with the cursor between them.
func wrap(text string, start, end ByteOffset, pair Pair) (string, ByteOffset, ByteOffset) {
	if start >= end {
		newText := text[:start] + pair.Left + pair.Right + text[end:]
		cursor := start + ByteOffset(len(pair.Left))
		return newText, cursor, cursor
	}

	newText := text[:start] + pair.Left + text[start:end] + pair.Right + text[end:]
	return newText, start, end + pair.Len()
}
