package markup

import "strings"

// ToggleBullets toggles bullet prefixes on the whole lines covering the
// selection, using the default scheme.
func ToggleBullets(text string, start, end ByteOffset) (string, ByteOffset, ByteOffset) {
	return DefaultScheme().ToggleBullets(text, start, end)
}

// ToggleBullets toggles bullet prefixes on every line overlapping
// [start, end). The selection is first expanded to whole lines: the block
// begins at the start of the line containing start and ends at the end of
// the line containing end.
//
// If every non-blank line in the block already begins with a recognized
// bullet prefix, the prefixes are removed (blank lines are left as-is).
// Otherwise the canonical bullet is added to every line, blank lines
// included. The returned selection is recomputed from per-line length
// deltas; for multi-line selections this is best-effort and the selection
// may drift within the edited block.
func (s Scheme) ToggleBullets(text string, start, end ByteOffset) (string, ByteOffset, ByteOffset) {
	start, end = clampOffsets(text, start, end)

	blockStart, blockEnd := expandToLines(text, start, end)
	lines := strings.Split(text[blockStart:blockEnd], "\n")

	allBulleted := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !s.IsBulleted(line) {
			allBulleted = false
			break
		}
	}

	bulletLen := ByteOffset(len(s.Bullet))
	newLines := make([]string, len(lines))
	var newStart, newEnd ByteOffset

	if allBulleted {
		// Strip the recognized prefix from every line; blank lines have
		// none and pass through unchanged.
		var delta ByteOffset
		for i, line := range lines {
			if prefix, ok := s.bulletPrefix(line); ok {
				newLines[i] = line[len(prefix):]
				delta += ByteOffset(len(prefix))
			} else {
				newLines[i] = line
			}
		}
		newStart = start
		if start > blockStart {
			newStart = start - bulletLen
		}
		if newStart < blockStart {
			newStart = blockStart
		}
		newEnd = end - delta
	} else {
		for i, line := range lines {
			newLines[i] = s.Bullet + line
		}
		newStart = start + bulletLen
		newEnd = end + bulletLen*ByteOffset(len(lines))
	}

	newText := text[:blockStart] + strings.Join(newLines, "\n") + text[blockEnd:]
	newStart, newEnd = clampOffsets(newText, newStart, newEnd)
	return newText, newStart, newEnd
}

// expandToLines widens [start, end) to cover the whole lines it touches.
// End-of-line is the next newline byte or the end of the buffer.
func expandToLines(text string, start, end ByteOffset) (ByteOffset, ByteOffset) {
	blockStart := ByteOffset(strings.LastIndexByte(text[:start], '\n') + 1)

	blockEnd := ByteOffset(len(text))
	if idx := strings.IndexByte(text[end:], '\n'); idx >= 0 {
		blockEnd = end + ByteOffset(idx)
	}
	return blockStart, blockEnd
}
