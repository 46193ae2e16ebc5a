package tags

import "github.com/dshills/notemark/internal/markup"

// Match is one raw hashtag occurrence in a buffer, for live highlighting.
// Raw is the matched text including the leading "#"; Range is its byte
// range in the buffer.
type Match struct {
	Raw   string
	Range markup.Range
}

// Canonical returns the canonical hashtag form of the match.
func (m Match) Canonical() string {
	token := NormalizeToken(m.Raw[1:])
	if token == "" {
		return ""
	}
	return "#" + token
}

// Find returns every hashtag occurrence in the text with its position.
// Unlike Extract, occurrences are not canonicalized or deduplicated: the
// caller highlights each raw occurrence where it appears.
func Find(text string) []Match {
	idx := hashtagPattern.FindAllStringIndex(text, -1)
	if idx == nil {
		return nil
	}

	out := make([]Match, 0, len(idx))
	for _, loc := range idx {
		out = append(out, Match{
			Raw:   text[loc[0]:loc[1]],
			Range: markup.NewRange(markup.ByteOffset(loc[0]), markup.ByteOffset(loc[1])),
		})
	}
	return out
}
