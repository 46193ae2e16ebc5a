// Package tags canonicalizes free-form tag tokens into deduplicated
// hashtag lists. The canonical form is "#" plus lowercase hyphen-joined
// words with no punctuation other than the joining hyphens; the mapping
// from raw input to canonical token is many-to-one ("Main Idea",
// "#main idea" and "MAIN-IDEA" all canonicalize identically).
//
// Nothing in this package fails: empty or unusable input degrades to an
// empty result.
package tags

import (
	"regexp"
	"strings"
)

// hashtagPattern matches "#" followed by one or more alphanumeric,
// underscore or hyphen characters. The captured body is normalized
// afterwards, which strips the underscores and hyphens, so "#main-idea"
// and "#main_idea" canonicalize to the same token.
var hashtagPattern = regexp.MustCompile(`#([0-9A-Za-z_-]+)`)

// NormalizeToken reduces a raw tag to its canonical body (no leading "#"):
// every character that is not alphanumeric or a space is stripped, the
// remainder is trimmed and lowercased, and the words are joined with
// hyphens. Empty input yields an empty string.
func NormalizeToken(raw string) string {
	var cleaned strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c == ' ':
			cleaned.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			cleaned.WriteByte(c + ('a' - 'A'))
		}
	}
	return strings.Join(strings.Fields(cleaned.String()), "-")
}

// SanitizeList turns a comma-separated tag string into canonical hashtag
// form: each piece is trimmed, stripped of any leading "#", normalized and
// prefixed with "#". Empty results are skipped and duplicates are dropped,
// preserving first-seen order.
func SanitizeList(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	for _, piece := range strings.Split(text, ",") {
		bare := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(piece), "#"))
		token := NormalizeToken(bare)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, "#"+token)
	}
	return out
}

// Extract finds hashtag occurrences in free text and returns them in
// canonical form, deduplicated in first-seen order.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	for _, m := range hashtagPattern.FindAllStringSubmatch(text, -1) {
		token := NormalizeToken(m[1])
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, "#"+token)
	}
	return out
}
