package textutil

import (
	"regexp"
	"strings"
)

// ExcerptMaxLen is the hard cut applied to derived excerpts, in runes.
const ExcerptMaxLen = 220

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// DeriveExcerpt returns the stored excerpt verbatim (trimmed) when present,
// otherwise builds one from the body: strip HTML-like tags, collapse
// whitespace runs to single spaces, trim, cut at ExcerptMaxLen runes.
// The cut is a hard character cut with no word-boundary awareness.
func DeriveExcerpt(stored, body string) string {
	if s := strings.TrimSpace(stored); s != "" {
		return s
	}

	plain := tagPattern.ReplaceAllString(body, " ")
	plain = whitespacePattern.ReplaceAllString(plain, " ")
	plain = strings.TrimSpace(plain)

	runes := []rune(plain)
	if len(runes) > ExcerptMaxLen {
		return string(runes[:ExcerptMaxLen])
	}
	return plain
}
