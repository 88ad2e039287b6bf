package textutil

import "strings"

// Highlight delimiters consumed by UI clients.
const (
	HighlightOpen  = "<c>"
	HighlightClose = "</c>"
)

// Highlight wraps the first case-insensitive occurrence of term inside field
// with the delimiter pair, leaving every other character unchanged. If term
// does not occur, the field is returned unmodified.
func Highlight(field, term string) string {
	if field == "" || term == "" {
		return field
	}

	idx := strings.Index(strings.ToLower(field), strings.ToLower(term))
	if idx < 0 {
		return field
	}

	end := idx + len(term)
	return field[:idx] + HighlightOpen + field[idx:end] + HighlightClose + field[end:]
}
