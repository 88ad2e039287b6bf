package utils

import "strings"

// truthy is the closed set of accepted truthy query-string forms.
var truthy = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
	"on":   true,
}

// ParseBoolFlag coerces a query-string value to a boolean. Only the forms
// "1", "true", "yes" and "on" (case-insensitive) count as true; everything
// else, including the empty string, is false.
func ParseBoolFlag(raw string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(raw))]
}
