package textutil

import "time"

// timeLayouts are tried in order when normalizing string timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToISO normalizes a stored date/time value to a canonical ISO-8601 string.
// Unparseable or unsupported values yield nil rather than an error.
func ToISO(v any) *string {
	switch t := v.(type) {
	case time.Time:
		return isoString(t)
	case *time.Time:
		if t == nil {
			return nil
		}
		return isoString(*t)
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return isoString(parsed)
			}
		}
		return nil
	default:
		return nil
	}
}

func isoString(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
