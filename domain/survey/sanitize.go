package survey

import (
	"strings"
	"unicode"
)

// Sanitize collapses every run of whitespace (including non-breaking spaces,
// tabs and newlines) into a single ASCII space and trims both ends.
// It is total and idempotent; whitespace-only input yields "".
//
// Column headers, configured question text and response values all pass
// through here so equality checks are whitespace-insensitive.
func Sanitize(text string) string {
	return strings.Join(strings.FieldsFunc(text, unicode.IsSpace), " ")
}

// EqualFold reports whether two strings are equal after sanitizing and
// case folding. Used for Likert response matching.
func EqualFold(a, b string) bool {
	return strings.EqualFold(Sanitize(a), Sanitize(b))
}
