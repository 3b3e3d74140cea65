package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var cityNameRegex = regexp.MustCompile(`^[A-Za-z\s\-'.]+$`)

// IsCityName reports whether free text looks like a city name worth geocoding
func IsCityName(s string) bool {
	return cityNameRegex.MatchString(s)
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, IsNotEmpty(trimmed)
}

// Capitalize upper-cases the first rune and lower-cases the rest,
// so "new YORK" becomes "New york".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
