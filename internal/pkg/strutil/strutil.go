// Package strutil holds small string helpers shared by the security and api layers.
package strutil

import (
	"strings"
	"unicode"
)

// SplitLast splits s so that the second part holds the last n runes.
// ok is false when s is shorter than n.
func SplitLast(s string, n int) (head, tail string, ok bool) {
	r := []rune(s)
	if n < 0 || len(r) < n {
		return "", "", false
	}
	return string(r[:len(r)-n]), string(r[len(r)-n:]), true
}

// IsDigits reports whether s is non-empty and consists only of decimal digits
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizeEmail trims and lower-cases an address for lookups
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FirstNonBlank returns the first argument that contains a non-space character
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.IndexFunc(v, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0 {
			return v
		}
	}
	return ""
}
