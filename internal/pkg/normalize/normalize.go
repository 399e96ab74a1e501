// Package normalize folds text into a case- and accent-insensitive form for
// substring matching.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String lowercases s, decomposes it to NFD and drops the combining marks,
// so "Café" and "cafe" fold to the same value. It never fails and
// String(String(s)) == String(s).
func String(s string) string {
	if s == "" {
		return ""
	}

	// transform.Chain keeps internal buffers, so it is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		// Only reachable on malformed input the transformer refuses; fall back
		// to the lowercase form rather than failing.
		return strings.ToLower(s)
	}

	return strings.ToLower(folded)
}

// Contains reports whether the folded form of field contains needle.
// needle must already be folded with String.
func Contains(field, needle string) bool {
	return strings.Contains(String(field), needle)
}
