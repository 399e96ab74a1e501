// Package slug converts display names into URL-safe identifiers and back.
//
// The mapping is lossy: From(To(name)) only recovers names made of plain,
// single-capital words. "Minerva McGonagall" becomes "minerva-mcgonagall"
// and comes back as "Minerva Mcgonagall".
package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// space covers Unicode whitespace such as NBSP, not only ASCII.
const space = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	// disallowed matches anything that is not a lowercase ASCII letter, digit,
	// whitespace or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9` + space + `-]`)
	whitespace = regexp.MustCompile(`[` + space + `]+`)
	hyphens    = regexp.MustCompile(`-+`)
)

// To converts a display name into a slug: lowercase, strip everything but
// [a-z0-9], whitespace and hyphens, turn whitespace runs into one hyphen,
// collapse repeated hyphens and trim them from both ends.
func To(name string) string {
	s := strings.ToLower(name)
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// From turns a slug back into a display-style name by replacing hyphens with
// spaces and title-casing each word.
func From(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")

	// A Caser carries state and is not safe for concurrent use.
	title := cases.Title(language.Und)
	for i, word := range words {
		words[i] = title.String(word)
	}

	return strings.Join(words, " ")
}
