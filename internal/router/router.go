// Package router maps URL fragments to views and resolves detail slugs
// against the loaded characters.
package router

import (
	"strings"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/slug"
)

// View identifies a page
type View string

const (
	ViewHome            View = "home"
	ViewCharacters      View = "characters"
	ViewStudents        View = "students"
	ViewStaff           View = "staff"
	ViewSpells          View = "spells"
	ViewFavorites       View = "favorites"
	ViewCharacterDetail View = "character-detail"
)

// listViews are the views addressable by name alone
var listViews = map[View]struct{}{
	ViewHome:       {},
	ViewCharacters: {},
	ViewStudents:   {},
	ViewStaff:      {},
	ViewSpells:     {},
	ViewFavorites:  {},
}

// Route is a parsed fragment. Slug is set only for ViewCharacterDetail.
type Route struct {
	View View   `json:"view"`
	Slug string `json:"slug,omitempty"`
}

// Parse maps a fragment to a route. A leading "#" is ignored. Anything that
// is not a known view or "characters/<slug>" falls back to home.
func Parse(fragment string) Route {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return Route{View: ViewHome}
	}

	parts := strings.Split(fragment, "/")
	switch len(parts) {
	case 1:
		if _, ok := listViews[View(parts[0])]; ok {
			return Route{View: View(parts[0])}
		}
	case 2:
		if parts[0] == string(ViewCharacters) && parts[1] != "" {
			return Route{View: ViewCharacterDetail, Slug: parts[1]}
		}
	}

	return Route{View: ViewHome}
}

// Fragment renders r back to a fragment without the leading "#"
func (r Route) Fragment() string {
	switch r.View {
	case ViewHome, "":
		return ""
	case ViewCharacterDetail:
		return string(ViewCharacters) + "/" + r.Slug
	}
	return string(r.View)
}

// CharacterHref returns the detail fragment for c
func CharacterHref(c *entities.Character) string {
	return Route{View: ViewCharacterDetail, Slug: slug.To(c.Name)}.Fragment()
}

// ResolveCharacter returns the first character whose slugged name equals
// s. The comparison is case sensitive.
func ResolveCharacter(characters []entities.Character, s string) (*entities.Character, bool) {
	for i := range characters {
		if slug.To(characters[i].Name) == s {
			return &characters[i], true
		}
	}
	return nil, false
}
