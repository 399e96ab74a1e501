// Package search matches characters and spells against a free-text query.
//
// Matching is accent and case insensitive substring matching. Results keep
// the input order; there is no ranking.
package search

import (
	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/normalize"
)

// EntityType selects which collections a search covers
type EntityType string

const (
	TypeAll        EntityType = "all"
	TypeCharacters EntityType = "characters"
	TypeSpells     EntityType = "spells"
)

// ParseEntityType parses a type filter. Empty means TypeAll.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case "", TypeAll:
		return TypeAll, nil
	case TypeCharacters, TypeSpells:
		return EntityType(s), nil
	}
	return "", errors.InvalidArgumentf("unknown search type %q", s).
		WithMeta("allowed", []EntityType{TypeAll, TypeCharacters, TypeSpells})
}

func (t EntityType) includesCharacters() bool {
	return t == "" || t == TypeAll || t == TypeCharacters
}

func (t EntityType) includesSpells() bool {
	return t == "" || t == TypeAll || t == TypeSpells
}

// Filters narrows a search.
//
// House and Species are accepted but not applied as predicates: a non-empty
// value only lifts the empty-input bypass, so an empty query with a house set
// returns every character.
type Filters struct {
	Type    EntityType `json:"type"`
	House   string     `json:"house"`
	Species string     `json:"species"`
}

// DefaultFilters searches everything
func DefaultFilters() Filters {
	return Filters{Type: TypeAll}
}

// Results holds matches per collection. Both slices are always non-nil.
type Results struct {
	Characters []entities.Character `json:"characters"`
	Spells     []entities.Spell     `json:"spells"`
}

// EmptyResults returns results with no matches
func EmptyResults() Results {
	return Results{
		Characters: []entities.Character{},
		Spells:     []entities.Spell{},
	}
}

// IsBypassed reports whether a search with these inputs would be skipped
func IsBypassed(query string, filters Filters) bool {
	return query == "" && filters.House == "" && filters.Species == ""
}

// Search returns the characters and spells matching query, gated by
// filters.Type. It never fails.
func Search(characters []entities.Character, spells []entities.Spell, query string, filters Filters) Results {
	results := EmptyResults()
	if IsBypassed(query, filters) {
		return results
	}

	needle := normalize.String(query)

	if filters.Type.includesCharacters() {
		for _, c := range characters {
			if characterMatches(&c, needle) {
				results.Characters = append(results.Characters, c)
			}
		}
	}

	if filters.Type.includesSpells() {
		for _, sp := range spells {
			if spellMatches(&sp, needle) {
				results.Spells = append(results.Spells, sp)
			}
		}
	}

	return results
}

func characterMatches(c *entities.Character, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{c.Name, c.Actor, c.House, c.Species} {
		if normalize.Contains(field, needle) {
			return true
		}
	}
	for _, alt := range c.AlternateNames {
		if normalize.Contains(alt, needle) {
			return true
		}
	}
	return false
}

func spellMatches(sp *entities.Spell, needle string) bool {
	if needle == "" {
		return true
	}
	return normalize.Contains(sp.Name, needle) || normalize.Contains(sp.Description, needle)
}
