// Package views derives the list pages from loaded catalog state.
//
// List filtering here is plain lowercase substring matching. It is
// deliberately looser than the search package: no accent folding and no
// alternate names.
package views

import (
	"strings"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/store"
)

// CharacterField names a character field a list filter inspects
type CharacterField int

const (
	FieldName CharacterField = iota
	FieldActor
	FieldHouse
	FieldSpecies
)

var (
	// RoleListFields are matched on the students and staff pages
	RoleListFields = []CharacterField{FieldName, FieldActor, FieldHouse}
	// AllCharactersFields are matched on the all-characters page
	AllCharactersFields = []CharacterField{FieldName, FieldActor, FieldHouse, FieldSpecies}
)

func (f CharacterField) value(c *entities.Character) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldActor:
		return c.Actor
	case FieldHouse:
		return c.House
	case FieldSpecies:
		return c.Species
	}
	return ""
}

// Students returns characters who are students and not staff
func Students(characters []entities.Character) []entities.Character {
	return filter(characters, func(c *entities.Character) bool {
		return c.IsStudentOnly()
	})
}

// Staff returns characters who are staff and not students
func Staff(characters []entities.Character) []entities.Character {
	return filter(characters, func(c *entities.Character) bool {
		return c.IsStaffOnly()
	})
}

// Favorites returns the loaded characters whose id is a favorite, in load
// order. Favorite ids with no loaded character are skipped.
func Favorites(characters []entities.Character, favorites map[string]struct{}) []entities.Character {
	return filter(characters, func(c *entities.Character) bool {
		_, ok := favorites[c.ID]
		return ok
	})
}

// FilterCharacters keeps characters where any of fields contains query,
// ignoring case. An empty query keeps everything.
func FilterCharacters(characters []entities.Character, query string, fields []CharacterField) []entities.Character {
	if query == "" {
		return characters
	}
	q := strings.ToLower(query)

	return filter(characters, func(c *entities.Character) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f.value(c)), q) {
				return true
			}
		}
		return false
	})
}

// FilterSpells keeps spells whose name or description contains query,
// ignoring case. An empty query keeps everything.
func FilterSpells(spells []entities.Spell, query string) []entities.Spell {
	if query == "" {
		return spells
	}
	q := strings.ToLower(query)

	out := make([]entities.Spell, 0, len(spells))
	for _, sp := range spells {
		if strings.Contains(strings.ToLower(sp.Name), q) ||
			strings.Contains(strings.ToLower(sp.Description), q) {
			out = append(out, sp)
		}
	}
	return out
}

// Stats are the home page counters
type Stats struct {
	Characters int `json:"characters"`
	Students   int `json:"students"`
	Staff      int `json:"staff"`
	Spells     int `json:"spells"`
	Favorites  int `json:"favorites"`
}

// ComputeStats counts the derived views of state. Favorites counts every
// stored id, loaded or not.
func ComputeStats(state store.State) Stats {
	return Stats{
		Characters: len(state.Characters),
		Students:   len(Students(state.Characters)),
		Staff:      len(Staff(state.Characters)),
		Spells:     len(state.Spells),
		Favorites:  len(state.Favorites),
	}
}

func filter(characters []entities.Character, keep func(*entities.Character) bool) []entities.Character {
	out := make([]entities.Character, 0, len(characters))
	for i := range characters {
		if keep(&characters[i]) {
			out = append(out, characters[i])
		}
	}
	return out
}
