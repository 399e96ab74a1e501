// Package store holds the loaded catalog, its load lifecycle and the
// session's favorites. All mutation goes through Reduce.
package store

import (
	"sort"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
)

// Houses lists the selectable house preferences
var Houses = []string{"Gryffindor", "Slytherin", "Hufflepuff", "Ravenclaw"}

// State is an immutable snapshot. Favorites is shared between snapshots and
// must not be modified by callers.
type State struct {
	Characters    []entities.Character
	Spells        []entities.Spell
	Favorites     map[string]struct{}
	Loading       bool
	Error         string
	SelectedHouse string
}

// InitialState returns the state of a new store
func InitialState() State {
	return State{
		Characters: []entities.Character{},
		Spells:     []entities.Spell{},
		Favorites:  map[string]struct{}{},
	}
}

// HasError reports whether the last load failed
func (s State) HasError() bool {
	return s.Error != ""
}

// HasData reports whether either collection holds entries
func (s State) HasData() bool {
	return len(s.Characters) > 0 || len(s.Spells) > 0
}

// IsFavorite reports whether id is in the favorites set
func (s State) IsFavorite(id string) bool {
	_, ok := s.Favorites[id]
	return ok
}

// FavoriteIDs returns the favorites set in sorted order
func (s State) FavoriteIDs() []string {
	ids := make([]string, 0, len(s.Favorites))
	for id := range s.Favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
