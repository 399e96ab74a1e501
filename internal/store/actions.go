package store

import "github.com/KirkDiggler/wizarding-catalog/internal/entities"

// Action is a state transition understood by Reduce
type Action interface {
	actionName() string
}

// BeginLoad marks the start of the load sequence
type BeginLoad struct{}

// LoadSucceeded publishes both collections. It leaves Loading alone.
type LoadSucceeded struct {
	Characters []entities.Character
	Spells     []entities.Spell
}

// LoadFailed records the load error and clears Loading
type LoadFailed struct {
	Message string
}

// LoadFinished clears Loading once the load sequence ends
type LoadFinished struct{}

// AddFavorite inserts a character id into favorites
type AddFavorite struct {
	ID string
}

// RemoveFavorite removes a character id from favorites
type RemoveFavorite struct {
	ID string
}

// LoadFavorites replaces the favorites set
type LoadFavorites struct {
	IDs []string
}

// SetSelectedHouse stores the house preference. Empty clears it.
type SetSelectedHouse struct {
	House string
}

func (BeginLoad) actionName() string        { return "begin_load" }
func (LoadSucceeded) actionName() string    { return "load_succeeded" }
func (LoadFailed) actionName() string       { return "load_failed" }
func (LoadFinished) actionName() string     { return "load_finished" }
func (AddFavorite) actionName() string      { return "add_favorite" }
func (RemoveFavorite) actionName() string   { return "remove_favorite" }
func (LoadFavorites) actionName() string    { return "load_favorites" }
func (SetSelectedHouse) actionName() string { return "set_selected_house" }
