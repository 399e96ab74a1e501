package store

import "github.com/KirkDiggler/wizarding-catalog/internal/entities"

// Reduce applies action to state. It reports false, and returns state
// untouched, when the action changes nothing.
func Reduce(state State, action Action) (State, bool) {
	switch a := action.(type) {
	case BeginLoad:
		if state.Loading && state.Error == "" {
			return state, false
		}
		state.Loading = true
		state.Error = ""
		return state, true

	case LoadSucceeded:
		state.Characters = a.Characters
		if state.Characters == nil {
			state.Characters = []entities.Character{}
		}
		state.Spells = a.Spells
		if state.Spells == nil {
			state.Spells = []entities.Spell{}
		}
		return state, true

	case LoadFailed:
		state.Error = a.Message
		state.Loading = false
		return state, true

	case LoadFinished:
		if !state.Loading {
			return state, false
		}
		state.Loading = false
		return state, true

	case AddFavorite:
		if state.IsFavorite(a.ID) {
			return state, false
		}
		favorites := copyFavorites(state.Favorites, len(state.Favorites)+1)
		favorites[a.ID] = struct{}{}
		state.Favorites = favorites
		return state, true

	case RemoveFavorite:
		if !state.IsFavorite(a.ID) {
			return state, false
		}
		favorites := copyFavorites(state.Favorites, len(state.Favorites))
		delete(favorites, a.ID)
		state.Favorites = favorites
		return state, true

	case LoadFavorites:
		favorites := make(map[string]struct{}, len(a.IDs))
		for _, id := range a.IDs {
			favorites[id] = struct{}{}
		}
		state.Favorites = favorites
		return state, true

	case SetSelectedHouse:
		if state.SelectedHouse == a.House {
			return state, false
		}
		state.SelectedHouse = a.House
		return state, true
	}

	return state, false
}

func copyFavorites(src map[string]struct{}, size int) map[string]struct{} {
	dst := make(map[string]struct{}, size)
	for id := range src {
		dst[id] = struct{}{}
	}
	return dst
}
