package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/store"
	"github.com/KirkDiggler/wizarding-catalog/internal/testutils"
)

func TestReduce_LoadLifecycle(t *testing.T) {
	state := store.InitialState()
	assert.False(t, state.Loading)
	assert.False(t, state.HasError())
	assert.Empty(t, state.Characters)
	assert.Empty(t, state.Favorites)

	state, changed := store.Reduce(state, store.BeginLoad{})
	require.True(t, changed)
	assert.True(t, state.Loading)

	_, changed = store.Reduce(state, store.BeginLoad{})
	assert.False(t, changed, "begin load while already loading")

	state, changed = store.Reduce(state, store.LoadSucceeded{
		Characters: testutils.Students(),
		Spells:     []entities.Spell{testutils.Lumos()},
	})
	require.True(t, changed)
	assert.Len(t, state.Characters, 2)
	assert.Len(t, state.Spells, 1)
	assert.True(t, state.Loading, "load succeeded leaves loading to the caller")

	state, changed = store.Reduce(state, store.LoadFinished{})
	require.True(t, changed)
	assert.False(t, state.Loading)

	_, changed = store.Reduce(state, store.LoadFinished{})
	assert.False(t, changed)
}

func TestReduce_LoadFailed(t *testing.T) {
	state, _ := store.Reduce(store.InitialState(), store.BeginLoad{})
	state, changed := store.Reduce(state, store.LoadFailed{Message: "API Error: 500 Internal Server Error"})

	require.True(t, changed)
	assert.False(t, state.Loading)
	assert.True(t, state.HasError())
	assert.Equal(t, "API Error: 500 Internal Server Error", state.Error)

	state, changed = store.Reduce(state, store.BeginLoad{})
	require.True(t, changed)
	assert.Empty(t, state.Error, "begin load clears the error")
}

func TestReduce_NilCollectionsBecomeEmpty(t *testing.T) {
	state, _ := store.Reduce(store.InitialState(), store.LoadSucceeded{})
	assert.NotNil(t, state.Characters)
	assert.NotNil(t, state.Spells)
}

func TestReduce_Favorites(t *testing.T) {
	initial := store.InitialState()

	added, changed := store.Reduce(initial, store.AddFavorite{ID: "a"})
	require.True(t, changed)
	assert.True(t, added.IsFavorite("a"))
	assert.False(t, initial.IsFavorite("a"), "previous snapshot is untouched")

	again, changed := store.Reduce(added, store.AddFavorite{ID: "a"})
	assert.False(t, changed)
	assert.Len(t, again.Favorites, 1)

	same, changed := store.Reduce(added, store.RemoveFavorite{ID: "missing"})
	assert.False(t, changed)
	assert.Equal(t, added, same)

	removed, changed := store.Reduce(added, store.RemoveFavorite{ID: "a"})
	require.True(t, changed)
	assert.False(t, removed.IsFavorite("a"))
	assert.True(t, added.IsFavorite("a"))
}

func TestReduce_LoadFavoritesReplaces(t *testing.T) {
	state, _ := store.Reduce(store.InitialState(), store.AddFavorite{ID: "old"})
	state, changed := store.Reduce(state, store.LoadFavorites{IDs: []string{"b", "a", "b"}})

	require.True(t, changed)
	assert.Equal(t, []string{"a", "b"}, state.FavoriteIDs())
}

func TestReduce_SelectedHouse(t *testing.T) {
	state, changed := store.Reduce(store.InitialState(), store.SetSelectedHouse{House: "Ravenclaw"})
	require.True(t, changed)
	assert.Equal(t, "Ravenclaw", state.SelectedHouse)

	_, changed = store.Reduce(state, store.SetSelectedHouse{House: "Ravenclaw"})
	assert.False(t, changed)
}
