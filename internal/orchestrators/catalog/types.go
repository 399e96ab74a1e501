package catalog

import (
	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/pagination"
	"github.com/KirkDiggler/wizarding-catalog/internal/router"
	"github.com/KirkDiggler/wizarding-catalog/internal/search"
	"github.com/KirkDiggler/wizarding-catalog/internal/views"
)

// Role selects which character list to page through
type Role string

const (
	RoleAll      Role = "all"
	RoleStudents Role = "students"
	RoleStaff    Role = "staff"
)

// LoadCatalogInput defines the request for loading the catalog
type LoadCatalogInput struct{}

// LoadCatalogOutput defines the response for loading the catalog
type LoadCatalogOutput struct {
	Characters int
	Spells     int
}

// GetStatusInput defines the request for the load status
type GetStatusInput struct{}

// GetStatusOutput reports the load lifecycle and collection sizes
type GetStatusOutput struct {
	Loading        bool
	Error          string
	Characters     int
	Spells         int
	Favorites      int
	SearchSessions int
}

// GetStatsInput defines the request for home page counters
type GetStatsInput struct{}

// GetStatsOutput defines the response for home page counters
type GetStatsOutput struct {
	Stats views.Stats
}

// ListCharactersInput defines the request for a character list page
type ListCharactersInput struct {
	Role  Role
	Query string
	Page  pagination.Params
}

// ListCharactersOutput defines the response for a character list page
type ListCharactersOutput struct {
	Characters []entities.Character
	Pagination pagination.Meta
	Pages      []pagination.PageItem
}

// GetCharacterInput defines the request for a character detail
type GetCharacterInput struct {
	Slug string
}

// GetCharacterOutput defines the response for a character detail
type GetCharacterOutput struct {
	Character  *entities.Character
	IsFavorite bool
}

// ListSpellsInput defines the request for the spell list
type ListSpellsInput struct {
	Query string
}

// ListSpellsOutput defines the response for the spell list
type ListSpellsOutput struct {
	Spells []entities.Spell
}

// ListFavoritesInput defines the request for the favorites page
type ListFavoritesInput struct{}

// ListFavoritesOutput holds the loaded favorite characters and every stored id
type ListFavoritesOutput struct {
	Characters []entities.Character
	IDs        []string
}

// AddFavoriteInput defines the request for adding a favorite
type AddFavoriteInput struct {
	CharacterID string
}

// AddFavoriteOutput reports whether the set changed
type AddFavoriteOutput struct {
	Added bool
}

// RemoveFavoriteInput defines the request for removing a favorite
type RemoveFavoriteInput struct {
	CharacterID string
}

// RemoveFavoriteOutput reports whether the set changed
type RemoveFavoriteOutput struct {
	Removed bool
}

// GetHousePreferenceInput defines the request for the house preference
type GetHousePreferenceInput struct{}

// GetHousePreferenceOutput defines the response for the house preference
type GetHousePreferenceOutput struct {
	House string
}

// SetHousePreferenceInput defines the request for setting the house preference
type SetHousePreferenceInput struct {
	House string
}

// SetHousePreferenceOutput defines the response for setting the house preference
type SetHousePreferenceOutput struct {
	House string
}

// SearchInput defines a one-shot search
type SearchInput struct {
	Query   string
	Filters search.Filters
}

// SearchOutput defines the response for a one-shot search
type SearchOutput struct {
	Results search.Results
}

// CreateSearchSessionInput defines the request for opening a search session
type CreateSearchSessionInput struct {
	Filters *search.Filters
}

// CreateSearchSessionOutput defines the response for opening a search session
type CreateSearchSessionOutput struct {
	SessionID string
	State     search.SessionState
}

// GetSearchSessionInput defines the request for reading a search session
type GetSearchSessionInput struct {
	SessionID string
}

// GetSearchSessionOutput defines the response for reading a search session
type GetSearchSessionOutput struct {
	State search.SessionState
}

// UpdateSearchSessionInput changes the query, the filters or both.
// A nil Query leaves the query alone.
type UpdateSearchSessionInput struct {
	SessionID string
	Query     *string
	Filters   search.FilterPatch
}

// UpdateSearchSessionOutput defines the response for updating a search session
type UpdateSearchSessionOutput struct {
	State search.SessionState
}

// ClearSearchSessionInput defines the request for clearing a search session
type ClearSearchSessionInput struct {
	SessionID string
}

// ClearSearchSessionOutput defines the response for clearing a search session
type ClearSearchSessionOutput struct {
	State search.SessionState
}

// DeleteSearchSessionInput defines the request for closing a search session
type DeleteSearchSessionInput struct {
	SessionID string
}

// DeleteSearchSessionOutput defines the response for closing a search session
type DeleteSearchSessionOutput struct{}

// ResolveRouteInput defines the request for resolving a fragment
type ResolveRouteInput struct {
	Fragment string
}

// ResolveRouteOutput holds the parsed route. For detail routes Found tells
// whether Character was resolved; a miss is not an error.
type ResolveRouteOutput struct {
	Route     router.Route
	Character *entities.Character
	Found     bool
}
