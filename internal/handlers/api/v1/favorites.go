package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/wizarding-catalog/internal/orchestrators/catalog"
)

type favoritesMeta struct {
	IDs []string `json:"ids"`
}

type favoriteResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
	Changed  bool   `json:"changed"`
}

type housePreference struct {
	House string `json:"house"`
}

// ListFavorites returns the loaded favorite characters
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogService.ListFavorites(r.Context(), &catalog.ListFavoritesInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeList(w, out.Characters, favoritesMeta{IDs: out.IDs})
}

// AddFavorite marks a character id as favorite. Repeating it is a no-op.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	out, err := h.catalogService.AddFavorite(r.Context(), &catalog.AddFavoriteInput{CharacterID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, favoriteResponse{ID: id, Favorite: true, Changed: out.Added})
}

// RemoveFavorite unmarks a character id. Absent ids are a no-op.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	out, err := h.catalogService.RemoveFavorite(r.Context(), &catalog.RemoveFavoriteInput{CharacterID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, favoriteResponse{ID: id, Favorite: false, Changed: out.Removed})
}

// GetHousePreference returns the selected house, empty when unset
func (h *Handler) GetHousePreference(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogService.GetHousePreference(r.Context(), &catalog.GetHousePreferenceInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, housePreference{House: out.House})
}

// SetHousePreference stores the selected house
func (h *Handler) SetHousePreference(w http.ResponseWriter, r *http.Request) {
	var body housePreference
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := h.catalogService.SetHousePreference(r.Context(), &catalog.SetHousePreferenceInput{House: body.House})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, housePreference{House: out.House})
}
