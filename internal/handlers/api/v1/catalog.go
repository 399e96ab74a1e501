package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/orchestrators/catalog"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/pagination"
	"github.com/KirkDiggler/wizarding-catalog/internal/router"
)

type statusResponse struct {
	Loading        bool   `json:"loading"`
	Error          string `json:"error,omitempty"`
	Characters     int    `json:"characters"`
	Spells         int    `json:"spells"`
	Favorites      int    `json:"favorites"`
	SearchSessions int    `json:"search_sessions"`
}

type listMeta struct {
	pagination.Meta
	Pages []pagination.PageItem `json:"pages"`
}

type characterDetailResponse struct {
	Character  *entities.Character `json:"character"`
	IsFavorite bool                `json:"is_favorite"`
	Href       string              `json:"href"`
}

type countMeta struct {
	Total int `json:"total"`
}

// GetStatus reports the load lifecycle. It answers while loading.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogService.GetStatus(r.Context(), &catalog.GetStatusInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, statusResponse{
		Loading:        out.Loading,
		Error:          out.Error,
		Characters:     out.Characters,
		Spells:         out.Spells,
		Favorites:      out.Favorites,
		SearchSessions: out.SearchSessions,
	})
}

// GetStats returns the home page counters
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogService.GetStats(r.Context(), &catalog.GetStatsInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, out.Stats)
}

func (h *Handler) listCharacters(role catalog.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := h.catalogService.ListCharacters(r.Context(), &catalog.ListCharactersInput{
			Role:  role,
			Query: r.URL.Query().Get("q"),
			Page:  pagination.FromRequest(r),
		})
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		writeList(w, out.Characters, listMeta{Meta: out.Pagination, Pages: out.Pages})
	}
}

// GetCharacter returns the character addressed by its name slug
func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogService.GetCharacter(r.Context(), &catalog.GetCharacterInput{
		Slug: chi.URLParam(r, "slug"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, characterDetailResponse{
		Character:  out.Character,
		IsFavorite: out.IsFavorite,
		Href:       "#" + router.CharacterHref(out.Character),
	})
}

// ListSpells returns every spell matching q
func (h *Handler) ListSpells(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogService.ListSpells(r.Context(), &catalog.ListSpellsInput{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeList(w, out.Spells, countMeta{Total: len(out.Spells)})
}
