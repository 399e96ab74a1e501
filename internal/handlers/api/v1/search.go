package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/wizarding-catalog/internal/orchestrators/catalog"
	"github.com/KirkDiggler/wizarding-catalog/internal/router"
	"github.com/KirkDiggler/wizarding-catalog/internal/search"
)

type sessionResponse struct {
	ID    string              `json:"id"`
	State search.SessionState `json:"state"`
}

type createSessionRequest struct {
	Type    string `json:"type"`
	House   string `json:"house"`
	Species string `json:"species"`
}

type updateSessionRequest struct {
	Query   *string `json:"query"`
	Type    *string `json:"type"`
	House   *string `json:"house"`
	Species *string `json:"species"`
}

type routeResponse struct {
	View      router.View `json:"view"`
	Slug      string      `json:"slug,omitempty"`
	Fragment  string      `json:"fragment"`
	Found     *bool       `json:"found,omitempty"`
	Character any         `json:"character,omitempty"`
}

// Search runs one search without debounce
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	entityType, err := search.ParseEntityType(q.Get("type"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := h.catalogService.Search(r.Context(), &catalog.SearchInput{
		Query: q.Get("q"),
		Filters: search.Filters{
			Type:    entityType,
			House:   q.Get("house"),
			Species: q.Get("species"),
		},
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, out.Results)
}

// CreateSearchSession opens a debounced search session
func (h *Handler) CreateSearchSession(w http.ResponseWriter, r *http.Request) {
	var body createSessionRequest
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	entityType, err := search.ParseEntityType(body.Type)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := h.catalogService.CreateSearchSession(r.Context(), &catalog.CreateSearchSessionInput{
		Filters: &search.Filters{
			Type:    entityType,
			House:   body.House,
			Species: body.Species,
		},
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", r.URL.Path+"/"+out.SessionID)
	writeData(w, http.StatusCreated, sessionResponse{ID: out.SessionID, State: out.State})
}

// GetSearchSession returns the session's current state
func (h *Handler) GetSearchSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	out, err := h.catalogService.GetSearchSession(r.Context(), &catalog.GetSearchSessionInput{SessionID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, sessionResponse{ID: id, State: out.State})
}

// UpdateSearchSession changes the query and/or filters
func (h *Handler) UpdateSearchSession(w http.ResponseWriter, r *http.Request) {
	var body updateSessionRequest
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	input := &catalog.UpdateSearchSessionInput{
		SessionID: chi.URLParam(r, "id"),
		Query:     body.Query,
		Filters: search.FilterPatch{
			House:   body.House,
			Species: body.Species,
		},
	}
	if body.Type != nil {
		entityType := search.EntityType(*body.Type)
		input.Filters.Type = &entityType
	}

	out, err := h.catalogService.UpdateSearchSession(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, sessionResponse{ID: input.SessionID, State: out.State})
}

// ClearSearchSession resets the query and results
func (h *Handler) ClearSearchSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	out, err := h.catalogService.ClearSearchSession(r.Context(), &catalog.ClearSearchSessionInput{SessionID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, sessionResponse{ID: id, State: out.State})
}

// DeleteSearchSession closes the session
func (h *Handler) DeleteSearchSession(w http.ResponseWriter, r *http.Request) {
	_, err := h.catalogService.DeleteSearchSession(r.Context(), &catalog.DeleteSearchSessionInput{
		SessionID: chi.URLParam(r, "id"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResolveRoute parses a fragment and resolves detail slugs
func (h *Handler) ResolveRoute(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogService.ResolveRoute(r.Context(), &catalog.ResolveRouteInput{
		Fragment: r.URL.Query().Get("fragment"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := routeResponse{
		View:     out.Route.View,
		Slug:     out.Route.Slug,
		Fragment: out.Route.Fragment(),
	}
	if out.Route.View == router.ViewCharacterDetail {
		found := out.Found
		resp.Found = &found
		if out.Character != nil {
			resp.Character = out.Character
		}
	}

	writeData(w, http.StatusOK, resp)
}
