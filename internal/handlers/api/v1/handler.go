// Package v1 serves the catalog over HTTP+JSON
package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/orchestrators/catalog"
)

// DefaultRequestTimeout bounds a single request
const DefaultRequestTimeout = 30 * time.Second

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CatalogService catalog.Service
	Logger         *slog.Logger
	RequestTimeout time.Duration
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CatalogService == nil {
		return errors.InvalidArgument("catalog service is required")
	}
	if c.RequestTimeout < 0 {
		return errors.InvalidArgument("request timeout cannot be negative")
	}
	return nil
}

// Handler implements the catalog HTTP API
type Handler struct {
	catalogService catalog.Service
	logger         *slog.Logger
	requestTimeout time.Duration
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	return &Handler{
		catalogService: cfg.CatalogService,
		logger:         logger,
		requestTimeout: timeout,
	}, nil
}

// Routes builds the chi router for the API
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(h.requestTimeout))

	r.Get("/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", h.GetStatus)
		r.Get("/stats", h.GetStats)

		r.Get("/characters", h.listCharacters(catalog.RoleAll))
		r.Get("/characters/{slug}", h.GetCharacter)
		r.Get("/students", h.listCharacters(catalog.RoleStudents))
		r.Get("/staff", h.listCharacters(catalog.RoleStaff))
		r.Get("/spells", h.ListSpells)

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.ListFavorites)
			r.Put("/{id}", h.AddFavorite)
			r.Delete("/{id}", h.RemoveFavorite)
		})

		r.Get("/preferences/house", h.GetHousePreference)
		r.Put("/preferences/house", h.SetHousePreference)

		r.Get("/search", h.Search)
		r.Route("/search/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSearchSession)
			r.Get("/{id}", h.GetSearchSession)
			r.Patch("/{id}", h.UpdateSearchSession)
			r.Delete("/{id}", h.DeleteSearchSession)
			r.Post("/{id}/clear", h.ClearSearchSession)
		})

		r.Get("/routes", h.ResolveRoute)
	})

	return r
}

// Health reports liveness. It does not depend on the catalog being loaded.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
