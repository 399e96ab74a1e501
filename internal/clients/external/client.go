// Package external is the client for the character and spell provider
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/wizarding-catalog/internal/clients/external Client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
)

const (
	// DefaultBaseURL is the public provider endpoint
	DefaultBaseURL = "https://hp-api.onrender.com/api"
	// DefaultHTTPTimeout bounds a single provider request
	DefaultHTTPTimeout = 30 * time.Second

	charactersPath = "/characters"
	spellsPath     = "/spells"
)

// Client defines the interface for provider interactions.
// Each call returns the provider's full collection; there is no paging.
type Client interface {
	// ListCharacters fetches every character
	ListCharacters(ctx context.Context) ([]entities.Character, error)

	// ListSpells fetches every spell
	ListSpells(ctx context.Context) ([]entities.Spell, error)
}

// APIError is returned when the provider answers with a non-2xx status
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError builds the error from the provider's status line, for example
// "599 Spell Misfire". The standard text fills in a missing reason.
func newAPIError(statusCode int, statusLine string) *APIError {
	status := strings.TrimSpace(strings.TrimPrefix(statusLine, strconv.Itoa(statusCode)))
	if status == "" {
		status = http.StatusText(statusCode)
	}
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Message:    fmt.Sprintf("API Error: %d %s", statusCode, status),
	}
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the provider (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// Logger (optional, defaults to slog.Default())
	Logger *slog.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgument("http timeout cannot be negative")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

type client struct {
	http   *resty.Client
	logger *slog.Logger
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.HTTPTimeout)

	return &client{
		http:   httpClient,
		logger: cfg.Logger,
	}, nil
}

func (c *client) ListCharacters(ctx context.Context) ([]entities.Character, error) {
	var characters []entities.Character
	if err := c.getCollection(ctx, charactersPath, &characters); err != nil {
		return nil, err
	}
	if characters == nil {
		characters = []entities.Character{}
	}
	return characters, nil
}

func (c *client) ListSpells(ctx context.Context) ([]entities.Spell, error) {
	var spells []entities.Spell
	if err := c.getCollection(ctx, spellsPath, &spells); err != nil {
		return nil, err
	}
	if spells == nil {
		spells = []entities.Spell{}
	}
	return spells, nil
}

// getCollection issues one GET and decodes the whole JSON array into out
func (c *client) getCollection(ctx context.Context, path string, out any) error {
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		c.logger.ErrorContext(ctx, "provider request failed",
			"path", path,
			"error", err)
		return errors.WrapWithCode(err, errors.CodeUnavailable, "provider request failed").
			WithMeta("path", path)
	}

	c.logger.DebugContext(ctx, "provider responded",
		"path", path,
		"status", resp.StatusCode(),
		"duration", time.Since(start))

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		apiErr := newAPIError(resp.StatusCode(), resp.Status())
		return errors.WrapWithCode(apiErr, errors.FromHTTPStatus(apiErr.StatusCode), apiErr.Message).
			WithMeta("path", path).
			WithMeta("status_code", apiErr.StatusCode)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to decode provider response").
			WithMeta("path", path)
	}

	return nil
}
