// Package catalog implements the catalog orchestrator: list pages, detail
// lookups, favorites, preferences and search sessions over the store.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/wizarding-catalog/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/clock"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/idgen"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/pagination"
	"github.com/KirkDiggler/wizarding-catalog/internal/router"
	"github.com/KirkDiggler/wizarding-catalog/internal/search"
	"github.com/KirkDiggler/wizarding-catalog/internal/store"
	"github.com/KirkDiggler/wizarding-catalog/internal/views"
)

const errCatalogLoading = "catalog is loading"

const (
	// DefaultSessionTTL is how long a search session may sit idle
	DefaultSessionTTL = 30 * time.Minute
	// DefaultMaxSessions caps the session registry
	DefaultMaxSessions = 1000
)

// Service defines the interface for catalog operations
type Service interface {
	LoadCatalog(ctx context.Context, input *LoadCatalogInput) (*LoadCatalogOutput, error)
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)

	ListFavorites(ctx context.Context, input *ListFavoritesInput) (*ListFavoritesOutput, error)
	AddFavorite(ctx context.Context, input *AddFavoriteInput) (*AddFavoriteOutput, error)
	RemoveFavorite(ctx context.Context, input *RemoveFavoriteInput) (*RemoveFavoriteOutput, error)

	GetHousePreference(ctx context.Context, input *GetHousePreferenceInput) (*GetHousePreferenceOutput, error)
	SetHousePreference(ctx context.Context, input *SetHousePreferenceInput) (*SetHousePreferenceOutput, error)

	// Search runs the engine once, without debounce
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
	CreateSearchSession(ctx context.Context, input *CreateSearchSessionInput) (*CreateSearchSessionOutput, error)
	GetSearchSession(ctx context.Context, input *GetSearchSessionInput) (*GetSearchSessionOutput, error)
	UpdateSearchSession(ctx context.Context, input *UpdateSearchSessionInput) (*UpdateSearchSessionOutput, error)
	ClearSearchSession(ctx context.Context, input *ClearSearchSessionInput) (*ClearSearchSessionOutput, error)
	DeleteSearchSession(ctx context.Context, input *DeleteSearchSessionInput) (*DeleteSearchSessionOutput, error)

	ResolveRoute(ctx context.Context, input *ResolveRouteInput) (*ResolveRouteOutput, error)

	// Close ends every open search session
	Close()
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Store          *store.Store
	IDGenerator    idgen.Generator
	Clock          clock.Clock
	SearchDebounce time.Duration
	PageSize       int
	SessionTTL     time.Duration
	MaxSessions    int
	Logger         *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SearchDebounce < 0 {
		vb.Field("SearchDebounce", "cannot be negative")
	}
	if c.PageSize < 0 || c.PageSize > pagination.MaxLimit {
		vb.Fieldf("PageSize", "must be between 1 and %d", pagination.MaxLimit)
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "cannot be negative")
	}
	if c.MaxSessions < 0 {
		vb.Field("MaxSessions", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	store       *store.Store
	idGen       idgen.Generator
	clock       clock.Clock
	debounce    time.Duration
	pageSize    int
	sessionTTL  time.Duration
	maxSessions int
	logger      *slog.Logger

	mu        sync.Mutex
	sessions  map[string]*sessionEntry
	accessSeq uint64
}

// sessionEntry tracks one registered session. seq orders entries by last
// access for eviction when the registry is full.
type sessionEntry struct {
	session    *search.Session
	lastAccess time.Time
	seq        uint64
	expiry     clock.Timer
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = pagination.DefaultLimit
	}
	sessionTTL := cfg.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = DefaultSessionTTL
	}
	maxSessions := cfg.MaxSessions
	if maxSessions == 0 {
		maxSessions = DefaultMaxSessions
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		store:       cfg.Store,
		idGen:       cfg.IDGenerator,
		clock:       c,
		debounce:    cfg.SearchDebounce,
		pageSize:    pageSize,
		sessionTTL:  sessionTTL,
		maxSessions: maxSessions,
		logger:      logger,
		sessions:    make(map[string]*sessionEntry),
	}, nil
}

// readyState returns the store state, or Unavailable while a load is in
// flight or after it failed.
func (o *orchestrator) readyState() (store.State, error) {
	state := o.store.State()
	if state.Loading {
		return state, errors.Unavailable(errCatalogLoading)
	}
	if state.HasError() {
		return state, errors.Unavailable(state.Error)
	}
	return state, nil
}

func (o *orchestrator) LoadCatalog(ctx context.Context, _ *LoadCatalogInput) (*LoadCatalogOutput, error) {
	if err := o.store.Load(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	state := o.store.State()
	return &LoadCatalogOutput{
		Characters: len(state.Characters),
		Spells:     len(state.Spells),
	}, nil
}

func (o *orchestrator) GetStatus(_ context.Context, _ *GetStatusInput) (*GetStatusOutput, error) {
	state := o.store.State()

	o.mu.Lock()
	sessions := len(o.sessions)
	o.mu.Unlock()

	return &GetStatusOutput{
		Loading:        state.Loading,
		Error:          state.Error,
		Characters:     len(state.Characters),
		Spells:         len(state.Spells),
		Favorites:      len(state.Favorites),
		SearchSessions: sessions,
	}, nil
}

func (o *orchestrator) GetStats(_ context.Context, _ *GetStatsInput) (*GetStatsOutput, error) {
	state, err := o.readyState()
	if err != nil {
		return nil, err
	}
	return &GetStatsOutput{Stats: views.ComputeStats(state)}, nil
}

func (o *orchestrator) ListCharacters(_ context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.readyState()
	if err != nil {
		return nil, err
	}

	characters := state.Characters
	fields := views.AllCharactersFields
	switch input.Role {
	case "", RoleAll:
	case RoleStudents:
		characters = views.Students(characters)
		fields = views.RoleListFields
	case RoleStaff:
		characters = views.Staff(characters)
		fields = views.RoleListFields
	default:
		return nil, errors.InvalidArgumentf("unknown role %q", input.Role)
	}

	filtered := views.FilterCharacters(characters, input.Query, fields)

	// The staff roster is short and always shown whole.
	if input.Role == RoleStaff {
		return &ListCharactersOutput{
			Characters: filtered,
			Pagination: wholeList(len(filtered)),
		}, nil
	}

	limit := input.Page.Limit
	if limit == 0 {
		limit = o.pageSize
	}
	params := pagination.NewParams(input.Page.Page, limit)
	meta := pagination.NewMeta(params, len(filtered))

	return &ListCharactersOutput{
		Characters: pagination.Slice(filtered, params),
		Pagination: meta,
		Pages:      pagination.PageNumbers(params.Page, meta.TotalPages),
	}, nil
}

func wholeList(total int) pagination.Meta {
	meta := pagination.Meta{Page: 1, Limit: total, Total: total}
	if total > 0 {
		meta.TotalPages = 1
		meta.From = 1
		meta.To = total
	}
	return meta
}

func (o *orchestrator) GetCharacter(_ context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.Slug == "" {
		return nil, errors.InvalidArgument("slug is required")
	}

	state, err := o.readyState()
	if err != nil {
		return nil, err
	}

	character, ok := router.ResolveCharacter(state.Characters, input.Slug)
	if !ok {
		return nil, errors.NotFoundf("character %q not found", input.Slug).
			WithMeta("slug", input.Slug)
	}

	return &GetCharacterOutput{
		Character:  character,
		IsFavorite: state.IsFavorite(character.ID),
	}, nil
}

func (o *orchestrator) ListSpells(_ context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	if input == nil {
		input = &ListSpellsInput{}
	}

	state, err := o.readyState()
	if err != nil {
		return nil, err
	}

	return &ListSpellsOutput{Spells: views.FilterSpells(state.Spells, input.Query)}, nil
}

func (o *orchestrator) ListFavorites(_ context.Context, _ *ListFavoritesInput) (*ListFavoritesOutput, error) {
	state, err := o.readyState()
	if err != nil {
		return nil, err
	}

	return &ListFavoritesOutput{
		Characters: views.Favorites(state.Characters, state.Favorites),
		IDs:        state.FavoriteIDs(),
	}, nil
}

func (o *orchestrator) AddFavorite(ctx context.Context, input *AddFavoriteInput) (*AddFavoriteOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character id is required")
	}

	added := o.store.AddFavorite(input.CharacterID)
	o.logger.DebugContext(ctx, "favorite added",
		"character_id", input.CharacterID,
		"changed", added)

	return &AddFavoriteOutput{Added: added}, nil
}

func (o *orchestrator) RemoveFavorite(ctx context.Context, input *RemoveFavoriteInput) (*RemoveFavoriteOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character id is required")
	}

	removed := o.store.RemoveFavorite(input.CharacterID)
	o.logger.DebugContext(ctx, "favorite removed",
		"character_id", input.CharacterID,
		"changed", removed)

	return &RemoveFavoriteOutput{Removed: removed}, nil
}

func (o *orchestrator) GetHousePreference(_ context.Context, _ *GetHousePreferenceInput) (*GetHousePreferenceOutput, error) {
	return &GetHousePreferenceOutput{House: o.store.State().SelectedHouse}, nil
}

func (o *orchestrator) SetHousePreference(_ context.Context, input *SetHousePreferenceInput) (*SetHousePreferenceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.store.SetSelectedHouse(input.House); err != nil {
		return nil, err
	}
	return &SetHousePreferenceOutput{House: input.House}, nil
}

func (o *orchestrator) Search(_ context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.readyState()
	if err != nil {
		return nil, err
	}

	return &SearchOutput{
		Results: search.Search(state.Characters, state.Spells, input.Query, input.Filters),
	}, nil
}

func (o *orchestrator) CreateSearchSession(ctx context.Context, input *CreateSearchSessionInput) (*CreateSearchSessionOutput, error) {
	if input == nil {
		input = &CreateSearchSessionInput{}
	}

	session, err := search.NewSession(&search.SessionConfig{
		Source:   o.store,
		Clock:    o.clock,
		Debounce: o.debounce,
		Filters:  input.Filters,
		Logger:   o.logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search session")
	}

	id := o.idGen.Generate()
	entry := &sessionEntry{session: session}

	o.mu.Lock()
	var evicted []*sessionEntry
	for len(o.sessions) >= o.maxSessions {
		oldestID, oldest := o.leastRecentLocked()
		delete(o.sessions, oldestID)
		oldest.expiry.Stop()
		evicted = append(evicted, oldest)
	}
	o.sessions[id] = entry
	o.touchLocked(id, entry)
	o.mu.Unlock()

	for _, e := range evicted {
		e.session.Close()
	}
	if len(evicted) > 0 {
		o.logger.WarnContext(ctx, "search session registry full, evicted least recently used",
			"evicted", len(evicted),
			"max_sessions", o.maxSessions)
	}

	o.logger.DebugContext(ctx, "search session created", "session_id", id)

	return &CreateSearchSessionOutput{
		SessionID: id,
		State:     session.State(),
	}, nil
}

func (o *orchestrator) session(id string) (*search.Session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session id is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	entry, ok := o.sessions[id]
	if !ok {
		return nil, errors.NotFoundf("search session %q not found", id).
			WithMeta("session_id", id)
	}
	o.touchLocked(id, entry)
	return entry.session, nil
}

// touchLocked marks entry as used now and pushes its idle expiry back
func (o *orchestrator) touchLocked(id string, entry *sessionEntry) {
	o.accessSeq++
	entry.seq = o.accessSeq
	entry.lastAccess = o.clock.Now()
	if entry.expiry != nil {
		entry.expiry.Stop()
	}
	entry.expiry = o.clock.AfterFunc(o.sessionTTL, func() {
		o.expire(id, entry)
	})
}

func (o *orchestrator) leastRecentLocked() (string, *sessionEntry) {
	var oldestID string
	var oldest *sessionEntry
	for id, entry := range o.sessions {
		if oldest == nil || entry.seq < oldest.seq {
			oldestID, oldest = id, entry
		}
	}
	return oldestID, oldest
}

// expire drops an idle session. A touch that raced the timer keeps it alive.
func (o *orchestrator) expire(id string, entry *sessionEntry) {
	o.mu.Lock()
	current, ok := o.sessions[id]
	if !ok || current != entry || o.clock.Now().Sub(entry.lastAccess) < o.sessionTTL {
		o.mu.Unlock()
		return
	}
	delete(o.sessions, id)
	o.mu.Unlock()

	entry.session.Close()
	o.logger.Debug("search session expired", "session_id", id)
}

func (o *orchestrator) GetSearchSession(_ context.Context, input *GetSearchSessionInput) (*GetSearchSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.session(input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetSearchSessionOutput{State: session.State()}, nil
}

func (o *orchestrator) UpdateSearchSession(_ context.Context, input *UpdateSearchSessionInput) (*UpdateSearchSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.Filters.Type != nil {
		if _, err := search.ParseEntityType(string(*input.Filters.Type)); err != nil {
			return nil, err
		}
	}

	if input.Filters.Type != nil || input.Filters.House != nil || input.Filters.Species != nil {
		session.SetFilters(input.Filters)
	}
	if input.Query != nil {
		session.SetQuery(*input.Query)
	}

	return &UpdateSearchSessionOutput{State: session.State()}, nil
}

func (o *orchestrator) ClearSearchSession(_ context.Context, input *ClearSearchSessionInput) (*ClearSearchSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	session.Clear()
	return &ClearSearchSessionOutput{State: session.State()}, nil
}

func (o *orchestrator) DeleteSearchSession(ctx context.Context, input *DeleteSearchSessionInput) (*DeleteSearchSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session id is required")
	}

	o.mu.Lock()
	entry, ok := o.sessions[input.SessionID]
	if ok {
		delete(o.sessions, input.SessionID)
		entry.expiry.Stop()
	}
	o.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("search session %q not found", input.SessionID).
			WithMeta("session_id", input.SessionID)
	}

	entry.session.Close()
	o.logger.DebugContext(ctx, "search session closed", "session_id", input.SessionID)

	return &DeleteSearchSessionOutput{}, nil
}

func (o *orchestrator) Close() {
	o.mu.Lock()
	entries := make([]*sessionEntry, 0, len(o.sessions))
	for id, entry := range o.sessions {
		entry.expiry.Stop()
		entries = append(entries, entry)
		delete(o.sessions, id)
	}
	o.mu.Unlock()

	for _, entry := range entries {
		entry.session.Close()
	}
	if len(entries) > 0 {
		o.logger.Info("search sessions closed", "count", len(entries))
	}
}

func (o *orchestrator) ResolveRoute(_ context.Context, input *ResolveRouteInput) (*ResolveRouteOutput, error) {
	if input == nil {
		input = &ResolveRouteInput{}
	}

	route := router.Parse(input.Fragment)
	if route.View != router.ViewCharacterDetail {
		return &ResolveRouteOutput{Route: route}, nil
	}

	state, err := o.readyState()
	if err != nil {
		return nil, err
	}

	character, found := router.ResolveCharacter(state.Characters, route.Slug)
	return &ResolveRouteOutput{
		Route:     route,
		Character: character,
		Found:     found,
	}, nil
}
