package search

import (
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/clock"
	"github.com/KirkDiggler/wizarding-catalog/internal/store"
)

// DefaultDebounce is the quiet period after the last query change
const DefaultDebounce = 300 * time.Millisecond

// Source provides catalog data and change notifications to a Session
type Source interface {
	State() store.State
	Subscribe(store.Listener) func()
}

// SessionConfig configures a Session
type SessionConfig struct {
	Source   Source
	Clock    clock.Clock
	Debounce time.Duration
	Filters  *Filters
	Logger   *slog.Logger
}

// Validate validates the SessionConfig.
func (cfg *SessionConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Source == nil {
		vb.RequiredField("source")
	}
	if cfg.Debounce < 0 {
		vb.Field("debounce", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// SessionState is a snapshot of one client's search.
// IsSearching is true from the moment a recomputation is scheduled until its
// results are committed.
type SessionState struct {
	Query       string    `json:"query"`
	Filters     Filters   `json:"filters"`
	Results     Results   `json:"results"`
	IsSearching bool      `json:"is_searching"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FilterPatch updates the fields that are set and keeps the rest
type FilterPatch struct {
	Type    *EntityType
	House   *string
	Species *string
}

// Session runs debounced searches for one client against a Source.
//
// Query changes are debounced; only the timer scheduled by the latest
// SetQuery commits results. Filter changes recompute at once using the last
// settled query. Nothing is computed while the source holds no data; the
// session recomputes when data arrives.
type Session struct {
	clock    clock.Clock
	debounce time.Duration
	source   Source
	logger   *slog.Logger

	mu           sync.Mutex
	query        string
	settledQuery string
	filters      Filters
	results      Results
	isSearching  bool
	updatedAt    time.Time
	timer        clock.Timer
	generation   uint64
	closed       bool

	unsubscribe func()
}

// NewSession creates a session subscribed to cfg.Source
func NewSession(cfg *SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	filters := DefaultFilters()
	if cfg.Filters != nil {
		filters = *cfg.Filters
		if filters.Type == "" {
			filters.Type = TypeAll
		}
	}

	s := &Session{
		clock:     cfg.Clock,
		debounce:  cfg.Debounce,
		source:    cfg.Source,
		logger:    cfg.Logger,
		filters:   filters,
		results:   EmptyResults(),
		updatedAt: cfg.Clock.Now(),
	}
	s.unsubscribe = cfg.Source.Subscribe(s.onSourceChange)

	return s, nil
}

// SetQuery records query and schedules a recomputation after the debounce
// window, replacing any pending one.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.query = query
	s.generation++
	gen := s.generation

	if s.timer != nil {
		s.timer.Stop()
	}
	s.isSearching = true
	s.timer = s.clock.AfterFunc(s.debounce, func() {
		s.settle(gen)
	})
}

func (s *Session) settle(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.generation {
		return
	}

	s.timer = nil
	s.settledQuery = s.query
	s.recomputeLocked(s.source.State())
}

// SetFilters merges patch into the filters and recomputes immediately
func (s *Session) SetFilters(patch FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if patch.Type != nil {
		s.filters.Type = *patch.Type
	}
	if patch.House != nil {
		s.filters.House = *patch.House
	}
	if patch.Species != nil {
		s.filters.Species = *patch.Species
	}

	s.recomputeLocked(s.source.State())
}

// Clear resets the query and results, cancels any pending recomputation and
// keeps the filters.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.query = ""
	s.settledQuery = ""
	s.results = EmptyResults()
	s.isSearching = false
	s.updatedAt = s.clock.Now()
}

// State returns the current snapshot
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionState{
		Query:       s.query,
		Filters:     s.filters,
		Results:     s.results,
		IsSearching: s.isSearching,
		UpdatedAt:   s.updatedAt,
	}
}

// Close stops the pending timer and detaches from the source
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.unsubscribe()
}

func (s *Session) onSourceChange(state store.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.recomputeLocked(state)
}

// recomputeLocked commits results for the settled query. s.mu must be held.
func (s *Session) recomputeLocked(state store.State) {
	pending := s.timer != nil

	if !state.HasData() {
		s.isSearching = pending
		return
	}

	if IsBypassed(s.settledQuery, s.filters) {
		s.results = EmptyResults()
	} else {
		s.results = Search(state.Characters, state.Spells, s.settledQuery, s.filters)
	}
	s.isSearching = pending
	s.updatedAt = s.clock.Now()

	s.logger.Debug("search results committed",
		"query", s.settledQuery,
		"type", s.filters.Type,
		"characters", len(s.results.Characters),
		"spells", len(s.results.Spells))
}
