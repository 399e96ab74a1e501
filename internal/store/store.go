package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/wizarding-catalog/internal/clients/external"
	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
)

// Listener is called with the new state after every change
type Listener func(State)

// Config configures a Store
type Config struct {
	Client external.Client
	Logger *slog.Logger
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("client")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// Store is the process-wide catalog state container. Dispatches are
// serialized; listeners run after the state lock is released, in
// subscription order, and must not dispatch.
type Store struct {
	client external.Client
	logger *slog.Logger

	mu        sync.RWMutex
	state     State
	listeners []subscription
	nextSubID int

	// dispatchMu keeps listener notification in dispatch order
	dispatchMu sync.Mutex

	loadOnce sync.Once
	loadErr  error
}

type subscription struct {
	id       int
	listener Listener
}

// New creates a store in its initial state. Nothing is fetched until Load.
func New(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Store{
		client: cfg.Client,
		logger: cfg.Logger,
		state:  InitialState(),
	}, nil
}

// State returns the current snapshot
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action and notifies listeners when the state changed
func (s *Store) Dispatch(action Action) bool {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next, changed := Reduce(s.state, action)
	if !changed {
		s.mu.Unlock()
		return false
	}
	s.state = next
	listeners := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		listeners[i] = sub.listener
	}
	s.mu.Unlock()

	s.logger.Debug("store action applied", "action", action.actionName())

	for _, l := range listeners {
		l(next)
	}
	return true
}

// Subscribe registers l for state changes and returns its unsubscribe func
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, listener: l})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// SubscriberCount reports how many listeners are registered
func (s *Store) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Load runs the load sequence: both collections are fetched concurrently and
// published only if both succeed. It runs once per store; later calls return
// the first call's result without fetching.
func (s *Store) Load(ctx context.Context) error {
	s.loadOnce.Do(func() {
		s.loadErr = s.load(ctx)
	})
	return s.loadErr
}

func (s *Store) load(ctx context.Context) error {
	s.Dispatch(BeginLoad{})
	defer s.Dispatch(LoadFinished{})

	var (
		characters []entities.Character
		spells     []entities.Spell
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		characters, err = s.client.ListCharacters(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		spells, err = s.client.ListSpells(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "catalog load failed", "error", err)
		s.Dispatch(LoadFailed{Message: errors.GetMessage(err)})
		return err
	}

	s.logger.InfoContext(ctx, "catalog loaded",
		"characters", len(characters),
		"spells", len(spells))
	s.Dispatch(LoadSucceeded{Characters: characters, Spells: spells})
	return nil
}

// AddFavorite adds id to favorites. It reports false if already present.
func (s *Store) AddFavorite(id string) bool {
	return s.Dispatch(AddFavorite{ID: id})
}

// RemoveFavorite removes id from favorites. It reports false if absent.
func (s *Store) RemoveFavorite(id string) bool {
	return s.Dispatch(RemoveFavorite{ID: id})
}

// LoadFavorites replaces the favorites set
func (s *Store) LoadFavorites(ids []string) {
	s.Dispatch(LoadFavorites{IDs: ids})
}

// IsFavorite reports whether id is a favorite
func (s *Store) IsFavorite(id string) bool {
	return s.State().IsFavorite(id)
}

// SetSelectedHouse stores the house preference; empty clears it
func (s *Store) SetSelectedHouse(house string) error {
	if house != "" && !slices.Contains(Houses, house) {
		return errors.InvalidArgumentf("unknown house %q", house).
			WithMeta("allowed", Houses)
	}
	s.Dispatch(SetSelectedHouse{House: house})
	return nil
}
