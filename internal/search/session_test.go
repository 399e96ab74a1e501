package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	externalmock "github.com/KirkDiggler/wizarding-catalog/internal/clients/external/mock"
	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/clock"
	"github.com/KirkDiggler/wizarding-catalog/internal/search"
	"github.com/KirkDiggler/wizarding-catalog/internal/store"
	"github.com/KirkDiggler/wizarding-catalog/internal/testutils"
)

type SessionTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	clock   *clock.Fake
	store   *store.Store
	session *search.Session
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewFake(time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC))

	st, err := store.New(&store.Config{Client: externalmock.NewMockClient(s.ctrl)})
	s.Require().NoError(err)
	s.store = st

	session, err := search.NewSession(&search.SessionConfig{Source: s.store, Clock: s.clock})
	s.Require().NoError(err)
	s.session = session
}

func (s *SessionTestSuite) TearDownTest() {
	s.session.Close()
	s.ctrl.Finish()
}

func (s *SessionTestSuite) loadFixtures() {
	s.store.Dispatch(store.LoadSucceeded{
		Characters: testutils.Students(),
		Spells:     []entities.Spell{testutils.Lumos()},
	})
}

func (s *SessionTestSuite) TestConfigValidation() {
	_, err := search.NewSession(&search.SessionConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = search.NewSession(&search.SessionConfig{Source: s.store, Debounce: -time.Second})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestInitialState() {
	state := s.session.State()
	s.Empty(state.Query)
	s.Equal(search.TypeAll, state.Filters.Type)
	s.False(state.IsSearching)
	s.NotNil(state.Results.Characters)
	s.NotNil(state.Results.Spells)
}

func (s *SessionTestSuite) TestQueryIsDebounced() {
	s.loadFixtures()

	s.session.SetQuery("har")
	state := s.session.State()
	s.True(state.IsSearching)
	s.Empty(state.Results.Characters)

	s.clock.Advance(299 * time.Millisecond)
	s.True(s.session.State().IsSearching)
	s.Empty(s.session.State().Results.Characters)

	s.clock.Advance(time.Millisecond)
	state = s.session.State()
	s.False(state.IsSearching)
	s.Equal("har", state.Query)
	s.Equal([]string{"Harry Potter"}, names(state.Results.Characters))
	s.Empty(state.Results.Spells)
}

func (s *SessionTestSuite) TestOnlyLastKeystrokeCommits() {
	s.loadFixtures()

	s.session.SetQuery("h")
	s.clock.Advance(100 * time.Millisecond)
	s.session.SetQuery("he")
	s.clock.Advance(100 * time.Millisecond)
	s.session.SetQuery("her")

	s.clock.Advance(299 * time.Millisecond)
	pending := s.session.State()
	s.True(pending.IsSearching)
	s.Empty(pending.Results.Characters, "superseded keystrokes produce no results")

	s.clock.Advance(time.Millisecond)
	state := s.session.State()
	s.Equal([]string{"Hermione Granger"}, names(state.Results.Characters))
	s.Equal(0, s.clock.Pending())
}

func (s *SessionTestSuite) TestFilterChangeIsImmediate() {
	s.loadFixtures()

	s.session.SetQuery("o")
	s.clock.Advance(search.DefaultDebounce)
	s.NotEmpty(s.session.State().Results.Spells)

	spellsOnly := search.TypeSpells
	s.session.SetFilters(search.FilterPatch{Type: &spellsOnly})

	state := s.session.State()
	s.Equal(search.TypeSpells, state.Filters.Type)
	s.Empty(state.Results.Characters)
	s.Equal([]string{"Lumos"}, spellNames(state.Results.Spells))
}

func (s *SessionTestSuite) TestFilterChangeUsesSettledQuery() {
	s.loadFixtures()

	s.session.SetQuery("harry")
	s.clock.Advance(search.DefaultDebounce)

	s.session.SetQuery("hermione")
	characters := search.TypeCharacters
	s.session.SetFilters(search.FilterPatch{Type: &characters})

	state := s.session.State()
	s.Equal([]string{"Harry Potter"}, names(state.Results.Characters))
	s.True(state.IsSearching, "query change is still pending")

	s.clock.Advance(search.DefaultDebounce)
	s.Equal([]string{"Hermione Granger"}, names(s.session.State().Results.Characters))
}

func (s *SessionTestSuite) TestPartialFilterPatchKeepsOtherFields() {
	house := "Gryffindor"
	s.session.SetFilters(search.FilterPatch{House: &house})
	species := "human"
	s.session.SetFilters(search.FilterPatch{Species: &species})

	filters := s.session.State().Filters
	s.Equal(search.TypeAll, filters.Type)
	s.Equal("Gryffindor", filters.House)
	s.Equal("human", filters.Species)
}

func (s *SessionTestSuite) TestSkipsWhileSourceEmptyAndCatchesUp() {
	s.session.SetQuery("lumos")
	s.clock.Advance(search.DefaultDebounce)

	state := s.session.State()
	s.False(state.IsSearching)
	s.Empty(state.Results.Spells)

	s.loadFixtures()

	s.Equal([]string{"Lumos"}, spellNames(s.session.State().Results.Spells))
}

func (s *SessionTestSuite) TestClear() {
	s.loadFixtures()
	s.session.SetQuery("har")
	s.clock.Advance(search.DefaultDebounce)

	characters := search.TypeCharacters
	s.session.SetFilters(search.FilterPatch{Type: &characters})
	s.session.SetQuery("herm")
	s.session.Clear()

	s.clock.Advance(time.Second)

	state := s.session.State()
	s.Empty(state.Query)
	s.Empty(state.Results.Characters)
	s.False(state.IsSearching)
	s.Equal(search.TypeCharacters, state.Filters.Type)
}

func (s *SessionTestSuite) TestCloseDetaches() {
	s.session.SetQuery("har")
	s.session.Close()
	s.session.Close()

	s.Equal(0, s.clock.Pending())
	s.loadFixtures()
	s.Empty(s.session.State().Results.Characters)
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
