package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/store"
	"github.com/KirkDiggler/wizarding-catalog/internal/testutils"
	"github.com/KirkDiggler/wizarding-catalog/internal/testutils/builders"
	"github.com/KirkDiggler/wizarding-catalog/internal/views"
)

func names(characters []entities.Character) []string {
	out := make([]string, 0, len(characters))
	for _, c := range characters {
		out = append(out, c.Name)
	}
	return out
}

func rosterWithEdgeCases() []entities.Character {
	return append(testutils.AllCharacters(),
		builders.Character().WithID("both").WithName("Teaching Assistant").AsStudent().AsStaff().Build(),
		builders.Character().WithID("neither").WithName("Mrs Norris").WithSpecies("cat").Build(),
	)
}

func TestStudentsAndStaffExcludeDualRoles(t *testing.T) {
	roster := rosterWithEdgeCases()

	assert.Equal(t, []string{"Harry Potter", "Hermione Granger"}, names(views.Students(roster)))
	assert.Equal(t, []string{"Minerva McGonagall", "Severus Snape"}, names(views.Staff(roster)))
}

func TestFavoritesIgnoresStaleIDs(t *testing.T) {
	favorites := map[string]struct{}{
		testutils.SeverusSnapeID: {},
		testutils.HarryPotterID:  {},
		"stale-id":               {},
	}

	got := views.Favorites(testutils.AllCharacters(), favorites)
	assert.Equal(t, []string{"Harry Potter", "Severus Snape"}, names(got))
	assert.Empty(t, views.Favorites(testutils.AllCharacters(), nil))
}

func TestFilterCharacters(t *testing.T) {
	roster := rosterWithEdgeCases()

	testCases := []struct {
		name     string
		query    string
		fields   []views.CharacterField
		expected []string
	}{
		{name: "empty query keeps all", query: "", fields: views.RoleListFields, expected: names(roster)},
		{name: "name is case insensitive", query: "HERM", fields: views.RoleListFields, expected: []string{"Hermione Granger"}},
		{name: "actor", query: "smith", fields: views.RoleListFields, expected: []string{"Minerva McGonagall"}},
		{name: "species only on all-characters page", query: "cat", fields: views.RoleListFields, expected: []string{}},
		{name: "species", query: "cat", fields: views.AllCharactersFields, expected: []string{"Mrs Norris"}},
		{name: "no accent folding", query: "hérmione", fields: views.AllCharactersFields, expected: []string{}},
		{name: "alternate names are not list fields", query: "chosen", fields: views.AllCharactersFields, expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, names(views.FilterCharacters(roster, tc.query, tc.fields)))
		})
	}
}

func TestFilterSpells(t *testing.T) {
	spells := testutils.AllSpells()

	assert.Len(t, views.FilterSpells(spells, ""), 3)
	assert.Len(t, views.FilterSpells(spells, "WAND"), 2)
	assert.Len(t, views.FilterSpells(spells, "disarming"), 1)
	assert.Empty(t, views.FilterSpells(spells, "avada"))
}

func TestComputeStats(t *testing.T) {
	state := store.InitialState()
	state.Characters = rosterWithEdgeCases()
	state.Spells = testutils.AllSpells()
	state.Favorites = map[string]struct{}{testutils.HarryPotterID: {}, "stale-id": {}}

	assert.Equal(t, views.Stats{
		Characters: 6,
		Students:   2,
		Staff:      2,
		Spells:     3,
		Favorites:  2,
	}, views.ComputeStats(state))
}
