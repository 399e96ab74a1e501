package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
)

const providerCharacter = `{
	"id": "9e3f7ce4-b9a7-4244-b709-dae5c1f1d4a8",
	"name": "Harry Potter",
	"alternate_names": ["The Boy Who Lived", "The Chosen One"],
	"species": "human",
	"gender": "male",
	"house": "Gryffindor",
	"dateOfBirth": "31-07-1980",
	"yearOfBirth": 1980,
	"wizard": true,
	"ancestry": "half-blood",
	"eyeColour": "green",
	"hairColour": "black",
	"wand": {"wood": "holly", "core": "phoenix tail feather", "length": 11},
	"patronus": "stag",
	"hogwartsStudent": true,
	"hogwartsStaff": false,
	"actor": "Daniel Radcliffe",
	"alternate_actors": [],
	"alive": true,
	"image": "https://ik.imagekit.io/hpapi/harry.jpg"
}`

func TestCharacter_DecodesProviderShape(t *testing.T) {
	var c entities.Character
	require.NoError(t, json.Unmarshal([]byte(providerCharacter), &c))

	assert.Equal(t, "Harry Potter", c.Name)
	assert.Equal(t, []string{"The Boy Who Lived", "The Chosen One"}, c.AlternateNames)
	require.NotNil(t, c.DateOfBirth)
	assert.Equal(t, "31-07-1980", *c.DateOfBirth)
	require.NotNil(t, c.YearOfBirth)
	assert.Equal(t, 1980, *c.YearOfBirth)
	require.NotNil(t, c.Wand.Length)
	assert.Equal(t, 11.0, *c.Wand.Length)
	assert.Equal(t, "Daniel Radcliffe", c.Actor)
	assert.True(t, c.IsStudentOnly())
	assert.False(t, c.IsStaffOnly())
}

func TestCharacter_NullsStayDistinctFromEmpty(t *testing.T) {
	var c entities.Character
	raw := `{"id":"x","name":"Mrs Norris","house":"","dateOfBirth":null,"yearOfBirth":null,"wand":{"wood":"","core":"","length":null}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Nil(t, c.DateOfBirth)
	assert.Nil(t, c.YearOfBirth)
	assert.Nil(t, c.Wand.Length)
	assert.Equal(t, "", c.House)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"dateOfBirth":null`)
	assert.Contains(t, string(out), `"house":""`)
}

func TestCharacter_RoleFlagsAreIndependent(t *testing.T) {
	both := entities.Character{HogwartsStudent: true, HogwartsStaff: true}
	neither := entities.Character{}
	staff := entities.Character{HogwartsStaff: true}

	assert.False(t, both.IsStudentOnly())
	assert.False(t, both.IsStaffOnly())
	assert.False(t, neither.IsStudentOnly())
	assert.False(t, neither.IsStaffOnly())
	assert.True(t, staff.IsStaffOnly())
}

func TestWand_LengthForms(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected *float64
		wantErr  bool
	}{
		{name: "number", raw: `{"wood":"vine","core":"dragon heartstring","length":10.75}`, expected: ptr(10.75)},
		{name: "null", raw: `{"wood":"","core":"","length":null}`},
		{name: "empty string", raw: `{"wood":"","core":"","length":""}`},
		{name: "missing", raw: `{"wood":"","core":""}`},
		{name: "garbage", raw: `{"length":"long"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var w entities.Wand
			err := json.Unmarshal([]byte(tc.raw), &w)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, w.Length)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
