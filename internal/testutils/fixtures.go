package testutils

import (
	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
)

// Fixture ids match the provider's uuid-style ids
const (
	HarryPotterID       = "9e3f7ce4-b9a7-4244-b709-dae5c1f1d4a8"
	HermioneGrangerID   = "4c7e6819-a91a-45b2-a454-f931e4a7cce3"
	MinervaMcGonagallID = "14e3a1ae-4c4e-4aed-9e53-1b1ab0fe0e5d"
	SeverusSnapeID      = "861c4cde-2f0f-4796-8d8b-8e8ac5d5ed0f"
	LumosID             = "2af1a2e8-8b2a-4bd6-9a5e-0a7b0c3d2e11"
	ExpelliarmusID      = "c8b2b6e2-7a3b-4c89-a1f7-0a4f1f7d9e02"
	WingardiumID        = "f6a1c5c2-96a4-4b79-a3b1-4e8f0a7e1d33"
)

func ptr[T any](v T) *T {
	return &v
}

// HarryPotter returns a student-only Gryffindor fixture
func HarryPotter() entities.Character {
	return entities.Character{
		ID:              HarryPotterID,
		Name:            "Harry Potter",
		AlternateNames:  []string{"The Boy Who Lived", "The Chosen One"},
		Species:         "human",
		Gender:          "male",
		House:           "Gryffindor",
		DateOfBirth:     ptr("31-07-1980"),
		YearOfBirth:     ptr(1980),
		Wizard:          true,
		Ancestry:        "half-blood",
		EyeColour:       "green",
		HairColour:      "black",
		Wand:            entities.Wand{Wood: "holly", Core: "phoenix tail feather", Length: ptr(11.0)},
		Patronus:        "stag",
		HogwartsStudent: true,
		Actor:           "Daniel Radcliffe",
		AlternateActors: []string{},
		Alive:           true,
		Image:           "https://ik.imagekit.io/hpapi/harry.jpg",
	}
}

// HermioneGranger returns a student-only Gryffindor fixture
func HermioneGranger() entities.Character {
	return entities.Character{
		ID:              HermioneGrangerID,
		Name:            "Hermione Granger",
		AlternateNames:  []string{},
		Species:         "human",
		Gender:          "female",
		House:           "Gryffindor",
		DateOfBirth:     ptr("19-09-1979"),
		YearOfBirth:     ptr(1979),
		Wizard:          true,
		Ancestry:        "muggleborn",
		EyeColour:       "brown",
		HairColour:      "brown",
		Wand:            entities.Wand{Wood: "vine", Core: "dragon heartstring", Length: ptr(10.75)},
		Patronus:        "otter",
		HogwartsStudent: true,
		Actor:           "Emma Watson",
		AlternateActors: []string{},
		Alive:           true,
		Image:           "https://ik.imagekit.io/hpapi/hermione.jpeg",
	}
}

// MinervaMcGonagall returns a staff-only fixture
func MinervaMcGonagall() entities.Character {
	return entities.Character{
		ID:              MinervaMcGonagallID,
		Name:            "Minerva McGonagall",
		AlternateNames:  []string{},
		Species:         "human",
		Gender:          "female",
		House:           "Gryffindor",
		DateOfBirth:     ptr("04-10-1925"),
		YearOfBirth:     ptr(1925),
		Wizard:          true,
		Ancestry:        "half-blood",
		EyeColour:       "",
		HairColour:      "black",
		Wand:            entities.Wand{Wood: "fir", Core: "dragon heartstring", Length: ptr(9.5)},
		Patronus:        "tabby cat",
		HogwartsStaff:   true,
		Actor:           "Dame Maggie Smith",
		AlternateActors: []string{},
		Alive:           true,
	}
}

// SeverusSnape returns a staff-only Slytherin fixture with unknown wand length
func SeverusSnape() entities.Character {
	return entities.Character{
		ID:              SeverusSnapeID,
		Name:            "Severus Snape",
		AlternateNames:  []string{"Half-Blood Prince"},
		Species:         "human",
		Gender:          "male",
		House:           "Slytherin",
		DateOfBirth:     ptr("09-01-1960"),
		YearOfBirth:     ptr(1960),
		Wizard:          true,
		Ancestry:        "half-blood",
		EyeColour:       "black",
		HairColour:      "black",
		Wand:            entities.Wand{},
		Patronus:        "doe",
		HogwartsStaff:   true,
		Actor:           "Alan Rickman",
		AlternateActors: []string{},
		Alive:           false,
	}
}

// Lumos returns the wand-lighting spell fixture
func Lumos() entities.Spell {
	return entities.Spell{ID: LumosID, Name: "Lumos", Description: "Creates light at the wand tip"}
}

// Expelliarmus returns the disarming spell fixture
func Expelliarmus() entities.Spell {
	return entities.Spell{ID: ExpelliarmusID, Name: "Expelliarmus", Description: "The Disarming Charm"}
}

// WingardiumLeviosa returns the levitation spell fixture
func WingardiumLeviosa() entities.Spell {
	return entities.Spell{ID: WingardiumID, Name: "Wingardium Leviosa", Description: "levitates objects with a wand"}
}

// Students returns the two student fixtures in load order
func Students() []entities.Character {
	return []entities.Character{HarryPotter(), HermioneGranger()}
}

// AllCharacters returns every character fixture in load order
func AllCharacters() []entities.Character {
	return []entities.Character{HarryPotter(), HermioneGranger(), MinervaMcGonagall(), SeverusSnape()}
}

// AllSpells returns every spell fixture in load order
func AllSpells() []entities.Spell {
	return []entities.Spell{Lumos(), Expelliarmus(), WingardiumLeviosa()}
}
