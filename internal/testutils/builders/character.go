// Package builders provides fluent builders for test entities
package builders

import (
	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
)

// CharacterBuilder builds characters for tests
type CharacterBuilder struct {
	character entities.Character
}

// Character starts a builder with empty-but-valid defaults
func Character() *CharacterBuilder {
	return &CharacterBuilder{
		character: entities.Character{
			ID:              "char-test-001",
			Name:            "Test Wizard",
			AlternateNames:  []string{},
			Species:         "human",
			Wizard:          true,
			AlternateActors: []string{},
			Alive:           true,
		},
	}
}

// WithID sets the id
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithAlternateNames sets the alternate names
func (b *CharacterBuilder) WithAlternateNames(names ...string) *CharacterBuilder {
	b.character.AlternateNames = names
	return b
}

// WithHouse sets the house
func (b *CharacterBuilder) WithHouse(house string) *CharacterBuilder {
	b.character.House = house
	return b
}

// WithSpecies sets the species
func (b *CharacterBuilder) WithSpecies(species string) *CharacterBuilder {
	b.character.Species = species
	return b
}

// WithActor sets the actor
func (b *CharacterBuilder) WithActor(actor string) *CharacterBuilder {
	b.character.Actor = actor
	return b
}

// AsStudent marks the character as a Hogwarts student
func (b *CharacterBuilder) AsStudent() *CharacterBuilder {
	b.character.HogwartsStudent = true
	return b
}

// AsStaff marks the character as Hogwarts staff
func (b *CharacterBuilder) AsStaff() *CharacterBuilder {
	b.character.HogwartsStaff = true
	return b
}

// WithYearOfBirth sets the nullable birth year
func (b *CharacterBuilder) WithYearOfBirth(year int) *CharacterBuilder {
	b.character.YearOfBirth = &year
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() entities.Character {
	return b.character
}
