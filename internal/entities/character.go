package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Character is one entry of the provider's character collection.
//
// Free-text classification fields use "" for unknown. DateOfBirth,
// YearOfBirth and Wand.Length are nullable upstream and stay pointers so a
// missing value is never confused with an empty or zero one.
type Character struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	AlternateNames  []string `json:"alternate_names"`
	Species         string   `json:"species"`
	Gender          string   `json:"gender"`
	House           string   `json:"house"`
	DateOfBirth     *string  `json:"dateOfBirth"`
	YearOfBirth     *int     `json:"yearOfBirth"`
	Wizard          bool     `json:"wizard"`
	Ancestry        string   `json:"ancestry"`
	EyeColour       string   `json:"eyeColour"`
	HairColour      string   `json:"hairColour"`
	Wand            Wand     `json:"wand"`
	Patronus        string   `json:"patronus"`
	HogwartsStudent bool     `json:"hogwartsStudent"`
	HogwartsStaff   bool     `json:"hogwartsStaff"`
	Actor           string   `json:"actor"`
	AlternateActors []string `json:"alternate_actors"`
	Alive           bool     `json:"alive"`
	Image           string   `json:"image"`
}

// Wand describes a character's wand
type Wand struct {
	Wood   string   `json:"wood"`
	Core   string   `json:"core"`
	Length *float64 `json:"length"`
}

// UnmarshalJSON accepts a numeric, null or empty-string length. The provider
// sends "" for wands of unknown length.
func (w *Wand) UnmarshalJSON(data []byte) error {
	var raw struct {
		Wood   string          `json:"wood"`
		Core   string          `json:"core"`
		Length json.RawMessage `json:"length"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	w.Wood = raw.Wood
	w.Core = raw.Core
	w.Length = nil

	trimmed := bytes.TrimSpace(raw.Length)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return nil
	}

	var length float64
	if err := json.Unmarshal(trimmed, &length); err != nil {
		return fmt.Errorf("wand length: %w", err)
	}
	w.Length = &length
	return nil
}

// IsStudentOnly reports a Hogwarts student who is not also on staff
func (c *Character) IsStudentOnly() bool {
	return c.HogwartsStudent && !c.HogwartsStaff
}

// IsStaffOnly reports a Hogwarts staff member who is not also a student
func (c *Character) IsStaffOnly() bool {
	return c.HogwartsStaff && !c.HogwartsStudent
}
