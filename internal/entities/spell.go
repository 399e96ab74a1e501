package entities

// Spell is one entry of the provider's spell collection
type Spell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
