// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	externalmock "github.com/KirkDiggler/wizarding-catalog/internal/clients/external/mock"
	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
)

// ExpectCatalogLoad sets up one successful fetch of each collection
func ExpectCatalogLoad(mockClient *externalmock.MockClient, characters []entities.Character, spells []entities.Spell) {
	mockClient.EXPECT().
		ListCharacters(gomock.Any()).
		Return(characters, nil).
		Times(1)

	mockClient.EXPECT().
		ListSpells(gomock.Any()).
		Return(spells, nil).
		Times(1)
}

// ExpectCatalogLoadFailure makes the character fetch fail while spells succeed
func ExpectCatalogLoadFailure(mockClient *externalmock.MockClient, err error) {
	mockClient.EXPECT().
		ListCharacters(gomock.Any()).
		Return(nil, err).
		Times(1)

	mockClient.EXPECT().
		ListSpells(gomock.Any()).
		Return([]entities.Spell{}, nil).
		MaxTimes(1)
}
