package client

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage favorite characters",
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add [id]",
	Short: "Mark a character as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runToggleFavorite(http.MethodPut, args[0])
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a character from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runToggleFavorite(http.MethodDelete, args[0])
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite characters",
	RunE:  runListFavorites,
}

func init() {
	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteRemoveCmd)
	favoriteCmd.AddCommand(favoriteListCmd)
}

type favoriteResult struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
	Changed  bool   `json:"changed"`
}

func runToggleFavorite(method, id string) error {
	client, ctx, cancel := createClient()
	defer cancel()

	var result favoriteResult
	if err := client.do(ctx, method, "/api/v1/favorites/"+url.PathEscape(id), nil, &result, nil); err != nil {
		return fmt.Errorf("failed to update favorite: %w", err)
	}

	if !result.Changed {
		fmt.Printf("%s unchanged (favorite: %t)\n", result.ID, result.Favorite)
		return nil
	}
	fmt.Printf("%s favorite: %t\n", result.ID, result.Favorite)
	return nil
}

func runListFavorites(_ *cobra.Command, _ []string) error {
	client, ctx, cancel := createClient()
	defer cancel()

	log.Printf("Requesting favorites from %s...", serverAddr)

	var characters []entities.Character
	var meta struct {
		IDs []string `json:"ids"`
	}
	if err := client.do(ctx, http.MethodGet, "/api/v1/favorites", nil, &characters, &meta); err != nil {
		return fmt.Errorf("failed to list favorites: %w", err)
	}

	fmt.Printf("\n%d favorites (%d ids stored):\n\n", len(characters), len(meta.IDs))
	for i, c := range characters {
		fmt.Printf("%d. %s (%s)\n", i+1, c.Name, c.ID)
	}

	return nil
}
