package client

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
)

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [slug]",
	Short: "Show a single character",
	Long:  `Show a character by its name slug, for example harry-potter.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGetCharacter,
}

type characterDetail struct {
	Character  *entities.Character `json:"character"`
	IsFavorite bool                `json:"is_favorite"`
	Href       string              `json:"href"`
}

func runGetCharacter(_ *cobra.Command, args []string) error {
	client, ctx, cancel := createClient()
	defer cancel()

	log.Printf("Requesting character %s from %s...", args[0], serverAddr)

	var detail characterDetail
	if err := client.do(ctx, "GET", "/api/v1/characters/"+url.PathEscape(args[0]), nil, &detail, nil); err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}
	if detail.Character == nil {
		return fmt.Errorf("server returned no character for %s", args[0])
	}

	c := detail.Character
	fmt.Printf("\n=== %s ===\n", c.Name)
	if len(c.AlternateNames) > 0 {
		fmt.Printf("Also known as: %s\n", strings.Join(c.AlternateNames, ", "))
	}
	printField("House", c.House)
	printField("Species", c.Species)
	printField("Ancestry", c.Ancestry)
	printField("Patronus", c.Patronus)
	printField("Actor", c.Actor)
	if c.YearOfBirth != nil {
		fmt.Printf("Born: %d\n", *c.YearOfBirth)
	}
	if c.Wand.Wood != "" || c.Wand.Core != "" {
		fmt.Printf("Wand: %s, %s", c.Wand.Wood, c.Wand.Core)
		if c.Wand.Length != nil {
			fmt.Printf(", %.2f\"", *c.Wand.Length)
		}
		fmt.Println()
	}
	fmt.Printf("Favorite: %t\n", detail.IsFavorite)
	fmt.Printf("Link: %s\n", detail.Href)

	return nil
}

func printField(label, value string) {
	if value != "" {
		fmt.Printf("%s: %s\n", label, value)
	}
}
