package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
)

var spellQuery string

var listSpellsCmd = &cobra.Command{
	Use:   "list-spells",
	Short: "List spells",
	Long:  `List every spell, optionally filtered by name or description.`,
	RunE:  runListSpells,
}

func init() {
	listSpellsCmd.Flags().StringVarP(&spellQuery, "query", "q", "", "Filter text")
}

func runListSpells(_ *cobra.Command, _ []string) error {
	client, ctx, cancel := createClient()
	defer cancel()

	log.Printf("Requesting spells from %s...", serverAddr)

	var spells []entities.Spell
	if err := client.do(ctx, "GET", "/api/v1/spells", map[string]string{"q": spellQuery}, &spells, nil); err != nil {
		return fmt.Errorf("failed to list spells: %w", err)
	}

	fmt.Printf("\nFound %d spells:\n\n", len(spells))
	for i, s := range spells {
		fmt.Printf("%d. %s\n", i+1, s.Name)
		if s.Description != "" {
			fmt.Printf("   %s\n", s.Description)
		}
	}

	return nil
}
