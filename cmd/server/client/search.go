package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wizarding-catalog/internal/search"
)

var searchType string

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search characters and spells",
	Long: `Run a single search across characters and spells. Restrict the result with --type:
- all
- characters
- spells`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchType, "type", "all", "Entity type to search (all, characters, spells)")
}

func runSearch(_ *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	client, ctx, cancel := createClient()
	defer cancel()

	log.Printf("Searching %q on %s...", query, serverAddr)

	var results search.Results
	err := client.do(ctx, "GET", "/api/v1/search", map[string]string{
		"q":    query,
		"type": searchType,
	}, &results, nil)
	if err != nil {
		return fmt.Errorf("failed to search: %w", err)
	}

	fmt.Printf("\nCharacters (%d):\n", len(results.Characters))
	for _, c := range results.Characters {
		fmt.Printf("  - %s\n", c.Name)
	}
	fmt.Printf("\nSpells (%d):\n", len(results.Spells))
	for _, s := range results.Spells {
		fmt.Printf("  - %s\n", s.Name)
	}

	return nil
}
