package client

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/pagination"
)

var (
	characterRole  string
	characterQuery string
	page           int
	pageSize       int
)

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List characters one page at a time",
	Long: `List characters, optionally restricted to a role:
- all
- students
- staff`,
	RunE: runListCharacters,
}

func init() {
	listCharactersCmd.Flags().StringVar(&characterRole, "role", "all", "Role to list (all, students, staff)")
	listCharactersCmd.Flags().StringVarP(&characterQuery, "query", "q", "", "Filter text")
	listCharactersCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCharactersCmd.Flags().IntVar(&pageSize, "page-size", pagination.DefaultLimit, "Number of items per page")
}

func rolePath(role string) (string, error) {
	switch role {
	case "", "all":
		return "/api/v1/characters", nil
	case "students":
		return "/api/v1/students", nil
	case "staff":
		return "/api/v1/staff", nil
	default:
		return "", fmt.Errorf("unknown role: %s", role)
	}
}

func runListCharacters(_ *cobra.Command, _ []string) error {
	path, err := rolePath(characterRole)
	if err != nil {
		return err
	}

	client, ctx, cancel := createClient()
	defer cancel()

	log.Printf("Requesting %s characters from %s...", characterRole, serverAddr)

	var characters []entities.Character
	var meta pagination.Meta
	err = client.do(ctx, "GET", path, map[string]string{
		"q":     characterQuery,
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(pageSize),
	}, &characters, &meta)
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	fmt.Printf("\nShowing %d-%d of %d characters (page %d of %d):\n\n", meta.From, meta.To, meta.Total, meta.Page, meta.TotalPages)
	for i, c := range characters {
		fmt.Printf("%d. %s", i+1, c.Name)
		if c.House != "" {
			fmt.Printf(" [%s]", c.House)
		}
		if c.Actor != "" {
			fmt.Printf(" played by %s", c.Actor)
		}
		fmt.Println()
	}

	return nil
}
