package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route [fragment]",
	Short: "Resolve a location fragment to a view",
	Long:  `Resolve a fragment such as #characters/harry-potter to the view it selects.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoute,
}

type routeResult struct {
	View      string `json:"view"`
	Slug      string `json:"slug"`
	Fragment  string `json:"fragment"`
	Found     *bool  `json:"found"`
	Character *struct {
		Name string `json:"name"`
	} `json:"character"`
}

func runRoute(_ *cobra.Command, args []string) error {
	fragment := ""
	if len(args) == 1 {
		fragment = args[0]
	}

	client, ctx, cancel := createClient()
	defer cancel()

	var result routeResult
	if err := client.do(ctx, "GET", "/api/v1/routes", map[string]string{"fragment": fragment}, &result, nil); err != nil {
		return fmt.Errorf("failed to resolve route: %w", err)
	}

	fmt.Printf("View: %s\n", result.View)
	fmt.Printf("Canonical: %s\n", result.Fragment)
	if result.Slug != "" {
		fmt.Printf("Slug: %s\n", result.Slug)
	}
	if result.Found != nil {
		if result.Character != nil {
			fmt.Printf("Character: %s\n", result.Character.Name)
		} else {
			fmt.Println("Character not found")
		}
	}

	return nil
}
