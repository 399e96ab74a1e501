// Package main is the entry point for the wizarding catalog server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wizarding-catalog/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "wizarding-catalog",
	Short: "Wizarding world catalog HTTP server",
	Long:  `Wizarding catalog serves characters, spells, favorites and search over a JSON HTTP API.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
