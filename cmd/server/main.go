// Package main is the entry point for the rules gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-rules/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-rules",
	Short: "RPG rules gRPC server",
	Long: `RPG rules validates, creates and advances D&D 5e characters over gRPC:
rule validation, multiclassing, spell progression and character export.`,
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
