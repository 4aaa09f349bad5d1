// Package client provides commands that call the rules gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/handlers/character/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the RPG rules service",
	Long:  `Client commands call the RPG rules service over gRPC and print the JSON response.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Lifecycle
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(levelUpCmd)
	ClientCmd.AddCommand(updateBackgroundCmd)

	// Storage
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(rosterCmd)

	// Rules
	ClientCmd.AddCommand(validateCmd)
	ClientCmd.AddCommand(multiclassCmd)
	ClientCmd.AddCommand(learnSpellCmd)
	ClientCmd.AddCommand(prepareSpellsCmd)

	// Portability
	ClientCmd.AddCommand(exportCmd)
	ClientCmd.AddCommand(importCmd)
}

// createCharacterClient creates a character service client
func createCharacterClient() (v1alpha1.CharacterServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewCharacterServiceClient(conn), cleanup, nil
}

// printJSON writes v to stdout as indented JSON
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// callError restores the service error so its code and reason print
func callError(action string, err error) error {
	restored := errors.FromGRPCError(err)
	return fmt.Errorf("failed to %s: %w", action, restored)
}

// readJSONFile decodes the file at path into v, "-" reads stdin
func readJSONFile(path string, v any) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 // user supplied path
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeJSONFile writes v to path as indented JSON
func writeJSONFile(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
