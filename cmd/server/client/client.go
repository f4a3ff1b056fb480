// Package client provides test commands for the Dungeon Gains gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/handlers/gains/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	userID     string
	jsonOutput bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the game service",
	Long:  `Client commands allow you to play the game by making real gRPC requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&userID, "user", "local_player", "user to act as")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw responses as JSON")

	// Character commands
	ClientCmd.AddCommand(stateCmd)
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(workoutCmd)
	ClientCmd.AddCommand(regenCmd)
	ClientCmd.AddCommand(ackLevelUpCmd)

	// Dungeon commands
	ClientCmd.AddCommand(dungeonCmd)

	// Inventory commands
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(unequipCmd)
	ClientCmd.AddCommand(dropCmd)
	ClientCmd.AddCommand(potionCmd)

	// Catalog commands
	ClientCmd.AddCommand(exercisesCmd)
	ClientCmd.AddCommand(oddsCmd)
}

// createGameClient creates a game service client
func createGameClient() (v1alpha1.GameServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGameServiceClient(conn), cleanup, nil
}

// call runs fn with a connected client and the request timeout
func call(fn func(ctx context.Context, client v1alpha1.GameServiceClient) error) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return describeError(fn(ctx, client))
}

// describeError turns an RPC failure into "Code: message"
func describeError(err error) error {
	if err == nil {
		return nil
	}
	st := errors.GRPCStatus(err)
	return fmt.Errorf("%s: %s", st.Code(), st.Message())
}

// printJSON writes resp when --json is set and reports whether it did
func printJSON(resp any) bool {
	if !jsonOutput {
		return false
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
	return true
}

func refused(applied bool, action string) bool {
	if !applied {
		fmt.Printf("⚠️  %s had no effect\n", action)
	}
	return !applied
}
