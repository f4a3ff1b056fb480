// Package main is the entry point for the dungeon-gains server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-gains/cmd/server/client"
	"github.com/KirkDiggler/dungeon-gains/internal/config"
)

var (
	configPath string

	// v collects flags, environment and the config file for every command
	v = config.NewViper()
)

var rootCmd = &cobra.Command{
	Use:   "dungeon-gains",
	Short: "Dungeon Gains game server",
	Long: `Dungeon Gains turns logged workouts into character progression and
serves short dungeon runs over gRPC.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the configuration for the running command
func loadConfig() (*config.Config, error) {
	return config.Load(v, configPath)
}
