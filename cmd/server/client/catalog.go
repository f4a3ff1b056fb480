package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-gains/internal/handlers/gains/v1alpha1"
)

var (
	exerciseMuscle     string
	exerciseType       string
	exerciseDifficulty string
	oddsLevel          int
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List exercises from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.ListExercises(ctx, &v1alpha1.ListExercisesRequest{
				Muscle:     exerciseMuscle,
				Type:       exerciseType,
				Difficulty: exerciseDifficulty,
			})
			if err != nil {
				return fmt.Errorf("failed to list exercises: %w", err)
			}
			if printJSON(resp) {
				return nil
			}

			fmt.Printf("📋 %d exercises (from %s)\n", len(resp.Exercises), resp.Source)
			for _, e := range resp.Exercises {
				fmt.Printf("  %-28s %-12s %-10s -> %s\n", e.Name, e.Muscle, e.Category, e.StatType)
			}
			return nil
		})
	},
}

var oddsCmd = &cobra.Command{
	Use:   "odds",
	Short: "Show loot rarity odds for a level or the current character",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &v1alpha1.GetLootOddsRequest{Level: oddsLevel}
		if oddsLevel == 0 {
			req.UserID = userID
		}

		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.GetLootOdds(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to get loot odds: %w", err)
			}
			if printJSON(resp) {
				return nil
			}

			fmt.Printf("🎲 Level %d loot (dungeon difficulty %d)\n", resp.Level, resp.DungeonDifficulty)
			fmt.Printf("  Legendary: %5.1f%%\n", resp.Legendary)
			fmt.Printf("  Rare:      %5.1f%%\n", resp.Rare)
			fmt.Printf("  Common:    %5.1f%%\n", resp.Common)
			return nil
		})
	},
}

func init() {
	exercisesCmd.Flags().StringVar(&exerciseMuscle, "muscle", "", "filter by muscle")
	exercisesCmd.Flags().StringVar(&exerciseType, "type", "", "filter by exercise type")
	exercisesCmd.Flags().StringVar(&exerciseDifficulty, "difficulty", "", "filter by difficulty")
	oddsCmd.Flags().IntVar(&oddsLevel, "level", 0, "character level (defaults to the current character)")
}
