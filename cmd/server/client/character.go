package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-gains/internal/clients/exercises"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/handlers/gains/v1alpha1"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the character and any active dungeon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.GetGameState(ctx, &v1alpha1.UserRequest{UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to get game state: %w", err)
			}
			if printJSON(resp) {
				return nil
			}
			if resp.HealthRestored {
				fmt.Println("❤️  Health restored for the day")
			}
			printState(resp.State)
			return nil
		})
	},
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{
				UserID: userID,
				Name:   args[0],
			})
			if err != nil {
				return fmt.Errorf("failed to create character: %w", err)
			}
			if printJSON(resp) {
				return nil
			}
			fmt.Printf("🧙 Created %s\n", args[0])
			printState(resp.State)
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the character and all progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			if _, err := client.DeleteCharacter(ctx, &v1alpha1.UserRequest{UserID: userID}); err != nil {
				return fmt.Errorf("failed to delete character: %w", err)
			}
			fmt.Printf("🗑️  Deleted character for %s\n", userID)
			return nil
		})
	},
}

var (
	workoutLifts     []string
	workoutCompleted bool
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log a workout",
	Long: `Log a workout made of preset exercises. Weighted lifts take pounds and
the mile takes seconds:

  workout --lift bench=185 --lift squat=225 --lift mile=480`,
	RunE: logWorkout,
}

func init() {
	workoutCmd.Flags().StringArrayVar(&workoutLifts, "lift", nil, "exercise=value, repeatable")
	workoutCmd.Flags().BoolVar(&workoutCompleted, "completed", true, "mark the workout completed")
}

func parseLift(arg string) (entities.Exercise, error) {
	id, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return entities.Exercise{}, fmt.Errorf("lift %q must look like exercise=value", arg)
	}
	def, ok := exercises.Preset(strings.TrimSpace(id))
	if !ok {
		return entities.Exercise{}, fmt.Errorf("unknown exercise %q", id)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return entities.Exercise{}, fmt.Errorf("invalid value for %s: %w", id, err)
	}

	exercise := def.Exercise()
	if exercise.TimeBased() {
		exercise.Time = value
		exercise.Distance = 1
	} else {
		exercise.Weight = value
	}
	return exercise, nil
}

func logWorkout(cmd *cobra.Command, args []string) error {
	workout := entities.WorkoutLog{Completed: workoutCompleted}
	for _, arg := range workoutLifts {
		exercise, err := parseLift(arg)
		if err != nil {
			return err
		}
		workout.Exercises = append(workout.Exercises, exercise)
	}

	return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
		resp, err := client.LogWorkout(ctx, &v1alpha1.LogWorkoutRequest{
			UserID:  userID,
			Workout: workout,
		})
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}
		if printJSON(resp) || refused(resp.Applied, "Workout") {
			return nil
		}

		fmt.Printf("🏋️  +%d XP\n", resp.ExperienceGained)
		for _, record := range resp.NewRecords {
			fmt.Printf("   🏅 New record: %s %.0f\n", record.ExerciseID, record.Value)
		}
		if resp.PotionsEarned > 0 {
			fmt.Printf("   🧪 %d potions earned\n", resp.PotionsEarned)
		}
		if resp.TokenEarned {
			fmt.Println("   🎟️  Dungeon token earned")
		}
		if resp.LeveledUp {
			fmt.Printf("   ⬆️  Level %d!\n", resp.State.Player.Stats.Level)
		}
		return nil
	})
}

var regenCmd = &cobra.Command{
	Use:   "regen",
	Short: "Apply the daily health restore if it is due",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.RegenerateHealth(ctx, &v1alpha1.UserRequest{UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to regenerate health: %w", err)
			}
			if printJSON(resp) {
				return nil
			}
			if resp.Restored {
				fmt.Println("❤️  Health restored")
			} else {
				fmt.Println("Health restore is not due yet")
			}
			return nil
		})
	},
}

var ackLevelUpCmd = &cobra.Command{
	Use:   "ack-level-up",
	Short: "Dismiss the last level-up summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.ClearLevelUpInfo(ctx, &v1alpha1.UserRequest{UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to clear level-up info: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Acknowledging") {
				return nil
			}
			fmt.Println("✅ Level-up acknowledged")
			return nil
		})
	},
}

func printState(state *entities.GameState) {
	if !state.HasCharacter() {
		fmt.Println("No character yet")
		return
	}

	player := state.Player
	stats := player.Stats
	fmt.Printf("\n🧙 %s, level %d (%d XP)\n", player.Name, stats.Level, stats.Experience)
	fmt.Printf("===================\n")
	fmt.Printf("  Health: %d/%d\n", player.Health, player.MaxHealth)
	fmt.Printf("  STR %d  STA %d  END %d  PWR %d\n", stats.Strength, stats.Stamina, stats.Endurance, stats.Power)
	fmt.Printf("  Potions: %d  Dungeon tokens: %d\n", player.HealthPotions, state.AvailableDungeons)

	for _, slot := range entities.Slots {
		if item := player.EquippedItems.Get(slot); item != nil {
			fmt.Printf("  %s: %s %s (%s)\n", slot, item.Icon, item.Name, item.Rarity)
		}
	}
	if len(player.Inventory) > 0 {
		fmt.Printf("  Inventory:\n")
		for _, item := range player.Inventory {
			fmt.Printf("    [%s] %s %s (%s)\n", item.ID, item.Icon, item.Name, item.Rarity)
		}
	}

	if state.LevelUpInfo != nil {
		fmt.Printf("  ⬆️  Reached level %d\n", state.LevelUpInfo.NewLevel)
	}
	if run := state.CurrentDungeon; run != nil {
		fmt.Printf("  🏰 In dungeon: room %d of %d\n", run.CurrentRoomIndex+1, len(run.Rooms))
	}
}
