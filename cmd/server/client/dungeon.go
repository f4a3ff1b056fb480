package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/handlers/gains/v1alpha1"
)

var dungeonCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Dungeon run commands",
}

var autoInterval time.Duration

func init() {
	dungeonCmd.AddCommand(startCmd)
	dungeonCmd.AddCommand(attackCmd)
	dungeonCmd.AddCommand(autoCmd)
	dungeonCmd.AddCommand(treasureCmd)
	dungeonCmd.AddCommand(advanceCmd)
	dungeonCmd.AddCommand(finishCmd)

	autoCmd.Flags().DurationVar(&autoInterval, "interval", 0, "delay between attacks (server default when zero)")
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Spend a token to enter a dungeon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.StartDungeon(ctx, &v1alpha1.UserRequest{UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to start dungeon: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Starting a dungeon") {
				return nil
			}
			fmt.Printf("🏰 Entered a dungeon with %d rooms (difficulty %d)\n",
				len(resp.Dungeon.Rooms), resp.Dungeon.Difficulty)
			printRoom(resp.Dungeon.CurrentRoom())
			return nil
		})
	},
}

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Attack the enemy in the current room once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.Attack(ctx, &v1alpha1.UserRequest{UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to attack: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied && resp.Exchange != nil, "Attack") {
				return nil
			}
			printExchange(*resp.Exchange)
			return nil
		})
	},
}

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Fight until the enemy or the player falls",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.AutoAttack(ctx, &v1alpha1.AutoAttackRequest{
				UserID:     userID,
				IntervalMs: autoInterval.Milliseconds(),
			})
			if err != nil {
				return fmt.Errorf("failed to auto attack: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Auto attack") {
				return nil
			}
			for _, x := range resp.Exchanges {
				printExchange(x)
			}
			if resp.Stopped {
				fmt.Println("⏸️  Fight interrupted")
			}
			return nil
		})
	},
}

var treasureCmd = &cobra.Command{
	Use:   "treasure",
	Short: "Open the treasure in the current room",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.OpenTreasure(ctx, &v1alpha1.UserRequest{UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to open treasure: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Opening treasure") {
				return nil
			}
			for _, item := range resp.Items {
				fmt.Printf("💰 %s %s (%s)\n", item.Icon, item.Name, item.Rarity)
			}
			return nil
		})
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Move to the next room",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.AdvanceRoom(ctx, &v1alpha1.UserRequest{UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to advance: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Advancing") {
				return nil
			}
			if resp.Completed {
				fmt.Println("🏁 Last room cleared, run `dungeon finish` to claim rewards")
				return nil
			}
			printRoom(resp.Room)
			return nil
		})
	},
}

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Leave a completed or lost dungeon and collect experience",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.FinishDungeon(ctx, &v1alpha1.UserRequest{UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to finish dungeon: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Finishing") {
				return nil
			}
			if resp.PlayerDefeated {
				fmt.Printf("💀 Defeated. +%d XP\n", resp.ExperienceGained)
			} else {
				fmt.Printf("🏆 Dungeon cleared! +%d XP\n", resp.ExperienceGained)
			}
			if resp.LeveledUp {
				fmt.Printf("⬆️  Level %d!\n", resp.State.Player.Stats.Level)
			}
			return nil
		})
	},
}

func printRoom(room *entities.DungeonRoom) {
	if room == nil {
		return
	}
	switch {
	case room.Enemy != nil:
		fmt.Printf("%s %s appears! (%d HP, %d attack)\n",
			room.Enemy.Icon, room.Enemy.Name, room.Enemy.Health, room.Enemy.Attack)
	case room.Type == entities.RoomTypeTreasure:
		fmt.Println("💰 A treasure chest")
	default:
		fmt.Println("🕯️  An empty room")
	}
}

func printExchange(x v1alpha1.Exchange) {
	crit := ""
	if x.Critical {
		crit = " (critical!)"
	}
	fmt.Printf("⚔️  You hit for %d%s, enemy at %d HP", x.PlayerDamage, crit, x.EnemyHealth)
	if x.EnemyDamage > 0 {
		fmt.Printf(", you take %d (%d HP left)", x.EnemyDamage, x.PlayerHealth)
	}
	fmt.Println()

	if x.EnemyDefeated {
		fmt.Println("🎉 Enemy defeated!")
		for _, item := range x.Loot {
			fmt.Printf("   🎁 %s %s (%s)\n", item.Icon, item.Name, item.Rarity)
		}
	}
	if x.PlayerDefeated {
		fmt.Println("💀 You have fallen")
	}
}
