package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/handlers/gains/v1alpha1"
)

var equipCmd = &cobra.Command{
	Use:   "equip [item-id]",
	Short: "Equip an inventory item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.EquipItem(ctx, &v1alpha1.ItemRequest{UserID: userID, ItemID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to equip item: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Equipping") {
				return nil
			}
			fmt.Printf("🛡️  Equipped %s in %s\n", args[0], resp.Slot)
			if resp.Replaced != nil {
				fmt.Printf("   %s went back to the inventory\n", resp.Replaced.Name)
			}
			return nil
		})
	},
}

var unequipCmd = &cobra.Command{
	Use:       "unequip [slot]",
	Short:     "Move the item in a slot back to the inventory",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(entities.SlotWeapon), string(entities.SlotArmor), string(entities.SlotAccessory)},
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.UnequipItem(ctx, &v1alpha1.UnequipItemRequest{
				UserID: userID,
				Slot:   entities.Slot(args[0]),
			})
			if err != nil {
				return fmt.Errorf("failed to unequip: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Unequipping") {
				return nil
			}
			fmt.Printf("🎒 %s moved to the inventory\n", resp.Item.Name)
			return nil
		})
	},
}

var dropCmd = &cobra.Command{
	Use:   "drop [item-id]",
	Short: "Destroy an inventory item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.DropItem(ctx, &v1alpha1.ItemRequest{UserID: userID, ItemID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to drop item: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Dropping") {
				return nil
			}
			fmt.Printf("🗑️  Dropped %s\n", resp.Item.Name)
			return nil
		})
	},
}

var potionCmd = &cobra.Command{
	Use:   "potion",
	Short: "Drink a health potion",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client v1alpha1.GameServiceClient) error {
			resp, err := client.UseHealthPotion(ctx, &v1alpha1.UserRequest{UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to use potion: %w", err)
			}
			if printJSON(resp) || refused(resp.Applied, "Drinking a potion") {
				return nil
			}
			player := resp.State.Player
			fmt.Printf("🧪 Healed %d (%d/%d), %d potions left\n",
				resp.Healed, player.Health, player.MaxHealth, player.HealthPotions)
			return nil
		})
	},
}
