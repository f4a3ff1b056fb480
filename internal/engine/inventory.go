package engine

import (
	"context"

	"github.com/KirkDiggler/dungeon-gains/internal/errors"
)

func (e *engine) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}
	if !state.HasCharacter() {
		return &EquipItemOutput{Result: refused(state)}, nil
	}

	player := state.Player
	idx := player.InventoryIndex(input.ItemID)
	if idx < 0 {
		return &EquipItemOutput{Result: refused(state)}, nil
	}

	item := player.RemoveInventoryAt(idx)
	slot := item.Type.Slot()

	replaced := player.EquippedItems.Get(slot)
	if replaced != nil {
		player.Inventory = append(player.Inventory, *replaced)
	}
	player.EquippedItems.Set(slot, &item)

	return &EquipItemOutput{
		Result:   applied(state),
		Slot:     slot,
		Replaced: replaced,
	}, nil
}

func (e *engine) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.Valid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}
	if !state.HasCharacter() {
		return &UnequipItemOutput{Result: refused(state)}, nil
	}

	player := state.Player
	item := player.EquippedItems.Get(input.Slot)
	if item == nil {
		return &UnequipItemOutput{Result: refused(state)}, nil
	}

	player.EquippedItems.Set(input.Slot, nil)
	player.Inventory = append(player.Inventory, *item)

	return &UnequipItemOutput{
		Result: applied(state),
		Item:   item,
	}, nil
}

func (e *engine) DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}
	if !state.HasCharacter() {
		return &DropItemOutput{Result: refused(state)}, nil
	}

	idx := state.Player.InventoryIndex(input.ItemID)
	if idx < 0 {
		return &DropItemOutput{Result: refused(state)}, nil
	}

	item := state.Player.RemoveInventoryAt(idx)
	return &DropItemOutput{
		Result: applied(state),
		Item:   &item,
	}, nil
}
