// Package engine is the game state machine. It composes progression, loot,
// enemy and dungeon generation and combat into the operations a player can
// take.
//
// Every operation reads the GameState in its input and returns a new one;
// the input is never modified. Gameplay calls that are not allowed in the
// current state are not errors: they return an unchanged copy with
// Applied=false. Errors are reserved for malformed input.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/dungeon-gains/internal/engine Engine

import (
	"context"
)

// Engine provides the game state transitions
type Engine interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	LogWorkout(ctx context.Context, input *LogWorkoutInput) (*LogWorkoutOutput, error)

	// Dungeon runs
	StartDungeon(ctx context.Context, input *StartDungeonInput) (*StartDungeonOutput, error)
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	AutoAttack(ctx context.Context, input *AutoAttackInput) (*AutoAttackOutput, error)
	OpenTreasure(ctx context.Context, input *OpenTreasureInput) (*OpenTreasureOutput, error)
	AdvanceRoom(ctx context.Context, input *AdvanceRoomInput) (*AdvanceRoomOutput, error)
	FinishDungeon(ctx context.Context, input *FinishDungeonInput) (*CompleteDungeonOutput, error)
	CompleteDungeon(ctx context.Context, input *CompleteDungeonInput) (*CompleteDungeonOutput, error)

	// Inventory
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
	DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error)

	// Health
	UseHealthPotion(ctx context.Context, input *UseHealthPotionInput) (*UseHealthPotionOutput, error)
	RegenerateHealth(ctx context.Context, input *RegenerateHealthInput) (*RegenerateHealthOutput, error)

	ClearLevelUpInfo(ctx context.Context, input *ClearLevelUpInfoInput) (*ClearLevelUpInfoOutput, error)

	// Utility methods
	DungeonDifficulty(level int) int
}
