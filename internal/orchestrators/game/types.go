package game

import (
	"time"

	"github.com/KirkDiggler/dungeon-gains/internal/clients/exercises"
	"github.com/KirkDiggler/dungeon-gains/internal/engine"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/combat"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/loot"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
)

// GetGameStateInput identifies the player
type GetGameStateInput struct {
	UserID string
}

// GetGameStateOutput contains the stored snapshot after health regeneration
type GetGameStateOutput struct {
	State *entities.GameState
	// HealthRestored is set when loading triggered the daily restore
	HealthRestored bool
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	UserID        string
	Name          string
	StartingLifts []entities.Exercise
}

// CreateCharacterOutput contains the new snapshot
type CreateCharacterOutput = engine.CreateCharacterOutput

// DeleteCharacterInput identifies the snapshot to remove
type DeleteCharacterInput struct {
	UserID string
}

// DeleteCharacterOutput is empty; a missing snapshot is NotFound
type DeleteCharacterOutput struct{}

// LogWorkoutInput defines the request for logging a workout
type LogWorkoutInput struct {
	UserID  string
	Workout entities.WorkoutLog
}

// LogWorkoutOutput reports the rewards earned
type LogWorkoutOutput = engine.LogWorkoutOutput

// RunInput identifies the player for the dungeon-run operations that need
// nothing else
type RunInput struct {
	UserID string
}

// StartDungeonOutput contains the started run
type StartDungeonOutput = engine.StartDungeonOutput

// AttackOutput contains one combat exchange
type AttackOutput = engine.AttackOutput

// AutoAttackInput defines the request for a timed fight
type AutoAttackInput struct {
	UserID string
	// Interval between attacks. Zero uses the configured default.
	Interval time.Duration
	// OnExchange, when set, sees each exchange as it happens
	OnExchange func(combat.Exchange)
}

// AutoAttackOutput contains every exchange fought
type AutoAttackOutput = engine.AutoAttackOutput

// OpenTreasureOutput lists the items collected
type OpenTreasureOutput = engine.OpenTreasureOutput

// AdvanceRoomOutput describes the room entered
type AdvanceRoomOutput = engine.AdvanceRoomOutput

// CompleteDungeonInput settles a run with explicit results
type CompleteDungeonInput struct {
	UserID          string
	RemainingHealth int
	EnemiesDefeated int
}

// CompleteDungeonOutput reports the run rewards
type CompleteDungeonOutput = engine.CompleteDungeonOutput

// EquipItemInput names an inventory item to equip
type EquipItemInput struct {
	UserID string
	ItemID string
}

// EquipItemOutput reports the slot change
type EquipItemOutput = engine.EquipItemOutput

// UnequipItemInput names the slot to empty
type UnequipItemInput struct {
	UserID string
	Slot   entities.Slot
}

// UnequipItemOutput contains the item moved to the inventory
type UnequipItemOutput = engine.UnequipItemOutput

// DropItemInput names an inventory item to destroy
type DropItemInput struct {
	UserID string
	ItemID string
}

// DropItemOutput contains the destroyed item
type DropItemOutput = engine.DropItemOutput

// UseHealthPotionOutput reports the amount healed
type UseHealthPotionOutput = engine.UseHealthPotionOutput

// RegenerateHealthOutput reports whether health was restored
type RegenerateHealthOutput = engine.RegenerateHealthOutput

// ClearLevelUpInfoOutput contains the acknowledged state
type ClearLevelUpInfoOutput = engine.ClearLevelUpInfoOutput

// ListExercisesInput filters the exercise catalog
type ListExercisesInput struct {
	Muscle     string
	Type       string
	Difficulty string
}

// ListExercisesOutput contains the matching exercises
type ListExercisesOutput struct {
	Exercises []exercises.Definition
	Source    exercises.Source
}

// GetLootOddsInput picks the level to report odds for. Set either Level or
// UserID; UserID wins.
type GetLootOddsInput struct {
	UserID string
	Level  int
}

// GetLootOddsOutput contains the rarity bands in percent
type GetLootOddsOutput struct {
	Level             int
	Odds              loot.Odds
	DungeonDifficulty int
}
