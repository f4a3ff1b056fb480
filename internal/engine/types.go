package engine

import (
	"time"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/combat"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
)

// Result is embedded in every output. State is always set, even when the
// call was refused.
type Result struct {
	State   *entities.GameState
	Applied bool
}

// Outcome returns the embedded Result
func (r Result) Outcome() Result {
	return r
}

// CreateCharacterInput names the character and records the lifts used as
// personal record baselines
type CreateCharacterInput struct {
	Name          string
	StartingLifts []entities.Exercise
}

// CreateCharacterOutput contains the fresh game state
type CreateCharacterOutput struct {
	Result
}

// LogWorkoutInput contains the workout to record
type LogWorkoutInput struct {
	State   *entities.GameState
	Workout entities.WorkoutLog
}

// LogWorkoutOutput reports the rewards earned by the workout
type LogWorkoutOutput struct {
	Result
	NewRecords       []entities.PersonalRecord
	PotionsEarned    int
	ExperienceGained int
	LeveledUp        bool
	HealthRestored   bool
	TokenEarned      bool
}

// StartDungeonInput contains the state to start a run from
type StartDungeonInput struct {
	State *entities.GameState
}

// StartDungeonOutput contains the started run
type StartDungeonOutput struct {
	Result
	Dungeon *entities.Dungeon
}

// AttackInput contains the state of an active fight
type AttackInput struct {
	State *entities.GameState
}

// AttackOutput contains one combat exchange
type AttackOutput struct {
	Result
	Exchange combat.Exchange
}

// AutoAttackInput attacks once per Interval until the fight ends or the
// context is done
type AutoAttackInput struct {
	State *entities.GameState
	// Interval defaults to combat.DefaultAutoAttackInterval
	Interval time.Duration
	// OnExchange, when set, sees each exchange as it happens
	OnExchange func(combat.Exchange)
}

// AutoAttackOutput contains every exchange fought
type AutoAttackOutput struct {
	Result
	Exchanges []combat.Exchange
	Last      combat.Exchange
	// Stopped is set when the context ended the fight early. State still
	// reflects the exchanges already fought.
	Stopped bool
}

// OpenTreasureInput contains the state with a treasure room current
type OpenTreasureInput struct {
	State *entities.GameState
}

// OpenTreasureOutput lists the items moved to the inventory
type OpenTreasureOutput struct {
	Result
	Items []entities.Item
}

// AdvanceRoomInput contains the state of an active run
type AdvanceRoomInput struct {
	State *entities.GameState
}

// AdvanceRoomOutput describes the room entered
type AdvanceRoomOutput struct {
	Result
	Room *entities.DungeonRoom
	// AutoCleared is set when the entered room was empty
	AutoCleared bool
	// Completed is set when the last room was left
	Completed bool
}

// FinishDungeonInput contains a completed or lost run
type FinishDungeonInput struct {
	State *entities.GameState
}

// CompleteDungeonInput settles a run with explicit results
type CompleteDungeonInput struct {
	State           *entities.GameState
	RemainingHealth int
	EnemiesDefeated int
}

// CompleteDungeonOutput reports the run rewards
type CompleteDungeonOutput struct {
	Result
	ExperienceGained int
	LeveledUp        bool
	PlayerDefeated   bool
}

// EquipItemInput names an inventory item to equip
type EquipItemInput struct {
	State  *entities.GameState
	ItemID string
}

// EquipItemOutput reports the slot change
type EquipItemOutput struct {
	Result
	Slot     entities.Slot
	Replaced *entities.Item
}

// UnequipItemInput names the slot to empty
type UnequipItemInput struct {
	State *entities.GameState
	Slot  entities.Slot
}

// UnequipItemOutput contains the item moved back to the inventory
type UnequipItemOutput struct {
	Result
	Item *entities.Item
}

// DropItemInput names an inventory item to destroy
type DropItemInput struct {
	State  *entities.GameState
	ItemID string
}

// DropItemOutput contains the destroyed item
type DropItemOutput struct {
	Result
	Item *entities.Item
}

// UseHealthPotionInput contains the state to heal
type UseHealthPotionInput struct {
	State *entities.GameState
}

// UseHealthPotionOutput reports the amount healed
type UseHealthPotionOutput struct {
	Result
	Healed int
}

// RegenerateHealthInput contains the state to check
type RegenerateHealthInput struct {
	State *entities.GameState
}

// RegenerateHealthOutput reports whether health was restored. Applied is
// also true on first touch, when only the timestamp was set.
type RegenerateHealthOutput struct {
	Result
	Restored bool
}

// ClearLevelUpInfoInput contains the state to acknowledge
type ClearLevelUpInfoInput struct {
	State *entities.GameState
}

// ClearLevelUpInfoOutput contains the state without level-up info
type ClearLevelUpInfoOutput struct {
	Result
}
