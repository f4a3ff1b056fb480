package v1alpha1

import (
	"github.com/KirkDiggler/dungeon-gains/internal/clients/exercises"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/combat"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
)

// UserRequest identifies the player for RPCs that need nothing else
type UserRequest struct {
	UserID string `json:"userId"`
}

// StateResponse is returned by RPCs with no extra result
type StateResponse struct {
	State   *entities.GameState `json:"state"`
	Applied bool                `json:"applied"`
}

// GetGameStateResponse contains the stored snapshot
type GetGameStateResponse struct {
	State          *entities.GameState `json:"state"`
	HealthRestored bool                `json:"healthRestored"`
}

// CreateCharacterRequest names the new character
type CreateCharacterRequest struct {
	UserID        string              `json:"userId"`
	Name          string              `json:"name"`
	StartingLifts []entities.Exercise `json:"startingLifts,omitempty"`
}

// DeleteCharacterResponse is empty
type DeleteCharacterResponse struct{}

// LogWorkoutRequest contains the workout to record
type LogWorkoutRequest struct {
	UserID  string              `json:"userId"`
	Workout entities.WorkoutLog `json:"workout"`
}

// LogWorkoutResponse reports the rewards earned
type LogWorkoutResponse struct {
	State            *entities.GameState       `json:"state"`
	Applied          bool                      `json:"applied"`
	NewRecords       []entities.PersonalRecord `json:"newRecords,omitempty"`
	PotionsEarned    int                       `json:"potionsEarned"`
	ExperienceGained int                       `json:"experienceGained"`
	LeveledUp        bool                      `json:"leveledUp"`
	HealthRestored   bool                      `json:"healthRestored"`
	TokenEarned      bool                      `json:"tokenEarned"`
}

// StartDungeonResponse contains the started run
type StartDungeonResponse struct {
	State   *entities.GameState `json:"state"`
	Applied bool                `json:"applied"`
	Dungeon *entities.Dungeon   `json:"dungeon,omitempty"`
}

// Exchange is one round of combat
type Exchange struct {
	PlayerDamage   int                  `json:"playerDamage"`
	Critical       bool                 `json:"critical"`
	EnemyDamage    int                  `json:"enemyDamage"`
	EnemyHealth    int                  `json:"enemyHealth"`
	PlayerHealth   int                  `json:"playerHealth"`
	EnemyDefeated  bool                 `json:"enemyDefeated"`
	PlayerDefeated bool                 `json:"playerDefeated"`
	Loot           []entities.Item      `json:"loot,omitempty"`
	Phase          entities.CombatPhase `json:"phase"`
}

func toExchange(x combat.Exchange) Exchange {
	return Exchange{
		PlayerDamage:   x.PlayerDamage,
		Critical:       x.Critical,
		EnemyDamage:    x.EnemyDamage,
		EnemyHealth:    x.EnemyHealth,
		PlayerHealth:   x.PlayerHealth,
		EnemyDefeated:  x.EnemyDefeated,
		PlayerDefeated: x.PlayerDefeated,
		Loot:           x.Loot,
		Phase:          x.Phase,
	}
}

// AttackResponse contains one exchange
type AttackResponse struct {
	State    *entities.GameState `json:"state"`
	Applied  bool                `json:"applied"`
	Exchange *Exchange           `json:"exchange,omitempty"`
}

// AutoAttackRequest fights until the room is decided. IntervalMs of zero
// uses the server default.
type AutoAttackRequest struct {
	UserID     string `json:"userId"`
	IntervalMs int64  `json:"intervalMs,omitempty"`
}

// AutoAttackResponse contains every exchange fought
type AutoAttackResponse struct {
	State     *entities.GameState `json:"state"`
	Applied   bool                `json:"applied"`
	Exchanges []Exchange          `json:"exchanges"`
	Stopped   bool                `json:"stopped"`
}

// OpenTreasureResponse lists the items collected
type OpenTreasureResponse struct {
	State   *entities.GameState `json:"state"`
	Applied bool                `json:"applied"`
	Items   []entities.Item     `json:"items,omitempty"`
}

// AdvanceRoomResponse describes the room entered
type AdvanceRoomResponse struct {
	State       *entities.GameState   `json:"state"`
	Applied     bool                  `json:"applied"`
	Room        *entities.DungeonRoom `json:"room,omitempty"`
	AutoCleared bool                  `json:"autoCleared"`
	Completed   bool                  `json:"completed"`
}

// CompleteDungeonRequest settles a run with explicit results
type CompleteDungeonRequest struct {
	UserID          string `json:"userId"`
	RemainingHealth int    `json:"remainingHealth"`
	EnemiesDefeated int    `json:"enemiesDefeated"`
}

// CompleteDungeonResponse reports the run rewards
type CompleteDungeonResponse struct {
	State            *entities.GameState `json:"state"`
	Applied          bool                `json:"applied"`
	ExperienceGained int                 `json:"experienceGained"`
	LeveledUp        bool                `json:"leveledUp"`
	PlayerDefeated   bool                `json:"playerDefeated"`
}

// ItemRequest names an inventory item
type ItemRequest struct {
	UserID string `json:"userId"`
	ItemID string `json:"itemId"`
}

// EquipItemResponse reports the slot change
type EquipItemResponse struct {
	State    *entities.GameState `json:"state"`
	Applied  bool                `json:"applied"`
	Slot     entities.Slot       `json:"slot,omitempty"`
	Replaced *entities.Item      `json:"replaced,omitempty"`
}

// UnequipItemRequest names the slot to empty
type UnequipItemRequest struct {
	UserID string        `json:"userId"`
	Slot   entities.Slot `json:"slot"`
}

// ItemResponse contains the item moved or destroyed
type ItemResponse struct {
	State   *entities.GameState `json:"state"`
	Applied bool                `json:"applied"`
	Item    *entities.Item      `json:"item,omitempty"`
}

// UseHealthPotionResponse reports the amount healed
type UseHealthPotionResponse struct {
	State   *entities.GameState `json:"state"`
	Applied bool                `json:"applied"`
	Healed  int                 `json:"healed"`
}

// RegenerateHealthResponse reports whether health was restored
type RegenerateHealthResponse struct {
	State    *entities.GameState `json:"state"`
	Applied  bool                `json:"applied"`
	Restored bool                `json:"restored"`
}

// ListExercisesRequest filters the catalog
type ListExercisesRequest struct {
	Muscle     string `json:"muscle,omitempty"`
	Type       string `json:"type,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// ListExercisesResponse contains the matching exercises
type ListExercisesResponse struct {
	Exercises []exercises.Definition `json:"exercises"`
	Source    exercises.Source       `json:"source"`
}

// GetLootOddsRequest picks a level directly or through a user
type GetLootOddsRequest struct {
	UserID string `json:"userId,omitempty"`
	Level  int    `json:"level,omitempty"`
}

// GetLootOddsResponse contains the rarity bands in percent
type GetLootOddsResponse struct {
	Level             int     `json:"level"`
	Legendary         float64 `json:"legendary"`
	Rare              float64 `json:"rare"`
	Common            float64 `json:"common"`
	DungeonDifficulty int     `json:"dungeonDifficulty"`
}
