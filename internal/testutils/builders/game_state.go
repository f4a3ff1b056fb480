// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/progression"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
)

// GameStateBuilder provides a fluent interface for building test GameState instances
type GameStateBuilder struct {
	state *entities.GameState
}

// NewGameStateBuilder creates a builder for a fresh level 1 character
func NewGameStateBuilder() *GameStateBuilder {
	stats := progression.StartingStats()
	maxHealth := progression.MaxHealth(stats)
	return &GameStateBuilder{
		state: &entities.GameState{
			Player: &entities.PlayerCharacter{
				Name:            "Test Character",
				Stats:           stats,
				BaseStats:       stats,
				Health:          maxHealth,
				MaxHealth:       maxHealth,
				Inventory:       []entities.Item{},
				WorkoutLogs:     []entities.WorkoutLog{},
				PersonalRecords: make(map[string]entities.PersonalRecord),
			},
			AvailableDungeons: 1,
		},
	}
}

// WithName sets the character name
func (b *GameStateBuilder) WithName(name string) *GameStateBuilder {
	b.state.Player.Name = name
	return b
}

// WithLevel applies level-ups until the character reaches level, keeping
// health full
func (b *GameStateBuilder) WithLevel(level int) *GameStateBuilder {
	p := b.state.Player
	for p.Stats.Level < level && p.Stats.Level < progression.MaxLevel {
		p.Stats.Experience = progression.XPForLevel(p.Stats.Level)
		p.Stats, _ = progression.CheckLevelUp(p.Stats)
	}
	p.MaxHealth = progression.MaxHealth(p.Stats)
	p.Health = p.MaxHealth
	return b
}

// WithHealth sets current health
func (b *GameStateBuilder) WithHealth(health int) *GameStateBuilder {
	b.state.Player.Health = health
	return b
}

// WithPotions sets the potion count
func (b *GameStateBuilder) WithPotions(n int) *GameStateBuilder {
	b.state.Player.HealthPotions = n
	return b
}

// WithDungeons sets the number of dungeon tokens
func (b *GameStateBuilder) WithDungeons(n int) *GameStateBuilder {
	b.state.AvailableDungeons = n
	return b
}

// WithItems adds items to the inventory
func (b *GameStateBuilder) WithItems(items ...entities.Item) *GameStateBuilder {
	b.state.Player.Inventory = append(b.state.Player.Inventory, items...)
	return b
}

// WithEquipped puts item straight into its slot
func (b *GameStateBuilder) WithEquipped(item entities.Item) *GameStateBuilder {
	b.state.Player.EquippedItems.Set(item.Type.Slot(), &item)
	return b
}

// WithRecord stores a personal record
func (b *GameStateBuilder) WithRecord(exerciseID string, value float64, at time.Time) *GameStateBuilder {
	b.state.Player.PersonalRecords[exerciseID] = entities.PersonalRecord{
		ExerciseID: exerciseID,
		Value:      value,
		Date:       at,
	}
	return b
}

// WithRestoreTime sets the last health restore time
func (b *GameStateBuilder) WithRestoreTime(t time.Time) *GameStateBuilder {
	b.state.Player.LastHealthRestoreTime = &t
	return b
}

// WithDungeon attaches an active run
func (b *GameStateBuilder) WithDungeon(d *entities.Dungeon) *GameStateBuilder {
	b.state.CurrentDungeon = d
	return b
}

// Build returns a copy of the built state
func (b *GameStateBuilder) Build() *entities.GameState {
	return b.state.Clone()
}
