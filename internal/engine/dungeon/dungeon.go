// Package dungeon assembles runs: an ordered list of rooms ending in a boss.
package dungeon

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/enemies"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/rng"
)

// Room tuning
const (
	BaseRoomCount = 5

	EnemyChance        = 0.60
	BaseTreasureChance = 0.20
	BaseEmptyChance    = 0.20
	MinEmptyChance     = 0.05

	StaminaFactor   = 0.005
	StaminaBonusCap = 0.10

	TreasureLootCount = 1
	BossLootCount     = 2
)

// EnemySource builds enemies for rooms
type EnemySource interface {
	Generate(difficulty int, isBoss bool) *entities.Enemy
}

// ItemSource builds loot for rooms
type ItemSource interface {
	GenerateN(level, n int) []entities.Item
}

// RoomCount is the number of rooms at a difficulty
func RoomCount(difficulty int) int {
	return BaseRoomCount + enemies.ClampDifficulty(difficulty)/2
}

// StaminaBonus has diminishing returns: it stops growing at the cap
func StaminaBonus(stamina int) float64 {
	return math.Min(float64(max(stamina, 0))*StaminaFactor, StaminaBonusCap)
}

// RoomOdds are the probability bands for non-boss rooms
type RoomOdds struct {
	Enemy    float64
	Treasure float64
	Empty    float64
}

// Odds returns the bands for a stamina value. Whatever the bands leave
// uncovered rolls as an enemy room.
func Odds(stamina int) RoomOdds {
	bonus := StaminaBonus(stamina)
	return RoomOdds{
		Enemy:    EnemyChance,
		Treasure: BaseTreasureChance + bonus/2,
		Empty:    math.Max(MinEmptyChance, BaseEmptyChance-bonus),
	}
}

// Input describes the run to build
type Input struct {
	Difficulty int
	// Stamina is the effective stamina of the player, including gear
	Stamina int
	// LootLevel drives item rarity. Zero falls back to Difficulty.
	LootLevel int
}

// Config holds the dependencies for a Generator
type Config struct {
	Enemies     EnemySource
	Loot        ItemSource
	Random      rng.Source
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Enemies == nil {
		vb.RequiredField("Enemies")
	}
	if c.Loot == nil {
		vb.RequiredField("Loot")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Generator builds dungeons
type Generator struct {
	enemies EnemySource
	loot    ItemSource
	random  rng.Source
	ids     idgen.Generator
}

// New creates a dungeon generator
func New(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid dungeon config")
	}
	return &Generator{
		enemies: cfg.Enemies,
		loot:    cfg.Loot,
		random:  cfg.Random,
		ids:     cfg.IDGenerator,
	}, nil
}

// RollRoomType draws one value and walks enemy, treasure, empty
func (g *Generator) RollRoomType(odds RoomOdds) entities.RoomType {
	roll := g.random.Float64()
	switch {
	case roll < odds.Enemy:
		return entities.RoomTypeEnemy
	case roll < odds.Enemy+odds.Treasure:
		return entities.RoomTypeTreasure
	case roll < odds.Enemy+odds.Treasure+odds.Empty:
		return entities.RoomTypeEmpty
	default:
		return entities.RoomTypeEnemy
	}
}

// Generate builds a fresh run. The last room is always the boss.
func (g *Generator) Generate(input Input) *entities.Dungeon {
	difficulty := enemies.ClampDifficulty(input.Difficulty)
	lootLevel := input.LootLevel
	if lootLevel <= 0 {
		lootLevel = difficulty
	}

	odds := Odds(input.Stamina)
	count := RoomCount(difficulty)
	rooms := make([]entities.DungeonRoom, 0, count)

	for i := 0; i < count; i++ {
		room := entities.DungeonRoom{ID: fmt.Sprintf("room_%d", i)}

		if i == count-1 {
			room.Type = entities.RoomTypeBoss
		} else {
			room.Type = g.RollRoomType(odds)
		}

		switch room.Type {
		case entities.RoomTypeEnemy:
			room.Enemy = g.enemies.Generate(difficulty, false)
		case entities.RoomTypeTreasure:
			room.Loot = g.loot.GenerateN(lootLevel, TreasureLootCount)
		case entities.RoomTypeBoss:
			room.Enemy = g.enemies.Generate(difficulty, true)
			room.Loot = g.loot.GenerateN(lootLevel, BossLootCount)
		}

		rooms = append(rooms, room)
	}

	return &entities.Dungeon{
		ID:               g.ids.Generate(),
		Rooms:            rooms,
		CurrentRoomIndex: 0,
		Completed:        false,
		Difficulty:       difficulty,
		CombatPhase:      entities.CombatIdle,
	}
}

// CollectLoot returns the room's loot and empties it. A second call
// returns nothing.
func CollectLoot(room *entities.DungeonRoom) []entities.Item {
	if room == nil || len(room.Loot) == 0 {
		return []entities.Item{}
	}
	loot := room.Loot
	room.Loot = nil
	return loot
}
