package testutils

import (
	"time"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/testutils/builders"
)

const (
	// TestUserID is the default user for snapshot fixtures
	TestUserID = "user_test123"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Iron Ivy"
)

// FixtureTime is the clock reading used by fixtures
var FixtureTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// NewGameState returns a level 1 character with one dungeon token
func NewGameState() *entities.GameState {
	return builders.NewGameStateBuilder().
		WithName(TestCharacterName).
		WithRestoreTime(FixtureTime).
		Build()
}

// DemoHero returns a seasoned character: level 5, a full set of gear,
// a few potions and recorded lifts
func DemoHero() *entities.GameState {
	return builders.NewGameStateBuilder().
		WithName("Demo Hero").
		WithLevel(5).
		WithRestoreTime(FixtureTime).
		WithEquipped(entities.Item{
			ID:          "item_demo_weapon",
			Name:        "Steel Sword",
			Type:        entities.ItemTypeWeapon,
			Rarity:      entities.RarityUncommon,
			StatBonus:   &entities.StatBonus{Strength: 4},
			Description: "Well balanced steel blade",
			Icon:        "⚔️",
		}).
		WithEquipped(entities.Item{
			ID:          "item_demo_armor",
			Name:        "Chain Mail",
			Type:        entities.ItemTypeArmor,
			Rarity:      entities.RarityUncommon,
			StatBonus:   &entities.StatBonus{Endurance: 4},
			Description: "Interlocking metal rings",
			Icon:        "🛡️",
		}).
		WithEquipped(entities.Item{
			ID:          "item_demo_ring",
			Name:        "Ring of Vigor",
			Type:        entities.ItemTypeAccessory,
			Rarity:      entities.RarityRare,
			StatBonus:   &entities.StatBonus{Stamina: 3, Power: 1},
			Description: "Pulses with energy",
			Icon:        "💍",
		}).
		WithPotions(3).
		WithDungeons(2).
		WithRecord("bench", 185, FixtureTime).
		WithRecord("squat", 225, FixtureTime).
		WithRecord("mile", 480, FixtureTime).
		Build()
}
