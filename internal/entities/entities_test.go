package entities_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
)

type EntitiesTestSuite struct {
	suite.Suite
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) newState() *entities.GameState {
	restored := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	return &entities.GameState{
		Player: &entities.PlayerCharacter{
			Name:  "Ada",
			Stats: entities.CharacterStats{Strength: 3, Power: 3, Endurance: 3, Stamina: 3, Level: 1},
			Inventory: []entities.Item{
				{ID: "item_1", Name: "Iron Sword", Type: entities.ItemTypeWeapon, StatBonus: &entities.StatBonus{Strength: 4}},
			},
			EquippedItems: entities.EquippedItems{
				Armor: &entities.Item{ID: "item_2", Type: entities.ItemTypeArmor, StatBonus: &entities.StatBonus{Endurance: 2}},
			},
			PersonalRecords:       map[string]entities.PersonalRecord{"bench": {ExerciseID: "bench", Value: 135}},
			LastHealthRestoreTime: &restored,
		},
		CurrentDungeon: &entities.Dungeon{
			ID:    "dungeon_1",
			Rooms: []entities.DungeonRoom{{ID: "room_0", Type: entities.RoomTypeBoss, Enemy: &entities.Enemy{ID: "enemy_1", Health: 10}}},
		},
		AvailableDungeons: 1,
	}
}

func (s *EntitiesTestSuite) TestCloneIsDeep() {
	original := s.newState()
	clone := original.Clone()

	clone.Player.Inventory[0].StatBonus.Strength = 99
	clone.Player.EquippedItems.Armor.Name = "changed"
	clone.Player.PersonalRecords["bench"] = entities.PersonalRecord{Value: 1}
	clone.Player.LastHealthRestoreTime = nil
	clone.CurrentDungeon.Rooms[0].Enemy.Health = 0
	clone.CurrentDungeon.Rooms[0].Cleared = true

	s.Equal(4, original.Player.Inventory[0].StatBonus.Strength)
	s.Empty(original.Player.EquippedItems.Armor.Name)
	s.Equal(135.0, original.Player.PersonalRecords["bench"].Value)
	s.NotNil(original.Player.LastHealthRestoreTime)
	s.Equal(10, original.CurrentDungeon.Rooms[0].Enemy.Health)
	s.False(original.CurrentDungeon.Rooms[0].Cleared)
}

func (s *EntitiesTestSuite) TestNormalizeOldSnapshot() {
	// snapshot written before potions, restore time and run bookkeeping existed
	raw := `{
		"player": {
			"name": "Old Timer",
			"stats": {"strength": 5, "power": 4, "endurance": 6, "stamina": 3, "level": 2, "experience": 40},
			"baseStats": {"strength": 3, "power": 3, "endurance": 3, "stamina": 3, "level": 1, "experience": 0},
			"health": 140,
			"maxHealth": 150,
			"inventory": [],
			"equippedItems": {},
			"workoutLogs": [{"id": "w1", "date": "2024-05-01T10:00:00.000Z", "exercises": null, "completed": true, "dungeonCompleted": false}]
		},
		"currentDungeon": {"id": "d1", "rooms": [], "currentRoomIndex": 0, "completed": false, "difficulty": 1},
		"availableDungeons": 2
	}`

	var state entities.GameState
	s.Require().NoError(json.Unmarshal([]byte(raw), &state))
	state.Normalize()

	s.Equal(0, state.Player.HealthPotions)
	s.Nil(state.Player.LastHealthRestoreTime)
	s.NotNil(state.Player.PersonalRecords)
	s.NotNil(state.Player.WorkoutLogs[0].Exercises)
	s.Equal(entities.CombatIdle, state.CurrentDungeon.CombatPhase)
	s.Equal(2, state.AvailableDungeons)
}

func (s *EntitiesTestSuite) TestSnapshotUsesCamelCase() {
	data, err := json.Marshal(s.newState())
	s.Require().NoError(err)

	out := string(data)
	s.Contains(out, `"healthPotions":0`)
	s.Contains(out, `"lastHealthRestoreTime"`)
	s.Contains(out, `"currentRoomIndex":0`)
	s.Contains(out, `"availableDungeons":1`)
	s.Contains(out, `"statBonus":{"strength":4}`)
}

func (s *EntitiesTestSuite) TestSlots() {
	s.Equal(entities.SlotWeapon, entities.ItemTypeWeapon.Slot())
	s.Equal(entities.SlotArmor, entities.ItemTypeArmor.Slot())
	s.Equal(entities.SlotAccessory, entities.ItemTypeAccessory.Slot())
	s.Equal(entities.SlotAccessory, entities.ItemTypeCosmetic.Slot())

	var eq entities.EquippedItems
	eq.Set(entities.SlotWeapon, &entities.Item{ID: "w"})
	s.Len(eq.Items(), 1)
	eq.Set(entities.SlotWeapon, nil)
	s.Empty(eq.Items())
}

func (s *EntitiesTestSuite) TestStatsPlus() {
	base := entities.CharacterStats{Strength: 3, Power: 3, Endurance: 3, Stamina: 3, Level: 4}
	boosted := base.Plus(&entities.StatBonus{Strength: 2, Stamina: 1})
	s.Equal(5, boosted.Strength)
	s.Equal(4, boosted.Stamina)
	s.Equal(4, boosted.Level)
	s.Equal(base, base.Plus(nil))
	s.True((*entities.StatBonus)(nil).IsZero())
	s.Equal(2, (&entities.StatBonus{Strength: 2}).Get(entities.StatStrength))
}
