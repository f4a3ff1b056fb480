package combat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/combat"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/rng"
)

type CombatTestSuite struct {
	suite.Suite
}

func TestCombatSuite(t *testing.T) {
	suite.Run(t, new(CombatTestSuite))
}

func (s *CombatTestSuite) player(str, health int) *entities.PlayerCharacter {
	return &entities.PlayerCharacter{
		Name: "Tester",
		Stats: entities.CharacterStats{
			Strength:  str,
			Power:     0,
			Endurance: 3,
			Stamina:   3,
			Level:     1,
		},
		Health:    health,
		MaxHealth: 135,
		Inventory: []entities.Item{},
	}
}

func (s *CombatTestSuite) enemyRoom(health int) *entities.DungeonRoom {
	return &entities.DungeonRoom{
		ID:   "room_0",
		Type: entities.RoomTypeEnemy,
		Enemy: &entities.Enemy{
			ID:        "enemy_1",
			Name:      "Goblin",
			Health:    health,
			MaxHealth: health,
			Attack:    8,
			Defense:   2,
		},
	}
}

func (s *CombatTestSuite) TestCritChance() {
	s.InDelta(0.0, combat.CritChance(0), 1e-9)
	s.InDelta(0.15, combat.CritChance(3), 1e-9)
	s.InDelta(0.5, combat.CritChance(10), 1e-9)
	s.InDelta(0.5, combat.CritChance(40), 1e-9)
	s.InDelta(0.0, combat.CritChance(-2), 1e-9)
}

func (s *CombatTestSuite) TestDefenseAndEnemyDamage() {
	stats := entities.CharacterStats{Endurance: 3, Stamina: 3}
	s.Equal(4, combat.Defense(stats))
	s.Equal(4, combat.EnemyDamage(8, stats))

	s.Run("floors at one", func() {
		s.Equal(1, combat.EnemyDamage(1, stats))
		s.Equal(1, combat.EnemyDamage(0, entities.CharacterStats{Endurance: 50}))
	})
}

func (s *CombatTestSuite) TestPlayerDamage() {
	s.Run("weak hit floors at one", func() {
		dmg, crit := combat.PlayerDamage(rng.NewScripted(0.99, 0.0),
			entities.CharacterStats{Strength: 3, Power: 3}, 2)
		s.False(crit)
		s.Equal(1, dmg)
	})

	s.Run("critical hit", func() {
		dmg, crit := combat.PlayerDamage(rng.NewScripted(0.0, 0.0),
			entities.CharacterStats{Strength: 20, Power: 3}, 2)
		s.True(crit)
		// (20*1.75 - 2) * 0.9 = 29.7
		s.Equal(29, dmg)
	})

	s.Run("normal hit", func() {
		dmg, crit := combat.PlayerDamage(rng.NewScripted(0.99, 0.0),
			entities.CharacterStats{Strength: 20, Power: 3}, 2)
		s.False(crit)
		s.Equal(16, dmg)
	})

	s.Run("zero power never crits", func() {
		_, crit := combat.PlayerDamage(rng.NewScripted(0.0),
			entities.CharacterStats{Strength: 5}, 0)
		s.False(crit)
	})

	s.Run("defense above strength still hits", func() {
		dmg, _ := combat.PlayerDamage(rng.NewScripted(0.99, 0.99),
			entities.CharacterStats{Strength: 2}, 30)
		s.Equal(1, dmg)
	})
}

func (s *CombatTestSuite) TestAttackUntilPlayerDefeated() {
	player := s.player(3, 10)
	room := s.enemyRoom(5)
	enc := combat.NewEncounter(rng.NewScripted(0.0), player, room, "")
	s.Equal(entities.CombatIdle, enc.Phase())

	first := enc.Attack()
	s.True(first.Applied)
	s.Equal(1, first.PlayerDamage)
	s.Equal(4, first.EnemyDamage)
	s.Equal(4, room.Enemy.Health)
	s.Equal(6, player.Health)
	s.Equal(entities.CombatPlayerTurn, first.Phase)

	enc.Attack()
	s.Equal(2, player.Health)

	last := enc.Attack()
	s.True(last.PlayerDefeated)
	s.Equal(0, player.Health)
	s.Equal(2, room.Enemy.Health)
	s.Equal(entities.CombatPlayerDefeated, enc.Phase())
	s.True(enc.Over())

	s.Run("no attacks after defeat", func() {
		out := enc.Attack()
		s.False(out.Applied)
		s.Equal(0, player.Health)
		s.Equal(2, room.Enemy.Health)
		s.Equal(entities.CombatPlayerDefeated, out.Phase)
	})
}

func (s *CombatTestSuite) TestAttackKillsEnemy() {
	player := s.player(20, 50)
	room := s.enemyRoom(10)
	room.Type = entities.RoomTypeBoss
	room.Loot = []entities.Item{
		{ID: "item_1", Name: "Iron Sword", Type: entities.ItemTypeWeapon, Rarity: entities.RarityCommon},
		{ID: "item_2", Name: "Leather Armor", Type: entities.ItemTypeArmor, Rarity: entities.RarityCommon},
	}

	enc := combat.NewEncounter(rng.NewScripted(0.0), player, room, entities.CombatIdle)
	out := enc.Attack()

	s.True(out.Applied)
	s.True(out.EnemyDefeated)
	s.Equal(0, out.EnemyDamage)
	s.Equal(50, player.Health)
	s.Equal(0, room.Enemy.Health)
	s.True(room.Cleared)
	s.Empty(room.Loot)
	s.Len(out.Loot, 2)
	s.Len(player.Inventory, 2)
	s.Equal(entities.CombatEnemyDefeated, enc.Phase())

	s.Run("loot is collected once", func() {
		again := enc.Attack()
		s.False(again.Applied)
		s.Len(player.Inventory, 2)
	})
}

func (s *CombatTestSuite) TestAttackUsesEquipment() {
	player := s.player(3, 50)
	player.EquippedItems.Weapon = &entities.Item{
		ID:        "item_9",
		Name:      "Dragon Slayer",
		Type:      entities.ItemTypeWeapon,
		Rarity:    entities.RarityLegendary,
		StatBonus: &entities.StatBonus{Strength: 17},
	}
	room := s.enemyRoom(100)

	out := combat.NewEncounter(rng.NewScripted(0.0), player, room, "").Attack()
	s.Equal(16, out.PlayerDamage)
	s.Equal(3, player.Stats.Strength)
}

func (s *CombatTestSuite) TestAttackWithoutEnemy() {
	player := s.player(3, 50)
	room := &entities.DungeonRoom{ID: "room_1", Type: entities.RoomTypeEmpty}

	out := combat.NewEncounter(rng.NewScripted(0.0), player, room, "").Attack()
	s.False(out.Applied)
	s.Equal(50, player.Health)
}

func (s *CombatTestSuite) TestNoHealthNoFight() {
	player := s.player(3, 0)
	room := s.enemyRoom(5)
	enc := combat.NewEncounter(rng.NewScripted(0.0), player, room, entities.CombatIdle)

	s.True(enc.Over())
	out := enc.Attack()
	s.False(out.Applied)
	s.Equal(5, room.Enemy.Health)
	s.False(room.Cleared)
}

func (s *CombatTestSuite) TestOpenTreasure() {
	player := s.player(3, 50)
	room := &entities.DungeonRoom{
		ID:   "room_2",
		Type: entities.RoomTypeTreasure,
		Loot: []entities.Item{{ID: "item_1", Name: "Sweatband", Type: entities.ItemTypeAccessory}},
	}

	items := combat.OpenTreasure(player, room)
	s.Len(items, 1)
	s.True(room.Cleared)
	s.Empty(room.Loot)
	s.Len(player.Inventory, 1)

	s.Nil(combat.OpenTreasure(player, room))
	s.Len(player.Inventory, 1)

	s.Run("not a treasure room", func() {
		s.Nil(combat.OpenTreasure(player, s.enemyRoom(5)))
	})

	s.Run("player without health", func() {
		fallen := s.player(3, 0)
		chest := &entities.DungeonRoom{
			ID:   "room_4",
			Type: entities.RoomTypeTreasure,
			Loot: []entities.Item{{ID: "item_2", Name: "Chalk", Type: entities.ItemTypeAccessory}},
		}
		s.Nil(combat.OpenTreasure(fallen, chest))
		s.False(chest.Cleared)
		s.Len(chest.Loot, 1)
		s.Empty(fallen.Inventory)
	})
}

func (s *CombatTestSuite) TestEnterRoom() {
	empty := &entities.DungeonRoom{ID: "room_3", Type: entities.RoomTypeEmpty}
	s.True(combat.EnterRoom(empty))
	s.True(empty.Cleared)
	s.False(combat.EnterRoom(empty))

	enemy := s.enemyRoom(5)
	s.False(combat.EnterRoom(enemy))
	s.False(enemy.Cleared)
}

func (s *CombatTestSuite) TestAutoAttack() {
	s.Run("stops on defeat", func() {
		player := s.player(3, 10)
		room := s.enemyRoom(5)
		enc := combat.NewEncounter(rng.NewScripted(0.0), player, room, "")

		var seen []combat.Exchange
		last, err := enc.AutoAttack(context.Background(), time.Millisecond, func(e combat.Exchange) {
			seen = append(seen, e)
		})
		s.Require().NoError(err)
		s.True(last.PlayerDefeated)
		s.Len(seen, 3)
		s.Equal(0, player.Health)
	})

	s.Run("already over", func() {
		player := s.player(3, 0)
		enc := combat.NewEncounter(rng.NewScripted(0.0), player, s.enemyRoom(5), entities.CombatPlayerDefeated)

		last, err := enc.AutoAttack(context.Background(), time.Millisecond, nil)
		s.Require().NoError(err)
		s.False(last.Applied)
	})

	s.Run("cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		room := s.enemyRoom(5)
		enc := combat.NewEncounter(rng.NewScripted(0.0), s.player(3, 10), room, "")
		last, err := enc.AutoAttack(ctx, time.Hour, nil)
		s.ErrorIs(err, context.Canceled)
		s.False(last.Applied)
		s.Equal(5, room.Enemy.Health)
	})
}
