package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-gains/internal/engine"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/combat"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/content"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/progression"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/rng"
)

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	clock  *clock.Fixed
	engine engine.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	s.engine = s.newEngine(rng.NewSeeded(42))
}

func (s *EngineTestSuite) newEngine(src rng.Source) engine.Engine {
	e, err := engine.New(&engine.Config{
		Tables: content.Default(),
		Random: src,
		Clock:  s.clock,
		IDs:    idgen.NewSequentialSet(),
	})
	s.Require().NoError(err)
	return e
}

func (s *EngineTestSuite) newCharacter(lifts ...entities.Exercise) *entities.GameState {
	out, err := s.engine.CreateCharacter(s.ctx, &engine.CreateCharacterInput{
		Name:          "Gainz",
		StartingLifts: lifts,
	})
	s.Require().NoError(err)
	s.Require().True(out.Applied)
	return out.State
}

func bench(weight float64) entities.Exercise {
	return entities.Exercise{
		ID:       "bench",
		Name:     "Bench Press",
		Category: entities.CategoryBench,
		StatType: entities.StatStrength,
		Weight:   weight,
		Reps:     5,
		Sets:     3,
	}
}

func mileRun(seconds float64) entities.Exercise {
	return entities.Exercise{
		ID:       "mile",
		Name:     "Mile Run",
		Category: entities.CategoryCardio,
		StatType: entities.StatStamina,
		Time:     seconds,
		Distance: 1,
	}
}

// withRun attaches a hand-built dungeon to state
func withRun(state *entities.GameState, rooms ...entities.DungeonRoom) *entities.GameState {
	state.CurrentDungeon = &entities.Dungeon{
		ID:          "dungeon_test",
		Rooms:       rooms,
		Difficulty:  1,
		CombatPhase: entities.CombatIdle,
	}
	return state
}

func enemyRoom(id string, health, attack, defense int) entities.DungeonRoom {
	return entities.DungeonRoom{
		ID:   id,
		Type: entities.RoomTypeEnemy,
		Enemy: &entities.Enemy{
			ID:        "enemy_" + id,
			Name:      "Goblin",
			Health:    health,
			MaxHealth: health,
			Attack:    attack,
			Defense:   defense,
		},
	}
}

func bossRoom(id string, health int, loot ...entities.Item) entities.DungeonRoom {
	room := enemyRoom(id, health, 10, 0)
	room.Type = entities.RoomTypeBoss
	room.Enemy.Name = "Goblin Boss"
	room.Loot = loot
	return room
}

func item(id string, itemType entities.ItemType, bonus *entities.StatBonus) entities.Item {
	return entities.Item{
		ID:        id,
		Name:      "Test " + id,
		Type:      itemType,
		Rarity:    entities.RarityCommon,
		StatBonus: bonus,
	}
}

func (s *EngineTestSuite) TestNew() {
	s.Run("requires dependencies", func() {
		_, err := engine.New(&engine.Config{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "Tables")
		s.Contains(err.Error(), "Clock")
	})

	s.Run("nil config", func() {
		_, err := engine.New(nil)
		s.Require().Error(err)
	})
}

func (s *EngineTestSuite) TestDungeonDifficulty() {
	testCases := []struct {
		level    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{3, 1},
		{4, 2},
		{7, 3},
		{21, 7},
		{22, 8},
		{25, 8},
	}
	for _, tc := range testCases {
		s.Equal(tc.expected, s.engine.DungeonDifficulty(tc.level), "level %d", tc.level)
	}
}

func (s *EngineTestSuite) TestCreateCharacter() {
	state := s.newCharacter(bench(135), mileRun(480))

	player := state.Player
	s.Equal("Gainz", player.Name)
	s.Equal(3, player.Stats.Strength)
	s.Equal(3, player.Stats.Power)
	s.Equal(3, player.Stats.Endurance)
	s.Equal(3, player.Stats.Stamina)
	s.Equal(1, player.Stats.Level)
	s.Equal(player.Stats, player.BaseStats)
	s.Equal(125, player.MaxHealth)
	s.Equal(125, player.Health)
	s.Empty(player.Inventory)
	s.Zero(player.HealthPotions)
	s.Equal(1, state.AvailableDungeons)
	s.Nil(state.CurrentDungeon)

	s.Run("lifts are record baselines", func() {
		s.Require().Contains(player.PersonalRecords, "bench")
		s.Equal(135.0, player.PersonalRecords["bench"].Value)
		s.Equal(480.0, player.PersonalRecords["mile"].Value)
	})

	s.Run("name is required", func() {
		_, err := s.engine.CreateCharacter(s.ctx, &engine.CreateCharacterInput{Name: "   "})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *EngineTestSuite) TestStartDungeonWithoutTokens() {
	state := s.newCharacter()
	state.AvailableDungeons = 0

	out, err := s.engine.StartDungeon(s.ctx, &engine.StartDungeonInput{State: state})
	s.Require().NoError(err)
	s.False(out.Applied)
	s.Nil(out.Dungeon)
	s.Equal(state, out.State)
}

func (s *EngineTestSuite) TestLogWorkoutBeatsRecord() {
	state := s.newCharacter(bench(100))

	workout := entities.WorkoutLog{
		Exercises: []entities.Exercise{bench(105)},
		Completed: true,
	}
	out, err := s.engine.LogWorkout(s.ctx, &engine.LogWorkoutInput{State: state, Workout: workout})
	s.Require().NoError(err)
	s.True(out.Applied)

	next := out.State
	s.Equal(2, next.AvailableDungeons)
	s.Equal(1, next.Player.HealthPotions)
	s.Equal(105.0, next.Player.PersonalRecords["bench"].Value)
	s.Equal(s.clock.Now(), next.Player.PersonalRecords["bench"].Date)
	s.Len(out.NewRecords, 1)
	s.Equal(1, out.PotionsEarned)
	s.True(out.TokenEarned)
	s.Equal(75, out.ExperienceGained)
	s.False(out.LeveledUp)
	s.Require().Len(next.Player.WorkoutLogs, 1)
	s.Equal("workout_1", next.Player.WorkoutLogs[0].ID)

	s.Run("input is untouched", func() {
		s.Equal(1, state.AvailableDungeons)
		s.Zero(state.Player.HealthPotions)
		s.Equal(100.0, state.Player.PersonalRecords["bench"].Value)
		s.Empty(state.Player.WorkoutLogs)
	})

	s.Run("repeating the same result earns nothing", func() {
		again, err := s.engine.LogWorkout(s.ctx, &engine.LogWorkoutInput{
			State:   next,
			Workout: entities.WorkoutLog{Exercises: []entities.Exercise{bench(105)}},
		})
		s.Require().NoError(err)
		s.Equal(1, again.State.Player.HealthPotions)
		s.Equal(105.0, again.State.Player.PersonalRecords["bench"].Value)
		s.Empty(again.NewRecords)
		s.Equal(2, again.State.AvailableDungeons)
		s.Len(again.State.Player.WorkoutLogs, 2)
	})
}

func (s *EngineTestSuite) TestLogWorkoutCardio() {
	state := s.newCharacter(mileRun(600))

	s.Run("slower is not a record", func() {
		out, err := s.engine.LogWorkout(s.ctx, &engine.LogWorkoutInput{
			State:   state,
			Workout: entities.WorkoutLog{Exercises: []entities.Exercise{mileRun(610)}},
		})
		s.Require().NoError(err)
		s.Zero(out.PotionsEarned)
		s.Equal(600.0, out.State.Player.PersonalRecords["mile"].Value)
	})

	s.Run("faster is a record", func() {
		out, err := s.engine.LogWorkout(s.ctx, &engine.LogWorkoutInput{
			State:   state,
			Workout: entities.WorkoutLog{Exercises: []entities.Exercise{mileRun(590)}},
		})
		s.Require().NoError(err)
		s.Equal(1, out.PotionsEarned)
		s.Equal(590.0, out.State.Player.PersonalRecords["mile"].Value)
		// nine full minutes of running
		s.Equal(5+90, out.ExperienceGained)
	})
}

func (s *EngineTestSuite) TestLogWorkoutFirstSighting() {
	state := s.newCharacter()

	out, err := s.engine.LogWorkout(s.ctx, &engine.LogWorkoutInput{
		State:   state,
		Workout: entities.WorkoutLog{Exercises: []entities.Exercise{bench(95)}},
	})
	s.Require().NoError(err)
	s.Zero(out.PotionsEarned)
	s.Zero(out.State.Player.HealthPotions)
	s.Equal(95.0, out.State.Player.PersonalRecords["bench"].Value)
	s.False(out.TokenEarned)
	s.Equal(1, out.State.AvailableDungeons)
}

func (s *EngineTestSuite) TestLogWorkoutLevelsUpOnce() {
	state := s.newCharacter()
	state.Player.Health = 10

	big := bench(100)
	big.Sets, big.Reps = 12, 10 // 600 xp

	out, err := s.engine.LogWorkout(s.ctx, &engine.LogWorkoutInput{
		State:   state,
		Workout: entities.WorkoutLog{Exercises: []entities.Exercise{big}},
	})
	s.Require().NoError(err)
	s.True(out.LeveledUp)

	player := out.State.Player
	s.Equal(2, player.Stats.Level)
	s.Equal(450, player.Stats.Experience)
	s.Equal(4, player.Stats.Strength)
	s.Equal(4, player.Stats.Stamina)
	s.Equal(140, player.MaxHealth)
	s.Equal(140, player.Health)
	s.Equal(3, player.BaseStats.Strength)

	s.Require().NotNil(out.State.LevelUpInfo)
	s.Equal(2, out.State.LevelUpInfo.NewLevel)
	s.Equal(1, out.State.LevelUpInfo.OldStats.Level)
	s.Equal(600, out.State.LevelUpInfo.OldStats.Experience)

	s.Run("clear level up info", func() {
		cleared, err := s.engine.ClearLevelUpInfo(s.ctx, &engine.ClearLevelUpInfoInput{State: out.State})
		s.Require().NoError(err)
		s.True(cleared.Applied)
		s.Nil(cleared.State.LevelUpInfo)

		again, err := s.engine.ClearLevelUpInfo(s.ctx, &engine.ClearLevelUpInfoInput{State: cleared.State})
		s.Require().NoError(err)
		s.False(again.Applied)
	})
}

func (s *EngineTestSuite) TestLogWorkoutRegeneratesFirst() {
	state := s.newCharacter()
	state.Player.Health = 20
	s.clock.Advance(25 * time.Hour)

	out, err := s.engine.LogWorkout(s.ctx, &engine.LogWorkoutInput{
		State:   state,
		Workout: entities.WorkoutLog{},
	})
	s.Require().NoError(err)
	s.True(out.HealthRestored)
	s.Equal(125, out.State.Player.Health)
}

func (s *EngineTestSuite) TestStartDungeon() {
	state := s.newCharacter()

	out, err := s.engine.StartDungeon(s.ctx, &engine.StartDungeonInput{State: state})
	s.Require().NoError(err)
	s.Require().True(out.Applied)

	run := out.State.CurrentDungeon
	s.Require().NotNil(run)
	s.Equal(1, run.Difficulty)
	s.Len(run.Rooms, 5)
	s.Equal(entities.RoomTypeBoss, run.Rooms[4].Type)
	s.Zero(run.CurrentRoomIndex)
	s.False(run.Completed)
	s.Zero(out.State.AvailableDungeons)
	s.Equal(entities.CombatIdle, run.CombatPhase)

	first := run.Rooms[0]
	s.Equal(first.Type == entities.RoomTypeEmpty, first.Cleared)
	for _, room := range run.Rooms[1:] {
		s.False(room.Cleared)
	}

	s.Run("one run at a time", func() {
		state := out.State
		state.AvailableDungeons = 3
		again, err := s.engine.StartDungeon(s.ctx, &engine.StartDungeonInput{State: state})
		s.Require().NoError(err)
		s.False(again.Applied)
		s.Equal(run.ID, again.State.CurrentDungeon.ID)
		s.Equal(3, again.State.AvailableDungeons)
	})
}

func (s *EngineTestSuite) TestStartDungeonScalesWithLevel() {
	state := s.newCharacter()
	state.Player.Stats.Level = 10

	out, err := s.engine.StartDungeon(s.ctx, &engine.StartDungeonInput{State: state})
	s.Require().NoError(err)
	s.Equal(4, out.State.CurrentDungeon.Difficulty)
	s.Len(out.State.CurrentDungeon.Rooms, 7)
}

func (s *EngineTestSuite) TestAttackDefeatsEnemy() {
	eng := s.newEngine(rng.NewScripted(0.0))
	state := withRun(s.newCharacter(),
		bossRoom("room_0", 1,
			item("loot_1", entities.ItemTypeWeapon, &entities.StatBonus{Strength: 2}),
			item("loot_2", entities.ItemTypeArmor, nil),
		),
	)

	out, err := eng.Attack(s.ctx, &engine.AttackInput{State: state})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.True(out.Exchange.EnemyDefeated)

	run := out.State.CurrentDungeon
	s.True(run.Rooms[0].Cleared)
	s.Empty(run.Rooms[0].Loot)
	s.Equal(1, run.EnemiesDefeated)
	s.Equal(entities.CombatEnemyDefeated, run.CombatPhase)
	s.Len(out.State.Player.Inventory, 2)

	s.Run("input room is untouched", func() {
		s.False(state.CurrentDungeon.Rooms[0].Cleared)
		s.Len(state.CurrentDungeon.Rooms[0].Loot, 2)
		s.Equal(1, state.CurrentDungeon.Rooms[0].Enemy.Health)
	})

	s.Run("loot is granted once", func() {
		again, err := eng.Attack(s.ctx, &engine.AttackInput{State: out.State})
		s.Require().NoError(err)
		s.False(again.Applied)
		s.Len(again.State.Player.Inventory, 2)
		s.Equal(1, again.State.CurrentDungeon.EnemiesDefeated)
	})
}

func (s *EngineTestSuite) TestAutoAttack() {
	eng := s.newEngine(rng.NewScripted(0.0))
	state := withRun(s.newCharacter(),
		enemyRoom("room_0", 10, 1, 0),
		bossRoom("room_1", 100),
	)

	s.Run("fights until the enemy falls", func() {
		var seen int
		out, err := eng.AutoAttack(s.ctx, &engine.AutoAttackInput{
			State:      state,
			Interval:   time.Millisecond,
			OnExchange: func(combat.Exchange) { seen++ },
		})
		s.Require().NoError(err)
		s.True(out.Applied)
		s.False(out.Stopped)
		s.True(out.Last.EnemyDefeated)
		s.Len(out.Exchanges, seen)
		s.GreaterOrEqual(seen, 2)
		s.Equal(1, out.State.CurrentDungeon.EnemiesDefeated)
		s.True(out.State.CurrentDungeon.Rooms[0].Cleared)
		s.Equal(10, state.CurrentDungeon.Rooms[0].Enemy.Health)
	})

	s.Run("cancelled before the first tick", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()

		out, err := eng.AutoAttack(ctx, &engine.AutoAttackInput{State: state, Interval: time.Hour})
		s.Require().NoError(err)
		s.True(out.Stopped)
		s.False(out.Applied)
		s.Empty(out.Exchanges)
	})

	s.Run("no run", func() {
		out, err := eng.AutoAttack(s.ctx, &engine.AutoAttackInput{State: s.newCharacter()})
		s.Require().NoError(err)
		s.False(out.Applied)
	})
}

func (s *EngineTestSuite) TestPlayerDefeat() {
	eng := s.newEngine(rng.NewScripted(0.0))
	state := withRun(s.newCharacter(),
		enemyRoom("room_0", 100, 50, 0),
		bossRoom("room_1", 100),
	)
	state.Player.Health = 1
	state.CurrentDungeon.EnemiesDefeated = 2

	out, err := eng.Attack(s.ctx, &engine.AttackInput{State: state})
	s.Require().NoError(err)
	s.True(out.Exchange.PlayerDefeated)
	s.Zero(out.State.Player.Health)
	s.True(out.State.CurrentDungeon.PlayerDefeated())

	s.Run("no further attacks", func() {
		again, err := eng.Attack(s.ctx, &engine.AttackInput{State: out.State})
		s.Require().NoError(err)
		s.False(again.Applied)
	})

	s.Run("cannot advance", func() {
		adv, err := eng.AdvanceRoom(s.ctx, &engine.AdvanceRoomInput{State: out.State})
		s.Require().NoError(err)
		s.False(adv.Applied)
	})

	s.Run("finish grants nothing", func() {
		fin, err := eng.FinishDungeon(s.ctx, &engine.FinishDungeonInput{State: out.State})
		s.Require().NoError(err)
		s.True(fin.Applied)
		s.True(fin.PlayerDefeated)
		s.Zero(fin.ExperienceGained)
		s.Zero(fin.State.Player.Health)
		s.Nil(fin.State.CurrentDungeon)
		s.Zero(fin.State.Player.Stats.Experience)
	})

	s.Run("explicit completion counts kills only", func() {
		done, err := eng.CompleteDungeon(s.ctx, &engine.CompleteDungeonInput{
			State:           out.State,
			RemainingHealth: 0,
			EnemiesDefeated: 2,
		})
		s.Require().NoError(err)
		s.Equal(50, done.ExperienceGained)
		s.Zero(done.State.Player.Health)
		s.False(done.LeveledUp)
		s.Equal(1, done.State.Player.Stats.Level)
		s.True(done.State.Player.FirstDungeonCompleted)
	})
}

func (s *EngineTestSuite) TestDefeatSkipsCarriedOverLevelUp() {
	eng := s.newEngine(rng.NewScripted(0.0))
	state := withRun(s.newCharacter(), enemyRoom("room_0", 100, 50, 0))
	state.Player.Health = 1
	// already past the level 2 threshold from an earlier reward
	state.Player.Stats.Experience = progression.XPForLevel(1) + 5

	out, err := eng.Attack(s.ctx, &engine.AttackInput{State: state})
	s.Require().NoError(err)
	s.Require().True(out.Exchange.PlayerDefeated)

	fin, err := eng.FinishDungeon(s.ctx, &engine.FinishDungeonInput{State: out.State})
	s.Require().NoError(err)
	s.True(fin.Applied)
	s.True(fin.PlayerDefeated)
	s.False(fin.LeveledUp)
	s.Zero(fin.ExperienceGained)
	s.Equal(1, fin.State.Player.Stats.Level)
	s.Equal(progression.XPForLevel(1)+5, fin.State.Player.Stats.Experience)
	s.Nil(fin.State.LevelUpInfo)
	s.True(fin.State.Player.FirstDungeonCompleted)
}

func (s *EngineTestSuite) TestNoActionsAtZeroHealth() {
	eng := s.newEngine(rng.NewScripted(0.0))

	s.Run("cannot start a run", func() {
		state := s.newCharacter()
		state.Player.Health = 0

		out, err := eng.StartDungeon(s.ctx, &engine.StartDungeonInput{State: state})
		s.Require().NoError(err)
		s.False(out.Applied)
		s.Nil(out.State.CurrentDungeon)
		s.Equal(1, out.State.AvailableDungeons)
	})

	s.Run("cannot attack", func() {
		state := withRun(s.newCharacter(), enemyRoom("room_0", 35, 5, 0))
		state.Player.Health = 0

		out, err := eng.Attack(s.ctx, &engine.AttackInput{State: state})
		s.Require().NoError(err)
		s.False(out.Applied)
		s.Zero(out.Exchange.PlayerDamage)
		s.Equal(35, out.State.CurrentDungeon.Rooms[0].Enemy.Health)
	})

	s.Run("cannot auto attack", func() {
		state := withRun(s.newCharacter(), enemyRoom("room_0", 35, 5, 0))
		state.Player.Health = 0

		out, err := eng.AutoAttack(s.ctx, &engine.AutoAttackInput{State: state, Interval: time.Millisecond})
		s.Require().NoError(err)
		s.False(out.Applied)
		s.Empty(out.Exchanges)
	})

	s.Run("cannot open treasure", func() {
		state := withRun(s.newCharacter(), entities.DungeonRoom{
			ID:   "room_0",
			Type: entities.RoomTypeTreasure,
			Loot: []entities.Item{item("loot_1", entities.ItemTypeAccessory, nil)},
		})
		state.Player.Health = 0

		out, err := eng.OpenTreasure(s.ctx, &engine.OpenTreasureInput{State: state})
		s.Require().NoError(err)
		s.False(out.Applied)
		s.Empty(out.State.Player.Inventory)
		s.False(out.State.CurrentDungeon.Rooms[0].Cleared)
	})
}

func (s *EngineTestSuite) TestAdvanceRoom() {
	eng := s.newEngine(rng.NewScripted(0.0))
	state := withRun(s.newCharacter(),
		enemyRoom("room_0", 1, 1, 0),
		entities.DungeonRoom{ID: "room_1", Type: entities.RoomTypeEmpty},
		entities.DungeonRoom{
			ID:   "room_2",
			Type: entities.RoomTypeTreasure,
			Loot: []entities.Item{item("loot_1", entities.ItemTypeAccessory, nil)},
		},
		bossRoom("room_3", 1),
	)

	s.Run("current room must be cleared", func() {
		out, err := eng.AdvanceRoom(s.ctx, &engine.AdvanceRoomInput{State: state})
		s.Require().NoError(err)
		s.False(out.Applied)
	})

	attacked, err := eng.Attack(s.ctx, &engine.AttackInput{State: state})
	s.Require().NoError(err)

	adv, err := eng.AdvanceRoom(s.ctx, &engine.AdvanceRoomInput{State: attacked.State})
	s.Require().NoError(err)
	s.True(adv.Applied)
	s.True(adv.AutoCleared)
	s.Equal(1, adv.State.CurrentDungeon.CurrentRoomIndex)
	s.Equal(entities.CombatIdle, adv.State.CurrentDungeon.CombatPhase)

	adv, err = eng.AdvanceRoom(s.ctx, &engine.AdvanceRoomInput{State: adv.State})
	s.Require().NoError(err)
	s.False(adv.AutoCleared)
	s.Equal(entities.RoomTypeTreasure, adv.Room.Type)

	s.Run("treasure must be opened", func() {
		blocked, err := eng.AdvanceRoom(s.ctx, &engine.AdvanceRoomInput{State: adv.State})
		s.Require().NoError(err)
		s.False(blocked.Applied)
	})

	opened, err := eng.OpenTreasure(s.ctx, &engine.OpenTreasureInput{State: adv.State})
	s.Require().NoError(err)
	s.True(opened.Applied)
	s.Len(opened.Items, 1)

	reopened, err := eng.OpenTreasure(s.ctx, &engine.OpenTreasureInput{State: opened.State})
	s.Require().NoError(err)
	s.False(reopened.Applied)

	adv, err = eng.AdvanceRoom(s.ctx, &engine.AdvanceRoomInput{State: opened.State})
	s.Require().NoError(err)
	s.True(adv.State.CurrentDungeon.OnLastRoom())

	killed, err := eng.Attack(s.ctx, &engine.AttackInput{State: adv.State})
	s.Require().NoError(err)
	s.True(killed.Exchange.EnemyDefeated)

	s.Run("finish requires completion", func() {
		early, err := eng.FinishDungeon(s.ctx, &engine.FinishDungeonInput{State: killed.State})
		s.Require().NoError(err)
		s.False(early.Applied)
	})

	last, err := eng.AdvanceRoom(s.ctx, &engine.AdvanceRoomInput{State: killed.State})
	s.Require().NoError(err)
	s.True(last.Completed)
	s.True(last.State.CurrentDungeon.Completed)

	fin, err := eng.FinishDungeon(s.ctx, &engine.FinishDungeonInput{State: last.State})
	s.Require().NoError(err)
	s.True(fin.Applied)
	s.False(fin.PlayerDefeated)
	// two kills at full health
	s.Equal(2*25+50, fin.ExperienceGained)
	s.Nil(fin.State.CurrentDungeon)
	s.True(fin.State.Player.FirstDungeonCompleted)
	s.Len(fin.State.Player.Inventory, 1)
}

func (s *EngineTestSuite) TestCompleteDungeon() {
	state := s.newCharacter()

	s.Run("clamps health", func() {
		out, err := s.engine.CompleteDungeon(s.ctx, &engine.CompleteDungeonInput{
			State:           state,
			RemainingHealth: 500,
			EnemiesDefeated: 1,
		})
		s.Require().NoError(err)
		s.Equal(125, out.State.Player.Health)
		s.Equal(75, out.ExperienceGained)
	})

	s.Run("levels up with info", func() {
		out, err := s.engine.CompleteDungeon(s.ctx, &engine.CompleteDungeonInput{
			State:           state,
			RemainingHealth: 62,
			EnemiesDefeated: 5,
		})
		s.Require().NoError(err)
		// 125 + floor(62/125*50)
		s.Equal(149, out.ExperienceGained)
		s.False(out.LeveledUp)

		out, err = s.engine.CompleteDungeon(s.ctx, &engine.CompleteDungeonInput{
			State:           out.State,
			RemainingHealth: 10,
			EnemiesDefeated: 1,
		})
		s.Require().NoError(err)
		s.True(out.LeveledUp)
		s.Equal(140, out.State.Player.Health)
		s.NotNil(out.State.LevelUpInfo)
	})

	s.Run("negative kills", func() {
		_, err := s.engine.CompleteDungeon(s.ctx, &engine.CompleteDungeonInput{
			State:           state,
			EnemiesDefeated: -1,
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *EngineTestSuite) TestEquipRoundTrip() {
	state := s.newCharacter()
	sword := item("sword", entities.ItemTypeWeapon, &entities.StatBonus{Strength: 3})
	charm := item("charm", entities.ItemTypeCosmetic, nil)
	state.Player.Inventory = []entities.Item{sword, charm}

	equipped, err := s.engine.EquipItem(s.ctx, &engine.EquipItemInput{State: state, ItemID: "sword"})
	s.Require().NoError(err)
	s.True(equipped.Applied)
	s.Equal(entities.SlotWeapon, equipped.Slot)
	s.Equal("sword", equipped.State.Player.EquippedItems.Weapon.ID)
	s.Len(equipped.State.Player.Inventory, 1)

	unequipped, err := s.engine.UnequipItem(s.ctx, &engine.UnequipItemInput{
		State: equipped.State,
		Slot:  entities.SlotWeapon,
	})
	s.Require().NoError(err)
	s.True(unequipped.Applied)
	s.Nil(unequipped.State.Player.EquippedItems.Weapon)
	s.ElementsMatch(state.Player.Inventory, unequipped.State.Player.Inventory)

	s.Run("cosmetics use the accessory slot", func() {
		out, err := s.engine.EquipItem(s.ctx, &engine.EquipItemInput{State: state, ItemID: "charm"})
		s.Require().NoError(err)
		s.Equal(entities.SlotAccessory, out.Slot)
		s.Equal("charm", out.State.Player.EquippedItems.Accessory.ID)
	})

	s.Run("occupied slot returns the old item", func() {
		axe := item("axe", entities.ItemTypeWeapon, nil)
		withAxe := equipped.State
		withAxe.Player.Inventory = append(withAxe.Player.Inventory, axe)

		out, err := s.engine.EquipItem(s.ctx, &engine.EquipItemInput{State: withAxe, ItemID: "axe"})
		s.Require().NoError(err)
		s.Require().NotNil(out.Replaced)
		s.Equal("sword", out.Replaced.ID)
		s.Equal("axe", out.State.Player.EquippedItems.Weapon.ID)
		s.ElementsMatch([]string{"charm", "sword"}, itemIDs(out.State.Player.Inventory))
	})

	s.Run("missing item", func() {
		out, err := s.engine.EquipItem(s.ctx, &engine.EquipItemInput{State: state, ItemID: "nope"})
		s.Require().NoError(err)
		s.False(out.Applied)
	})

	s.Run("empty slot", func() {
		out, err := s.engine.UnequipItem(s.ctx, &engine.UnequipItemInput{State: state, Slot: entities.SlotArmor})
		s.Require().NoError(err)
		s.False(out.Applied)
	})

	s.Run("unknown slot", func() {
		_, err := s.engine.UnequipItem(s.ctx, &engine.UnequipItemInput{State: state, Slot: "cape"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *EngineTestSuite) TestDropItem() {
	state := s.newCharacter()
	state.Player.Inventory = []entities.Item{
		item("a", entities.ItemTypeArmor, nil),
		item("a", entities.ItemTypeArmor, nil),
	}

	out, err := s.engine.DropItem(s.ctx, &engine.DropItemInput{State: state, ItemID: "a"})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Len(out.State.Player.Inventory, 1)
	s.Len(state.Player.Inventory, 2)

	missing, err := s.engine.DropItem(s.ctx, &engine.DropItemInput{State: state, ItemID: "b"})
	s.Require().NoError(err)
	s.False(missing.Applied)
}

func (s *EngineTestSuite) TestUseHealthPotion() {
	state := s.newCharacter()

	s.Run("no potions", func() {
		state.Player.Health = 10
		out, err := s.engine.UseHealthPotion(s.ctx, &engine.UseHealthPotionInput{State: state})
		s.Require().NoError(err)
		s.False(out.Applied)
		s.Equal(10, out.State.Player.Health)
	})

	s.Run("heals half of max", func() {
		state.Player.Health = 10
		state.Player.HealthPotions = 2
		out, err := s.engine.UseHealthPotion(s.ctx, &engine.UseHealthPotionInput{State: state})
		s.Require().NoError(err)
		s.True(out.Applied)
		s.Equal(62, out.Healed)
		s.Equal(72, out.State.Player.Health)
		s.Equal(1, out.State.Player.HealthPotions)
	})

	s.Run("clamps at max", func() {
		state.Player.Health = 100
		state.Player.HealthPotions = 1
		out, err := s.engine.UseHealthPotion(s.ctx, &engine.UseHealthPotionInput{State: state})
		s.Require().NoError(err)
		s.Equal(25, out.Healed)
		s.Equal(125, out.State.Player.Health)
	})

	s.Run("full health", func() {
		state.Player.Health = 125
		state.Player.HealthPotions = 1
		out, err := s.engine.UseHealthPotion(s.ctx, &engine.UseHealthPotionInput{State: state})
		s.Require().NoError(err)
		s.False(out.Applied)
		s.Equal(1, out.State.Player.HealthPotions)
	})
}

func (s *EngineTestSuite) TestRegenerateHealth() {
	state := s.newCharacter()
	state.Player.Health = 5
	state.Player.LastHealthRestoreTime = nil

	first, err := s.engine.RegenerateHealth(s.ctx, &engine.RegenerateHealthInput{State: state})
	s.Require().NoError(err)
	s.True(first.Applied)
	s.False(first.Restored)
	s.Equal(5, first.State.Player.Health)
	s.Require().NotNil(first.State.Player.LastHealthRestoreTime)

	s.clock.Advance(23 * time.Hour)
	early, err := s.engine.RegenerateHealth(s.ctx, &engine.RegenerateHealthInput{State: first.State})
	s.Require().NoError(err)
	s.False(early.Applied)
	s.Equal(5, early.State.Player.Health)

	s.clock.Advance(time.Hour)
	due, err := s.engine.RegenerateHealth(s.ctx, &engine.RegenerateHealthInput{State: first.State})
	s.Require().NoError(err)
	s.True(due.Restored)
	s.Equal(125, due.State.Player.Health)
	s.Equal(s.clock.Now(), *due.State.Player.LastHealthRestoreTime)
}

func (s *EngineTestSuite) TestNilState() {
	_, err := s.engine.Attack(s.ctx, &engine.AttackInput{})
	s.True(errors.IsInvalidArgument(err))

	out, err := s.engine.StartDungeon(s.ctx, &engine.StartDungeonInput{State: &entities.GameState{AvailableDungeons: 1}})
	s.Require().NoError(err)
	s.False(out.Applied)
}

func itemIDs(items []entities.Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
