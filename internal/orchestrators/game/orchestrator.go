// Package game runs player actions against stored game state. Each call
// loads the user's snapshot, applies one engine transition and saves the
// result, holding a per-user lock for the whole read-modify-write.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/dungeon-gains/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dungeon-gains/internal/clients/exercises"
	"github.com/KirkDiggler/dungeon-gains/internal/engine"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/combat"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/loot"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/repositories/gamestate"
)

const errUserIDRequired = "user ID is required"

// saveTimeout bounds a save that outlives its request
const saveTimeout = 5 * time.Second

// Service defines the player-facing game operations
type Service interface {
	GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error)
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	LogWorkout(ctx context.Context, input *LogWorkoutInput) (*LogWorkoutOutput, error)

	// Dungeon runs
	StartDungeon(ctx context.Context, input *RunInput) (*StartDungeonOutput, error)
	Attack(ctx context.Context, input *RunInput) (*AttackOutput, error)
	AutoAttack(ctx context.Context, input *AutoAttackInput) (*AutoAttackOutput, error)
	OpenTreasure(ctx context.Context, input *RunInput) (*OpenTreasureOutput, error)
	AdvanceRoom(ctx context.Context, input *RunInput) (*AdvanceRoomOutput, error)
	FinishDungeon(ctx context.Context, input *RunInput) (*CompleteDungeonOutput, error)
	CompleteDungeon(ctx context.Context, input *CompleteDungeonInput) (*CompleteDungeonOutput, error)

	// Inventory and health
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
	DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error)
	UseHealthPotion(ctx context.Context, input *RunInput) (*UseHealthPotionOutput, error)
	RegenerateHealth(ctx context.Context, input *RunInput) (*RegenerateHealthOutput, error)
	ClearLevelUpInfo(ctx context.Context, input *RunInput) (*ClearLevelUpInfoOutput, error)

	// Reference data
	ListExercises(ctx context.Context, input *ListExercisesInput) (*ListExercisesOutput, error)
	GetLootOdds(ctx context.Context, input *GetLootOddsInput) (*GetLootOddsOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Repository gamestate.Repository
	Engine     engine.Engine
	Exercises  exercises.Client
	// EventBus (optional, defaults to a private bus)
	EventBus events.EventBus
	// AutoAttackInterval (optional, defaults to combat.DefaultAutoAttackInterval)
	AutoAttackInterval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Exercises == nil {
		vb.RequiredField("Exercises")
	}
	if c.AutoAttackInterval < 0 {
		vb.InvalidField("AutoAttackInterval", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	repo       gamestate.Repository
	engine     engine.Engine
	exercises  exercises.Client
	bus        events.EventBus
	autoAttack time.Duration
	locks      *userLocks
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	interval := cfg.AutoAttackInterval
	if interval == 0 {
		interval = combat.DefaultAutoAttackInterval
	}

	return &orchestrator{
		repo:       cfg.Repository,
		engine:     cfg.Engine,
		exercises:  cfg.Exercises,
		bus:        bus,
		autoAttack: interval,
		locks:      newUserLocks(),
	}, nil
}

// outcome is satisfied by every engine output through its embedded Result
type outcome interface {
	Outcome() engine.Result
}

// apply runs step against the user's current state and saves the result
// when it changed. Regeneration on load counts as a change.
func apply[T outcome](
	ctx context.Context, o *orchestrator, userID, op string,
	step func(state *entities.GameState) (T, error),
) (T, error) {
	var zero T
	if userID == "" {
		return zero, errors.InvalidArgument(errUserIDRequired)
	}

	unlock := o.locks.Lock(userID)
	defer unlock()

	regen, err := o.load(ctx, userID)
	if err != nil {
		return zero, err
	}

	out, err := step(regen.State)
	if err != nil {
		return zero, errors.Wrapf(err, "failed to %s", op)
	}

	result := out.Outcome()
	if result.Applied || regen.Applied {
		if err := o.save(ctx, userID, result.State); err != nil {
			return zero, err
		}
	}

	slog.DebugContext(ctx, "game action",
		"action", op,
		"user_id", userID,
		"applied", result.Applied)

	return out, nil
}

// load fetches the snapshot and applies any pending daily regeneration.
// The returned output is Applied when the state needs saving.
func (o *orchestrator) load(ctx context.Context, userID string) (*engine.RegenerateHealthOutput, error) {
	got, err := o.repo.Get(ctx, gamestate.GetInput{UserID: userID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("no character for user %s", userID).
				WithMeta("user_id", userID)
		}
		return nil, errors.Wrap(err, "failed to load game state")
	}
	if !got.State.HasCharacter() {
		return nil, errors.NotFoundf("no character for user %s", userID).
			WithMeta("user_id", userID)
	}

	regen, err := o.engine.RegenerateHealth(ctx, &engine.RegenerateHealthInput{State: got.State})
	if err != nil {
		return nil, errors.Wrap(err, "failed to regenerate health")
	}
	if regen.Restored {
		slog.InfoContext(ctx, "health restored",
			"user_id", userID,
			"health", regen.State.Player.Health)
	}

	return regen, nil
}

// refresh loads the user's state and saves it if regeneration changed it
func (o *orchestrator) refresh(ctx context.Context, userID string) (*engine.RegenerateHealthOutput, error) {
	if userID == "" {
		return nil, errors.InvalidArgument(errUserIDRequired)
	}

	unlock := o.locks.Lock(userID)
	defer unlock()

	regen, err := o.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if regen.Applied {
		if err := o.save(ctx, userID, regen.State); err != nil {
			return nil, err
		}
	}
	return regen, nil
}

// save stores state even when ctx is already done: a cancelled auto attack
// still keeps the exchanges it fought.
func (o *orchestrator) save(ctx context.Context, userID string, state *entities.GameState) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()

	if _, err := o.repo.Save(ctx, gamestate.SaveInput{UserID: userID, State: state}); err != nil {
		slog.ErrorContext(ctx, "failed to save game state",
			"user_id", userID,
			"error", err)
		return errors.Wrap(err, "failed to save game state")
	}
	return nil
}

func (o *orchestrator) GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	regen, err := o.refresh(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetGameStateOutput{
		State:          regen.State,
		HealthRestored: regen.Restored,
	}, nil
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDRequired)
	}

	unlock := o.locks.Lock(input.UserID)
	defer unlock()

	existing, err := o.repo.Get(ctx, gamestate.GetInput{UserID: input.UserID})
	switch {
	case err == nil && existing.State.HasCharacter():
		return nil, errors.AlreadyExistsf("user %s already has a character", input.UserID).
			WithMeta("user_id", input.UserID)
	case err != nil && !errors.IsNotFound(err):
		return nil, errors.Wrap(err, "failed to check for existing character")
	}

	out, err := o.engine.CreateCharacter(ctx, &engine.CreateCharacterInput{
		Name:          input.Name,
		StartingLifts: input.StartingLifts,
	})
	if err != nil {
		return nil, err
	}

	if err := o.save(ctx, input.UserID, out.State); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character created",
		"user_id", input.UserID,
		"name", out.State.Player.Name)

	return out, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDRequired)
	}

	unlock := o.locks.Lock(input.UserID)
	defer unlock()

	out, err := o.repo.Delete(ctx, gamestate.DeleteInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete game state")
	}
	if !out.Deleted {
		return nil, errors.NotFoundf("no character for user %s", input.UserID).
			WithMeta("user_id", input.UserID)
	}

	slog.InfoContext(ctx, "character deleted", "user_id", input.UserID)
	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) LogWorkout(ctx context.Context, input *LogWorkoutInput) (*LogWorkoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := apply(ctx, o, input.UserID, "log workout",
		func(state *entities.GameState) (*engine.LogWorkoutOutput, error) {
			return o.engine.LogWorkout(ctx, &engine.LogWorkoutInput{State: state, Workout: input.Workout})
		})
	if err != nil {
		return nil, err
	}

	if out.Applied {
		slog.InfoContext(ctx, "workout logged",
			"user_id", input.UserID,
			"exercises", len(input.Workout.Exercises),
			"experience", out.ExperienceGained,
			"records", len(out.NewRecords),
			"leveled_up", out.LeveledUp)
		o.publishWorkout(ctx, input.UserID, out)
	}

	return out, nil
}

func (o *orchestrator) StartDungeon(ctx context.Context, input *RunInput) (*StartDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := apply(ctx, o, input.UserID, "start dungeon",
		func(state *entities.GameState) (*engine.StartDungeonOutput, error) {
			return o.engine.StartDungeon(ctx, &engine.StartDungeonInput{State: state})
		})
	if err != nil {
		return nil, err
	}

	if out.Applied {
		slog.InfoContext(ctx, "dungeon started",
			"user_id", input.UserID,
			"dungeon_id", out.Dungeon.ID,
			"difficulty", out.Dungeon.Difficulty,
			"rooms", len(out.Dungeon.Rooms))
	}

	return out, nil
}

func (o *orchestrator) Attack(ctx context.Context, input *RunInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := apply(ctx, o, input.UserID, "attack",
		func(state *entities.GameState) (*engine.AttackOutput, error) {
			return o.engine.Attack(ctx, &engine.AttackInput{State: state})
		})
	if err != nil {
		return nil, err
	}

	if out.Applied {
		o.publishExchange(ctx, input.UserID, currentRoom(out.State), out.Exchange)
	}

	return out, nil
}

func (o *orchestrator) AutoAttack(ctx context.Context, input *AutoAttackInput) (*AutoAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	interval := input.Interval
	if interval <= 0 {
		interval = o.autoAttack
	}

	out, err := apply(ctx, o, input.UserID, "auto attack",
		func(state *entities.GameState) (*engine.AutoAttackOutput, error) {
			return o.engine.AutoAttack(ctx, &engine.AutoAttackInput{
				State:      state,
				Interval:   interval,
				OnExchange: input.OnExchange,
			})
		})
	if err != nil {
		return nil, err
	}

	if out.Applied {
		room := currentRoom(out.State)
		for _, x := range out.Exchanges {
			o.publishExchange(ctx, input.UserID, room, x)
		}
		slog.InfoContext(ctx, "auto attack finished",
			"user_id", input.UserID,
			"exchanges", len(out.Exchanges),
			"stopped", out.Stopped)
	}

	return out, nil
}

func (o *orchestrator) OpenTreasure(ctx context.Context, input *RunInput) (*OpenTreasureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return apply(ctx, o, input.UserID, "open treasure",
		func(state *entities.GameState) (*engine.OpenTreasureOutput, error) {
			return o.engine.OpenTreasure(ctx, &engine.OpenTreasureInput{State: state})
		})
}

func (o *orchestrator) AdvanceRoom(ctx context.Context, input *RunInput) (*AdvanceRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return apply(ctx, o, input.UserID, "advance room",
		func(state *entities.GameState) (*engine.AdvanceRoomOutput, error) {
			return o.engine.AdvanceRoom(ctx, &engine.AdvanceRoomInput{State: state})
		})
}

func (o *orchestrator) FinishDungeon(ctx context.Context, input *RunInput) (*CompleteDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	enemies := 0
	out, err := apply(ctx, o, input.UserID, "finish dungeon",
		func(state *entities.GameState) (*engine.CompleteDungeonOutput, error) {
			if run := state.CurrentDungeon; run != nil && !run.PlayerDefeated() {
				enemies = run.EnemiesDefeated
			}
			return o.engine.FinishDungeon(ctx, &engine.FinishDungeonInput{State: state})
		})
	if err != nil {
		return nil, err
	}

	if out.Applied {
		o.logFinished(ctx, input.UserID, enemies, out)
		o.publishFinished(ctx, input.UserID, enemies, out)
	}

	return out, nil
}

func (o *orchestrator) CompleteDungeon(ctx context.Context, input *CompleteDungeonInput) (*CompleteDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := apply(ctx, o, input.UserID, "complete dungeon",
		func(state *entities.GameState) (*engine.CompleteDungeonOutput, error) {
			return o.engine.CompleteDungeon(ctx, &engine.CompleteDungeonInput{
				State:           state,
				RemainingHealth: input.RemainingHealth,
				EnemiesDefeated: input.EnemiesDefeated,
			})
		})
	if err != nil {
		return nil, err
	}

	if out.Applied {
		o.logFinished(ctx, input.UserID, input.EnemiesDefeated, out)
		o.publishFinished(ctx, input.UserID, input.EnemiesDefeated, out)
	}

	return out, nil
}

func (o *orchestrator) logFinished(ctx context.Context, userID string, enemies int, out *engine.CompleteDungeonOutput) {
	slog.InfoContext(ctx, "dungeon finished",
		"user_id", userID,
		"enemies_defeated", enemies,
		"experience", out.ExperienceGained,
		"player_defeated", out.PlayerDefeated,
		"leveled_up", out.LeveledUp)
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return apply(ctx, o, input.UserID, "equip item",
		func(state *entities.GameState) (*engine.EquipItemOutput, error) {
			return o.engine.EquipItem(ctx, &engine.EquipItemInput{State: state, ItemID: input.ItemID})
		})
}

func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return apply(ctx, o, input.UserID, "unequip item",
		func(state *entities.GameState) (*engine.UnequipItemOutput, error) {
			return o.engine.UnequipItem(ctx, &engine.UnequipItemInput{State: state, Slot: input.Slot})
		})
}

func (o *orchestrator) DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return apply(ctx, o, input.UserID, "drop item",
		func(state *entities.GameState) (*engine.DropItemOutput, error) {
			return o.engine.DropItem(ctx, &engine.DropItemInput{State: state, ItemID: input.ItemID})
		})
}

func (o *orchestrator) UseHealthPotion(ctx context.Context, input *RunInput) (*UseHealthPotionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return apply(ctx, o, input.UserID, "use health potion",
		func(state *entities.GameState) (*engine.UseHealthPotionOutput, error) {
			return o.engine.UseHealthPotion(ctx, &engine.UseHealthPotionInput{State: state})
		})
}

func (o *orchestrator) RegenerateHealth(ctx context.Context, input *RunInput) (*RegenerateHealthOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.refresh(ctx, input.UserID)
}

func (o *orchestrator) ClearLevelUpInfo(ctx context.Context, input *RunInput) (*ClearLevelUpInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return apply(ctx, o, input.UserID, "clear level up info",
		func(state *entities.GameState) (*engine.ClearLevelUpInfoOutput, error) {
			return o.engine.ClearLevelUpInfo(ctx, &engine.ClearLevelUpInfoInput{State: state})
		})
}

func (o *orchestrator) ListExercises(ctx context.Context, input *ListExercisesInput) (*ListExercisesOutput, error) {
	if input == nil {
		input = &ListExercisesInput{}
	}

	out, err := o.exercises.ListExercises(ctx, &exercises.ListInput{
		Muscle:     input.Muscle,
		Type:       input.Type,
		Difficulty: input.Difficulty,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list exercises")
	}

	return &ListExercisesOutput{
		Exercises: out.Exercises,
		Source:    out.Source,
	}, nil
}

func (o *orchestrator) GetLootOdds(ctx context.Context, input *GetLootOddsInput) (*GetLootOddsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	level := input.Level
	if input.UserID != "" {
		got, err := o.repo.Get(ctx, gamestate.GetInput{UserID: input.UserID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load game state")
		}
		if !got.State.HasCharacter() {
			return nil, errors.NotFoundf("no character for user %s", input.UserID)
		}
		level = got.State.Player.Stats.Level
	}
	if level < 1 {
		return nil, errors.InvalidArgument("level must be at least 1")
	}

	return &GetLootOddsOutput{
		Level:             level,
		Odds:              loot.RarityOdds(level),
		DungeonDifficulty: o.engine.DungeonDifficulty(level),
	}, nil
}

func currentRoom(state *entities.GameState) *entities.DungeonRoom {
	if state == nil || state.CurrentDungeon == nil {
		return nil
	}
	return state.CurrentDungeon.CurrentRoom()
}
