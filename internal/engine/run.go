package engine

import (
	"context"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/combat"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/dungeon"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/progression"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
)

func (e *engine) StartDungeon(ctx context.Context, input *StartDungeonInput) (*StartDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}
	if !state.HasCharacter() || state.AvailableDungeons < 1 || state.CurrentDungeon != nil {
		return &StartDungeonOutput{Result: refused(state)}, nil
	}
	if state.Player.Health <= 0 {
		return &StartDungeonOutput{Result: refused(state)}, nil
	}

	player := state.Player
	run := e.dungeons.Generate(dungeon.Input{
		Difficulty: e.DungeonDifficulty(player.Stats.Level),
		Stamina:    progression.EffectiveStats(player).Stamina,
		LootLevel:  player.Stats.Level,
	})
	combat.EnterRoom(run.CurrentRoom())

	state.AvailableDungeons--
	state.CurrentDungeon = run

	return &StartDungeonOutput{
		Result:  applied(state),
		Dungeon: run,
	}, nil
}

func (e *engine) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}

	run := activeRun(state)
	if run == nil || run.Completed {
		return &AttackOutput{Result: refused(state)}, nil
	}

	encounter := combat.NewEncounter(e.random, state.Player, run.CurrentRoom(), run.CombatPhase)
	exchange := encounter.Attack()
	if !exchange.Applied {
		return &AttackOutput{Result: refused(state), Exchange: exchange}, nil
	}

	run.CombatPhase = encounter.Phase()
	if exchange.EnemyDefeated {
		run.EnemiesDefeated++
	}

	return &AttackOutput{
		Result:   applied(state),
		Exchange: exchange,
	}, nil
}

func (e *engine) AutoAttack(ctx context.Context, input *AutoAttackInput) (*AutoAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}

	run := activeRun(state)
	if run == nil || run.Completed {
		return &AutoAttackOutput{Result: refused(state)}, nil
	}

	encounter := combat.NewEncounter(e.random, state.Player, run.CurrentRoom(), run.CombatPhase)
	if encounter.Over() {
		return &AutoAttackOutput{Result: refused(state)}, nil
	}

	var exchanges []combat.Exchange
	last, err := encounter.AutoAttack(ctx, input.Interval, func(x combat.Exchange) {
		if !x.Applied {
			return
		}
		exchanges = append(exchanges, x)
		if x.EnemyDefeated {
			run.EnemiesDefeated++
		}
		if input.OnExchange != nil {
			input.OnExchange(x)
		}
	})
	run.CombatPhase = encounter.Phase()

	out := &AutoAttackOutput{
		Result:    refused(state),
		Exchanges: exchanges,
		Last:      last,
		Stopped:   err != nil,
	}
	if len(exchanges) > 0 {
		out.Result = applied(state)
	}
	return out, nil
}

func (e *engine) OpenTreasure(ctx context.Context, input *OpenTreasureInput) (*OpenTreasureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}

	run := activeRun(state)
	if run == nil || run.PlayerDefeated() {
		return &OpenTreasureOutput{Result: refused(state)}, nil
	}

	items := combat.OpenTreasure(state.Player, run.CurrentRoom())
	if items == nil {
		return &OpenTreasureOutput{Result: refused(state)}, nil
	}

	return &OpenTreasureOutput{
		Result: applied(state),
		Items:  items,
	}, nil
}

func (e *engine) AdvanceRoom(ctx context.Context, input *AdvanceRoomInput) (*AdvanceRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}

	run := activeRun(state)
	if run == nil || run.Completed || run.PlayerDefeated() {
		return &AdvanceRoomOutput{Result: refused(state)}, nil
	}

	room := run.CurrentRoom()
	if room == nil || !room.Cleared {
		return &AdvanceRoomOutput{Result: refused(state)}, nil
	}

	if run.OnLastRoom() {
		run.Completed = true
		return &AdvanceRoomOutput{
			Result:    applied(state),
			Completed: true,
		}, nil
	}

	run.CurrentRoomIndex++
	run.CombatPhase = entities.CombatIdle
	next := run.CurrentRoom()

	return &AdvanceRoomOutput{
		Result:      applied(state),
		Room:        next,
		AutoCleared: combat.EnterRoom(next),
	}, nil
}

func (e *engine) FinishDungeon(ctx context.Context, input *FinishDungeonInput) (*CompleteDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}

	run := activeRun(state)
	if run == nil || !(run.Completed || run.PlayerDefeated()) {
		return &CompleteDungeonOutput{Result: refused(state)}, nil
	}

	// A lost run counts no kills and earns nothing.
	if run.PlayerDefeated() {
		out := complete(state, 0, 0, true)
		out.PlayerDefeated = true
		return out, nil
	}
	return complete(state, state.Player.Health, run.EnemiesDefeated, false), nil
}

func (e *engine) CompleteDungeon(
	ctx context.Context,
	input *CompleteDungeonInput,
) (*CompleteDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EnemiesDefeated < 0 {
		return nil, errors.InvalidArgument("enemies defeated cannot be negative")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}
	if !state.HasCharacter() {
		return &CompleteDungeonOutput{Result: refused(state)}, nil
	}

	return complete(state, input.RemainingHealth, input.EnemiesDefeated, false), nil
}

// complete settles a run: health is clamped, experience awarded and the
// active dungeon discarded. A defeat skips rewards, including a level-up
// from experience carried over.
func complete(state *entities.GameState, remainingHealth, enemiesDefeated int, defeated bool) *CompleteDungeonOutput {
	player := state.Player
	player.Health = max(0, min(remainingHealth, player.MaxHealth))

	out := &CompleteDungeonOutput{}
	if !defeated {
		out.ExperienceGained = progression.DungeonXP(enemiesDefeated, player.Health, player.MaxHealth)
		player.Stats.Experience += out.ExperienceGained
		out.LeveledUp = levelUp(state)
	}

	player.FirstDungeonCompleted = true
	state.CurrentDungeon = nil
	out.PlayerDefeated = player.Health == 0

	out.Result = applied(state)
	return out
}

// activeRun returns the current dungeon when a character is in one
func activeRun(state *entities.GameState) *entities.Dungeon {
	if !state.HasCharacter() || state.CurrentDungeon == nil || state.CurrentDungeon.CurrentRoom() == nil {
		return nil
	}
	return state.CurrentDungeon
}
