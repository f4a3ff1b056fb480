package engine

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/progression"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
)

// HealthRegenInterval is how long after the last restore health refills
const HealthRegenInterval = 24 * time.Hour

// MaxNameLength bounds character names
const MaxNameLength = 32

func (e *engine) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", name, vb)
	errors.ValidateMaxLength("Name", name, MaxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := e.clock.Now()
	stats := progression.StartingStats()
	maxHealth := progression.MaxHealth(stats)

	player := &entities.PlayerCharacter{
		Name:                  name,
		Stats:                 stats,
		BaseStats:             stats,
		Health:                maxHealth,
		MaxHealth:             maxHealth,
		Inventory:             []entities.Item{},
		WorkoutLogs:           []entities.WorkoutLog{},
		PersonalRecords:       make(map[string]entities.PersonalRecord),
		LastHealthRestoreTime: &now,
	}

	// Starting lifts only seed the records; they never change stats.
	for _, lift := range input.StartingLifts {
		if lift.ID == "" || lift.RecordValue() <= 0 {
			continue
		}
		player.PersonalRecords[lift.ID] = entities.PersonalRecord{
			ExerciseID: lift.ID,
			Value:      lift.RecordValue(),
			Date:       now,
		}
	}

	return &CreateCharacterOutput{
		Result: applied(&entities.GameState{
			Player:            player,
			AvailableDungeons: StartingDungeonTokens,
		}),
	}, nil
}

func (e *engine) LogWorkout(ctx context.Context, input *LogWorkoutInput) (*LogWorkoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}
	if !state.HasCharacter() {
		return &LogWorkoutOutput{Result: refused(state)}, nil
	}

	now := e.clock.Now()
	player := state.Player
	out := &LogWorkoutOutput{}

	_, out.HealthRestored = regenerate(player, now)

	workout := input.Workout.Clone()
	if workout.ID == "" {
		workout.ID = e.ids.Workouts.Generate()
	}
	if workout.Date.IsZero() {
		workout.Date = now
	}
	if workout.Exercises == nil {
		workout.Exercises = []entities.Exercise{}
	}

	for _, exercise := range workout.Exercises {
		if exercise.ID == "" {
			continue
		}
		previous, hasPrevious := player.PersonalRecords[exercise.ID]
		record := entities.PersonalRecord{
			ExerciseID: exercise.ID,
			Value:      exercise.RecordValue(),
			Date:       workout.Date,
		}

		switch {
		case progression.IsPersonalRecord(exercise, previous, hasPrevious):
			player.PersonalRecords[exercise.ID] = record
			player.HealthPotions++
			out.PotionsEarned++
			out.NewRecords = append(out.NewRecords, record)
		case !hasPrevious && record.Value > 0:
			// first time seen: baseline only
			player.PersonalRecords[exercise.ID] = record
		}
	}

	out.ExperienceGained = progression.WorkoutXP(workout.Exercises)
	player.Stats.Experience += out.ExperienceGained
	out.LeveledUp = levelUp(state)

	player.WorkoutLogs = append(player.WorkoutLogs, workout)
	if workout.Completed {
		state.AvailableDungeons++
		out.TokenEarned = true
	}

	out.Result = applied(state)
	return out, nil
}

func (e *engine) UseHealthPotion(
	ctx context.Context,
	input *UseHealthPotionInput,
) (*UseHealthPotionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}

	player := state.Player
	if player == nil || player.HealthPotions < 1 || player.Health >= player.MaxHealth {
		return &UseHealthPotionOutput{Result: refused(state)}, nil
	}

	before := player.Health
	heal := int(math.Floor(float64(player.MaxHealth) * PotionHealFraction))
	player.Health = min(player.Health+heal, player.MaxHealth)
	player.HealthPotions--

	return &UseHealthPotionOutput{
		Result: applied(state),
		Healed: player.Health - before,
	}, nil
}

func (e *engine) RegenerateHealth(
	ctx context.Context,
	input *RegenerateHealthInput,
) (*RegenerateHealthOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}
	if !state.HasCharacter() {
		return &RegenerateHealthOutput{Result: refused(state)}, nil
	}

	changed, restored := regenerate(state.Player, e.clock.Now())
	return &RegenerateHealthOutput{
		Result:   Result{State: state, Applied: changed},
		Restored: restored,
	}, nil
}

func (e *engine) ClearLevelUpInfo(
	ctx context.Context,
	input *ClearLevelUpInfoInput,
) (*ClearLevelUpInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	state, err := begin(input.State)
	if err != nil {
		return nil, err
	}
	if state.LevelUpInfo == nil {
		return &ClearLevelUpInfoOutput{Result: refused(state)}, nil
	}

	state.LevelUpInfo = nil
	return &ClearLevelUpInfoOutput{Result: applied(state)}, nil
}

// regenerate applies the daily full restore. The first call only starts
// the clock. It reports whether the player changed and whether health was
// restored.
func regenerate(player *entities.PlayerCharacter, now time.Time) (bool, bool) {
	if player.LastHealthRestoreTime == nil {
		player.LastHealthRestoreTime = &now
		return true, false
	}
	if now.Sub(*player.LastHealthRestoreTime) < HealthRegenInterval {
		return false, false
	}
	player.Health = player.MaxHealth
	player.LastHealthRestoreTime = &now
	return true, true
}

// levelUp runs a single level-up check and records the change for display
func levelUp(state *entities.GameState) bool {
	player := state.Player
	next, ok := progression.CheckLevelUp(player.Stats)
	if !ok {
		return false
	}

	state.LevelUpInfo = &entities.LevelUpInfo{
		OldStats: player.Stats,
		NewStats: next,
		NewLevel: next.Level,
	}
	player.Stats = next
	player.MaxHealth = progression.MaxHealth(next)
	player.Health = player.MaxHealth
	return true
}
