package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-gains/internal/clients/exercises"
	"github.com/KirkDiggler/dungeon-gains/internal/config"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/logger"
	"github.com/KirkDiggler/dungeon-gains/internal/orchestrators/game"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/rng"
	"github.com/KirkDiggler/dungeon-gains/internal/repositories/gamestate"
	"github.com/KirkDiggler/dungeon-gains/internal/testutils"
)

var (
	simDemo     bool
	simName     string
	simWorkouts int
	simSeed     int64
	simInterval time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a scripted session against an in-memory store",
	Long: `Simulate logs a few workouts and fights through one dungeon without a
server. Use --demo to start from a seasoned level 5 character.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&simDemo, "demo", false, "start from the demo hero instead of a new character")
	simulateCmd.Flags().StringVar(&simName, "name", "Rookie", "name of the new character")
	simulateCmd.Flags().IntVar(&simWorkouts, "workouts", 3, "workouts to log before the dungeon")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 42, "seed for every roll")
	simulateCmd.Flags().DurationVar(&simInterval, "interval", 50*time.Millisecond, "delay between auto attacks")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg.Storage.Backend = config.StorageSQLite
	cfg.Storage.SQLitePath = gamestate.MemoryPath
	cfg.Logging.FileEnabled = false
	cfg.Logging.ConsoleEnabled = true

	logs, err := logger.Setup(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() {
		_ = logs.Close()
	}()

	a, err := newApp(cmd.Context(), cfg, rng.NewSeeded(uint64(simSeed)))
	if err != nil {
		return err
	}
	defer a.Close()

	sim := &simulation{
		app:      a,
		userID:   "simulated_user",
		name:     simName,
		demo:     simDemo,
		workouts: simWorkouts,
		interval: simInterval,
		out:      os.Stdout,
	}
	return sim.run(cmd.Context())
}

// simulation plays one scripted session through the game service
type simulation struct {
	app      *app
	userID   string
	name     string
	demo     bool
	workouts int
	interval time.Duration
	out      io.Writer
}

func (s *simulation) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *simulation) run(ctx context.Context) error {
	if err := s.createCharacter(ctx); err != nil {
		return err
	}

	for i := 0; i < s.workouts; i++ {
		if err := s.logWorkout(ctx, i); err != nil {
			return err
		}
	}

	if err := s.playDungeon(ctx); err != nil {
		return err
	}

	state, err := s.app.service.GetGameState(ctx, &game.GetGameStateInput{UserID: s.userID})
	if err != nil {
		return err
	}
	s.summary(state.State)
	return nil
}

func (s *simulation) createCharacter(ctx context.Context) error {
	if s.demo {
		hero := testutils.DemoHero()
		if _, err := s.app.repository.Save(ctx, gamestate.SaveInput{UserID: s.userID, State: hero}); err != nil {
			return errors.Wrap(err, "failed to store demo hero")
		}
		s.printf("🧙 Loaded %s (level %d)\n", hero.Player.Name, hero.Player.Stats.Level)
		return nil
	}

	out, err := s.app.service.CreateCharacter(ctx, &game.CreateCharacterInput{
		UserID: s.userID,
		Name:   s.name,
	})
	if err != nil {
		return err
	}
	s.printf("🧙 Created %s (level %d)\n", out.State.Player.Name, out.State.Player.Stats.Level)
	return nil
}

// simulatedWorkout adds five pounds to every lift and shaves ten seconds off
// the mile each session
func simulatedWorkout(session int) entities.WorkoutLog {
	bump := float64(session)
	workout := entities.WorkoutLog{Completed: true}
	lifts := map[string]float64{"bench": 135, "squat": 185, "ohp": 95}
	for _, id := range []string{"bench", "squat", "ohp", "mile"} {
		def, ok := exercises.Preset(id)
		if !ok {
			continue
		}
		exercise := def.Exercise()
		if exercise.TimeBased() {
			exercise.Time = 540 - 10*bump
			exercise.Distance = 1
		} else {
			exercise.Weight = lifts[id] + 5*bump
			exercise.Sets = 3
			exercise.Reps = 5
		}
		workout.Exercises = append(workout.Exercises, exercise)
	}
	return workout
}

func (s *simulation) logWorkout(ctx context.Context, session int) error {
	out, err := s.app.service.LogWorkout(ctx, &game.LogWorkoutInput{
		UserID:  s.userID,
		Workout: simulatedWorkout(session),
	})
	if err != nil {
		return err
	}

	s.printf("🏋️  Workout %d: +%d XP, %d new records, %d potions",
		session+1, out.ExperienceGained, len(out.NewRecords), out.PotionsEarned)
	if out.LeveledUp {
		s.printf(", reached level %d", out.State.Player.Stats.Level)
	}
	s.printf("\n")
	return nil
}

func (s *simulation) playDungeon(ctx context.Context) error {
	started, err := s.app.service.StartDungeon(ctx, &game.RunInput{UserID: s.userID})
	if err != nil {
		return err
	}
	if !started.Applied {
		s.printf("🚪 Cannot enter a dungeon (no tokens or no health left)\n")
		return nil
	}
	s.printf("🏰 Entered a dungeon with %d rooms (difficulty %d)\n",
		len(started.Dungeon.Rooms), started.Dungeon.Difficulty)

	room := started.Dungeon.CurrentRoom()
	for room != nil {
		defeated, err := s.playRoom(ctx, room)
		if err != nil {
			return err
		}
		if defeated {
			break
		}

		advanced, err := s.app.service.AdvanceRoom(ctx, &game.RunInput{UserID: s.userID})
		if err != nil {
			return err
		}
		if !advanced.Applied || advanced.Completed {
			break
		}
		room = advanced.Room
	}

	finished, err := s.app.service.FinishDungeon(ctx, &game.RunInput{UserID: s.userID})
	if err != nil {
		return err
	}
	if finished.PlayerDefeated {
		s.printf("💀 Defeated. +%d XP\n", finished.ExperienceGained)
	} else {
		s.printf("🏆 Dungeon cleared! +%d XP\n", finished.ExperienceGained)
	}
	return nil
}

// playRoom resolves one room and reports whether the player fell
func (s *simulation) playRoom(ctx context.Context, room *entities.DungeonRoom) (bool, error) {
	switch {
	case room.Type.HasEnemy() && !room.Cleared:
		s.printf("⚔️  %s appears!\n", room.Enemy.Name)
		out, err := s.app.service.AutoAttack(ctx, &game.AutoAttackInput{
			UserID:   s.userID,
			Interval: s.interval,
		})
		if err != nil {
			return false, err
		}
		s.printf("   %d exchanges\n", len(out.Exchanges))
		if out.Last.PlayerDefeated {
			return true, nil
		}
		for _, item := range out.Last.Loot {
			s.printf("   🎁 %s (%s)\n", item.Name, item.Rarity)
		}
	case room.Type == entities.RoomTypeTreasure:
		out, err := s.app.service.OpenTreasure(ctx, &game.RunInput{UserID: s.userID})
		if err != nil {
			return false, err
		}
		for _, item := range out.Items {
			s.printf("   💰 %s (%s)\n", item.Name, item.Rarity)
		}
	default:
		s.printf("   an empty room\n")
	}
	return false, nil
}

func (s *simulation) summary(state *entities.GameState) {
	player := state.Player
	s.printf("\n%s, level %d\n", player.Name, player.Stats.Level)
	s.printf("  Health: %d/%d\n", player.Health, player.MaxHealth)
	s.printf("  XP: %d\n", player.Stats.Experience)
	s.printf("  Potions: %d, dungeon tokens: %d\n", player.HealthPotions, state.AvailableDungeons)
	s.printf("  Inventory: %d items\n", len(player.Inventory))

	slog.Debug("simulation finished", "user_id", s.userID, "level", player.Stats.Level)
}
