package engine

import (
	"github.com/KirkDiggler/dungeon-gains/internal/engine/content"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/dungeon"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/enemies"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/loot"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/rng"
)

// Tuning constants for the state machine
const (
	StartingDungeonTokens = 1
	LevelsPerDifficulty   = 3
	PotionHealFraction    = 0.5
)

type engine struct {
	random   rng.Source
	clock    clock.Clock
	ids      idgen.Set
	loot     *loot.Generator
	dungeons *dungeon.Generator
}

// Config holds the engine dependencies
type Config struct {
	Tables *content.Tables
	Random rng.Source
	Clock  clock.Clock
	IDs    idgen.Set
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Tables == nil {
		vb.RequiredField("Tables")
	}
	if cfg.Random == nil {
		vb.RequiredField("Random")
	}
	if cfg.Clock == nil {
		vb.RequiredField("Clock")
	}
	if cfg.IDs.Items == nil {
		vb.RequiredField("IDs.Items")
	}
	if cfg.IDs.Enemies == nil {
		vb.RequiredField("IDs.Enemies")
	}
	if cfg.IDs.Dungeons == nil {
		vb.RequiredField("IDs.Dungeons")
	}
	if cfg.IDs.Workouts == nil {
		vb.RequiredField("IDs.Workouts")
	}
	return vb.Build()
}

// New creates the game engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lootGen, err := loot.New(&loot.Config{
		Tables:      cfg.Tables,
		Random:      cfg.Random,
		IDGenerator: cfg.IDs.Items,
	})
	if err != nil {
		return nil, err
	}

	enemyGen, err := enemies.New(&enemies.Config{
		Tables:      cfg.Tables,
		Random:      cfg.Random,
		IDGenerator: cfg.IDs.Enemies,
	})
	if err != nil {
		return nil, err
	}

	dungeonGen, err := dungeon.New(&dungeon.Config{
		Enemies:     enemyGen,
		Loot:        lootGen,
		Random:      cfg.Random,
		IDGenerator: cfg.IDs.Dungeons,
	})
	if err != nil {
		return nil, err
	}

	return &engine{
		random:   cfg.Random,
		clock:    cfg.Clock,
		ids:      cfg.IDs,
		loot:     lootGen,
		dungeons: dungeonGen,
	}, nil
}

// DungeonDifficulty is one tier per three levels, capped at the highest
// enemy tier
func (e *engine) DungeonDifficulty(level int) int {
	return enemies.ClampDifficulty(1 + (max(level, 1)-1)/LevelsPerDifficulty)
}

// begin returns a normalized working copy of state
func begin(state *entities.GameState) (*entities.GameState, error) {
	if state == nil {
		return nil, errors.InvalidArgument("state is required")
	}
	next := state.Clone()
	next.Normalize()
	return next, nil
}

func refused(state *entities.GameState) Result {
	return Result{State: state}
}

func applied(state *entities.GameState) Result {
	return Result{State: state, Applied: true}
}
