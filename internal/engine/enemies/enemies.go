// Package enemies builds enemies scaled to a difficulty band.
package enemies

import (
	"math"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/content"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/rng"
)

// Scaling constants
const (
	MinDifficulty = 1
	MaxDifficulty = 8

	DifficultyExponent = 1.3
	DifficultyScale    = 0.35

	BossBase    = 2.0
	BossPerTier = 0.15
	BossCap     = 3.0

	HealthVarianceMin = 0.85
	HealthVarianceMax = 1.15

	bossSuffix = " Boss"
)

// ClampDifficulty limits d to the supported range
func ClampDifficulty(d int) int {
	return min(max(d, MinDifficulty), MaxDifficulty)
}

// DifficultyMultiplier grows faster than linearly above difficulty 1
func DifficultyMultiplier(difficulty int) float64 {
	if difficulty <= 1 {
		return 1.0
	}
	return 1.0 + math.Pow(float64(difficulty-1), DifficultyExponent)*DifficultyScale
}

// BossMultiplier is 1 for regular enemies
func BossMultiplier(difficulty int, isBoss bool) float64 {
	if !isBoss {
		return 1.0
	}
	return math.Min(BossBase+float64(max(difficulty-1, 0))*BossPerTier, BossCap)
}

// Config holds the dependencies for a Generator
type Config struct {
	Tables      *content.Tables
	Random      rng.Source
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Tables == nil || c.Tables.Enemies == nil {
		vb.RequiredField("Tables")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Generator produces enemies
type Generator struct {
	roster *content.EnemyTables
	random rng.Source
	ids    idgen.Generator
}

// New creates an enemy generator
func New(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid enemy config")
	}
	return &Generator{
		roster: cfg.Tables.Enemies,
		random: cfg.Random,
		ids:    cfg.IDGenerator,
	}, nil
}

// Template picks uniformly among templates whose band covers difficulty
func (g *Generator) Template(difficulty int) content.EnemyTemplate {
	difficulty = ClampDifficulty(difficulty)

	valid := make([]content.EnemyTemplate, 0, len(g.roster.Enemies))
	for _, t := range g.roster.Enemies {
		if t.Covers(difficulty) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return g.roster.Fallback()
	}
	return rng.Pick(g.random, valid)
}

// Generate returns an enemy at full health
func (g *Generator) Generate(difficulty int, isBoss bool) *entities.Enemy {
	difficulty = ClampDifficulty(difficulty)
	t := g.Template(difficulty)

	mult := DifficultyMultiplier(difficulty) * BossMultiplier(difficulty, isBoss)
	variance := rng.Uniform(g.random, HealthVarianceMin, HealthVarianceMax)

	health := max(int(math.Floor(float64(t.Health)*mult*variance)), 1)
	name := t.Name
	if isBoss {
		name += bossSuffix
	}

	return &entities.Enemy{
		ID:        g.ids.Generate(),
		Name:      name,
		Health:    health,
		MaxHealth: health,
		Attack:    int(math.Floor(float64(t.Attack) * mult)),
		Defense:   int(math.Floor(float64(t.Defense) * mult)),
		Icon:      t.Icon,
	}
}
