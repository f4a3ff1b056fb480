// Package loot rolls items from the rarity-weighted template tables.
package loot

import (
	"math"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/content"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/rng"
)

// Rarity tuning, in percent
const (
	LegendaryUnlockLevel = 10
	LegendaryPerLevel    = 0.5
	LegendaryCap         = 5.0
	RarePerLevel         = 2.0
	RareCap              = 30.0
)

// Odds is the chance of each rolled rarity, in percent
type Odds struct {
	Legendary float64
	Rare      float64
	Common    float64
}

// RarityOdds returns the configured bands for a character level
func RarityOdds(level int) Odds {
	legendary := 0.0
	if level >= LegendaryUnlockLevel {
		legendary = math.Min(float64(level-LegendaryUnlockLevel+1)*LegendaryPerLevel, LegendaryCap)
	}
	rare := math.Min(math.Max(float64(level), 0)*RarePerLevel, RareCap)

	return Odds{
		Legendary: legendary,
		Rare:      rare,
		Common:    100 - legendary - rare,
	}
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
	if c.Tables == nil {
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

// Generator produces items. It has no state beyond its random source.
type Generator struct {
	items  content.ItemTables
	random rng.Source
	ids    idgen.Generator
}

// New creates a loot generator
func New(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid loot config")
	}
	return &Generator{
		items:  cfg.Tables.Items,
		random: cfg.Random,
		ids:    cfg.IDGenerator,
	}, nil
}

// RollRarity draws one value in [0,100) and walks legendary, rare, common
func (g *Generator) RollRarity(level int) entities.Rarity {
	odds := RarityOdds(level)
	roll := g.random.Float64() * 100

	switch {
	case roll < odds.Legendary:
		return entities.RarityLegendary
	case roll < odds.Legendary+odds.Rare:
		return entities.RarityRare
	default:
		return entities.RarityCommon
	}
}

// Generate returns a fresh item for the given level
func (g *Generator) Generate(level int) entities.Item {
	rarity := g.RollRarity(level)
	itemType := rng.Pick(g.random, content.EquipmentTypes)
	template := rng.Pick(g.random, g.items.Pool(rarity, itemType))

	item := entities.Item{
		ID:          g.ids.Generate(),
		Name:        template.Name,
		Type:        itemType,
		Rarity:      rarity,
		Description: template.Description,
		Icon:        template.Icon,
	}
	if bonus := template.Bonus; !bonus.IsZero() {
		item.StatBonus = &bonus
	}
	return item
}

// GenerateN returns n independently rolled items
func (g *Generator) GenerateN(level, n int) []entities.Item {
	items := make([]entities.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, g.Generate(level))
	}
	return items
}
