// Package content loads the loot and enemy template tables.
//
// The default tables are embedded YAML; Load accepts replacements so tuning
// can happen without a rebuild.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
)

//go:embed items.yaml
var defaultItems []byte

//go:embed enemies.yaml
var defaultEnemies []byte

// EquipmentTypes are the pools every rarity tier must provide
var EquipmentTypes = []entities.ItemType{
	entities.ItemTypeWeapon,
	entities.ItemTypeArmor,
	entities.ItemTypeAccessory,
}

// ItemTemplate is an item without an ID
type ItemTemplate struct {
	Name        string             `yaml:"name"`
	Bonus       entities.StatBonus `yaml:"bonus"`
	Description string             `yaml:"description"`
	Icon        string             `yaml:"icon"`
}

// ItemTables maps rarity to equipment type to templates
type ItemTables map[entities.Rarity]map[entities.ItemType][]ItemTemplate

// Pool returns the templates for a rarity and type
func (t ItemTables) Pool(rarity entities.Rarity, itemType entities.ItemType) []ItemTemplate {
	return t[rarity][itemType]
}

// EnemyTemplate is the unscaled form of an enemy
type EnemyTemplate struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Health   int    `yaml:"health"`
	Attack   int    `yaml:"attack"`
	Defense  int    `yaml:"defense"`
	MinLevel int    `yaml:"min_level"`
	MaxLevel int    `yaml:"max_level"`
	Icon     string `yaml:"icon"`
}

// Covers reports whether the template is valid at difficulty
func (t EnemyTemplate) Covers(difficulty int) bool {
	return difficulty >= t.MinLevel && difficulty <= t.MaxLevel
}

// EnemyTables is the enemy roster plus the fallback template
type EnemyTables struct {
	Default string          `yaml:"default"`
	Enemies []EnemyTemplate `yaml:"enemies"`
}

// Fallback returns the default template
func (t *EnemyTables) Fallback() EnemyTemplate {
	for _, e := range t.Enemies {
		if e.ID == t.Default {
			return e
		}
	}
	return t.Enemies[0]
}

// Tables bundles every content table the engine reads
type Tables struct {
	Items   ItemTables
	Enemies *EnemyTables
}

// Default returns the embedded tables. It panics if they are malformed,
// which a test guards against.
func Default() *Tables {
	t, err := Parse(defaultItems, defaultEnemies)
	if err != nil {
		panic(fmt.Sprintf("content: embedded tables invalid: %v", err))
	}
	return t
}

// Load reads tables from files. An empty path keeps the embedded table.
func Load(itemsPath, enemiesPath string) (*Tables, error) {
	items, enemies := defaultItems, defaultEnemies

	if itemsPath != "" {
		data, err := os.ReadFile(itemsPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read item table %s", itemsPath)
		}
		items = data
	}
	if enemiesPath != "" {
		data, err := os.ReadFile(enemiesPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read enemy table %s", enemiesPath)
		}
		enemies = data
	}

	return Parse(items, enemies)
}

// Parse decodes and validates raw YAML tables
func Parse(itemsYAML, enemiesYAML []byte) (*Tables, error) {
	var items ItemTables
	if err := yaml.Unmarshal(itemsYAML, &items); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse item table")
	}

	var enemies EnemyTables
	if err := yaml.Unmarshal(enemiesYAML, &enemies); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse enemy table")
	}

	t := &Tables{Items: items, Enemies: &enemies}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that every rolled pool is non-empty and enemy bands are sane
func (t *Tables) Validate() error {
	vb := errors.NewValidationBuilder()

	for _, rarity := range []entities.Rarity{
		entities.RarityCommon, entities.RarityUncommon, entities.RarityRare,
		entities.RarityEpic, entities.RarityLegendary,
	} {
		for _, itemType := range EquipmentTypes {
			if len(t.Items.Pool(rarity, itemType)) == 0 {
				vb.Fieldf(fmt.Sprintf("items.%s.%s", rarity, itemType), "pool is empty")
			}
		}
	}

	if t.Enemies == nil || len(t.Enemies.Enemies) == 0 {
		vb.RequiredField("enemies")
		return vb.Build()
	}

	hasDefault := false
	for _, e := range t.Enemies.Enemies {
		if e.ID == t.Enemies.Default {
			hasDefault = true
		}
		if e.MinLevel > e.MaxLevel {
			vb.InvalidField("enemies."+e.ID, "min_level above max_level")
		}
		if e.Health <= 0 {
			vb.InvalidField("enemies."+e.ID, "health must be positive")
		}
	}
	if !hasDefault {
		vb.InvalidField("default", "does not name an enemy")
	}

	return vb.Build()
}
