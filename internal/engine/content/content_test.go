package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/content"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
)

type ContentTestSuite struct {
	suite.Suite
}

func TestContentSuite(t *testing.T) {
	suite.Run(t, new(ContentTestSuite))
}

func (s *ContentTestSuite) TestDefaultTables() {
	tables := content.Default()

	excalibur := tables.Items.Pool(entities.RarityLegendary, entities.ItemTypeWeapon)
	s.Require().Len(excalibur, 1)
	s.Equal("Excalibur", excalibur[0].Name)
	s.Equal(15, excalibur[0].Bonus.Strength)
	s.Equal(10, excalibur[0].Bonus.Power)

	s.Equal("goblin", tables.Enemies.Fallback().ID)
}

func (s *ContentTestSuite) TestEveryDifficultyHasAnEnemy() {
	tables := content.Default()
	for d := 1; d <= 8; d++ {
		found := false
		for _, e := range tables.Enemies.Enemies {
			if e.Covers(d) {
				found = true
			}
		}
		s.True(found, "difficulty %d has no enemy", d)
	}
}

func (s *ContentTestSuite) TestParseRejectsMissingPools() {
	items := []byte("common:\n  weapon:\n    - {name: Stick}\n")
	enemies := []byte("default: rat\nenemies:\n  - {id: rat, name: Rat, health: 5, attack: 1, defense: 0, min_level: 1, max_level: 8}\n")

	_, err := content.Parse(items, enemies)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "items.common.armor")
}

func (s *ContentTestSuite) TestParseRejectsBadDefault() {
	tables := content.Default()
	tables.Enemies.Default = "unicorn"
	s.Error(tables.Validate())
}

func (s *ContentTestSuite) TestLoadOverrides() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "enemies.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(
		"default: rat\nenemies:\n  - {id: rat, name: Rat, health: 5, attack: 1, defense: 0, min_level: 1, max_level: 8}\n",
	), 0o600))

	tables, err := content.Load("", path)
	s.Require().NoError(err)
	s.Len(tables.Enemies.Enemies, 1)
	s.Equal("Rat", tables.Enemies.Fallback().Name)

	_, err = content.Load(filepath.Join(dir, "missing.yaml"), "")
	s.Error(err)
}
