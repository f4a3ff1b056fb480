package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-gains/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("item")
	s.Equal("item_1", gen.Generate())
	s.Equal("item_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestPrefixedAndUUIDAreUnique() {
	for _, gen := range []idgen.Generator{idgen.NewPrefixed("dungeon"), idgen.NewUUID("item")} {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := gen.Generate()
			s.False(seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	}
	s.True(strings.HasPrefix(idgen.NewUUID("enemy").Generate(), "enemy_"))
}

func (s *IDGenTestSuite) TestSets() {
	set := idgen.NewSequentialSet()
	s.Equal("item_1", set.Items.Generate())
	s.Equal("enemy_1", set.Enemies.Generate())
	s.Equal("dungeon_1", set.Dungeons.Generate())

	prod := idgen.NewUUIDSet()
	s.True(strings.HasPrefix(prod.Workouts.Generate(), "workout_"))
}
