package gamestate_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-gains/internal/repositories/gamestate"
	"github.com/KirkDiggler/dungeon-gains/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	path string
	db   *sql.DB
	repo gamestate.Repository
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "data", "gains.db")

	db, err := gamestate.OpenSQLite(s.path)
	s.Require().NoError(err)
	s.db = db

	repo, err := gamestate.NewSQLite(&gamestate.SQLiteConfig{
		DB:    db,
		Clock: clock.NewFixed(testutils.FixtureTime),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *SQLiteRepositoryTestSuite) TestSaveAndGet() {
	state := testutils.DemoHero()

	_, err := s.repo.Save(s.ctx, gamestate.SaveInput{UserID: testutils.TestUserID, State: state})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, gamestate.GetInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(state, got.State)
	s.Equal(testutils.FixtureTime, got.UpdatedAt)

	s.Run("upsert", func() {
		state.Player.HealthPotions = 7
		_, err := s.repo.Save(s.ctx, gamestate.SaveInput{UserID: testutils.TestUserID, State: state})
		s.Require().NoError(err)

		var count int
		s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM game_states`).Scan(&count))
		s.Equal(1, count)

		got, err := s.repo.Get(s.ctx, gamestate.GetInput{UserID: testutils.TestUserID})
		s.Require().NoError(err)
		s.Equal(7, got.State.Player.HealthPotions)
	})
}

func (s *SQLiteRepositoryTestSuite) TestSurvivesReopen() {
	_, err := s.repo.Save(s.ctx, gamestate.SaveInput{UserID: testutils.TestUserID, State: testutils.NewGameState()})
	s.Require().NoError(err)

	reopened, err := gamestate.OpenSQLite(s.path)
	s.Require().NoError(err)
	defer reopened.Close()

	repo, err := gamestate.NewSQLite(&gamestate.SQLiteConfig{DB: reopened, Clock: clock.New()})
	s.Require().NoError(err)

	got, err := repo.Get(s.ctx, gamestate.GetInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(testutils.TestCharacterName, got.State.Player.Name)
}

func (s *SQLiteRepositoryTestSuite) TestNotFoundAndDelete() {
	_, err := s.repo.Get(s.ctx, gamestate.GetInput{UserID: "nobody"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.Delete(s.ctx, gamestate.DeleteInput{UserID: "nobody"})
	s.Require().NoError(err)
	s.False(out.Deleted)

	_, err = s.repo.Save(s.ctx, gamestate.SaveInput{UserID: "somebody", State: testutils.NewGameState()})
	s.Require().NoError(err)
	out, err = s.repo.Delete(s.ctx, gamestate.DeleteInput{UserID: "somebody"})
	s.Require().NoError(err)
	s.True(out.Deleted)
}

func (s *SQLiteRepositoryTestSuite) TestCorruptRow() {
	_, err := s.db.Exec(`INSERT INTO game_states (user_id, snapshot, updated_at) VALUES ('bad', 'not json', '')`)
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, gamestate.GetInput{UserID: "bad"})
	s.True(errors.IsDataLoss(err))

	s.Run("empty snapshot", func() {
		for i, snapshot := range []string{"", "null", "  "} {
			userID := fmt.Sprintf("empty_%d", i)
			_, err := s.db.Exec(`INSERT INTO game_states (user_id, snapshot, updated_at) VALUES (?, ?, '')`, userID, snapshot)
			s.Require().NoError(err)

			_, err = s.repo.Get(s.ctx, gamestate.GetInput{UserID: userID})
			s.True(errors.IsDataLoss(err), snapshot)
			s.Equal(userID, errors.GetMeta(err)["user_id"])
		}
	})
}

func (s *SQLiteRepositoryTestSuite) TestMemory() {
	db, err := gamestate.OpenSQLite(gamestate.MemoryPath)
	s.Require().NoError(err)
	defer db.Close()

	repo, err := gamestate.NewSQLite(&gamestate.SQLiteConfig{DB: db, Clock: clock.New()})
	s.Require().NoError(err)

	_, err = repo.Save(s.ctx, gamestate.SaveInput{UserID: "mem", State: testutils.NewGameState()})
	s.Require().NoError(err)
	_, err = repo.Get(s.ctx, gamestate.GetInput{UserID: "mem"})
	s.NoError(err)
}
