package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-gains/internal/config"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(body string) string {
	path := filepath.Join(s.dir, "gains.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(nil, "")
	s.Require().NoError(err)

	s.Equal(50051, cfg.Server.Port)
	s.Equal(config.StorageSQLite, cfg.Storage.Backend)
	s.Equal("data/gains.db", cfg.Storage.SQLitePath)
	s.Equal(24*time.Hour, cfg.Exercises.CacheTTL)
	s.Equal(800*time.Millisecond, cfg.Game.AutoAttackInterval)
	s.Equal("INFO", cfg.Logging.Level)
	s.True(cfg.Logging.ConsoleEnabled)
}

func (s *ConfigTestSuite) TestFile() {
	path := s.write(`
server:
  port: 6000
storage:
  backend: fallback
  sqlite_path: /tmp/gains.db
  snapshot_ttl: 720h
redis:
  url: redis://cache:6379/2
game:
  seed: 42
  auto_attack_interval: 250ms
logging:
  level: DEBUG
  console_format: json
`)

	cfg, err := config.Load(nil, path)
	s.Require().NoError(err)

	s.Equal(6000, cfg.Server.Port)
	s.Equal(config.StorageFallback, cfg.Storage.Backend)
	s.Equal(720*time.Hour, cfg.Storage.SnapshotTTL)
	s.Equal("redis://cache:6379/2", cfg.Redis.URL)
	s.Equal(int64(42), cfg.Game.Seed)
	s.Equal(250*time.Millisecond, cfg.Game.AutoAttackInterval)
	s.Equal("DEBUG", cfg.Logging.Level)
	s.Equal("json", cfg.Logging.ConsoleFormat)
	s.Equal(30*time.Second, cfg.Server.ShutdownTimeout)
}

func (s *ConfigTestSuite) TestEnvOverridesFile() {
	path := s.write("server:\n  port: 6000\n")
	s.T().Setenv("GAINS_SERVER_PORT", "7000")
	s.T().Setenv("GAINS_EXERCISES_API_KEY", "secret")

	cfg, err := config.Load(nil, path)
	s.Require().NoError(err)
	s.Equal(7000, cfg.Server.Port)
	s.Equal("secret", cfg.Exercises.APIKey)
}

func (s *ConfigTestSuite) TestMissingFile() {
	_, err := config.Load(nil, filepath.Join(s.dir, "nope.yaml"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidation() {
	testCases := []struct {
		name string
		body string
	}{
		{"bad backend", "storage:\n  backend: postgres\n"},
		{"bad port", "server:\n  port: 70000\n"},
		{"no redis url", "storage:\n  backend: redis\nredis:\n  url: \"\"\n"},
		{"no sqlite path", "storage:\n  backend: sqlite\n  sqlite_path: \"\"\n"},
		{"zero auto attack", "game:\n  auto_attack_interval: 0s\n"},
		{"bad log format", "logging:\n  console_format: xml\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.Load(nil, s.write(tc.body))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), err.Error())
		})
	}
}
