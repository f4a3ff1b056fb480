// Package config loads service configuration from an optional YAML file,
// GAINS_* environment variables and bound command line flags, in increasing
// order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/logger"
)

// EnvPrefix prefixes every environment override, e.g. GAINS_SERVER_PORT
const EnvPrefix = "GAINS"

// Storage backends
const (
	StorageRedis    = "redis"
	StorageSQLite   = "sqlite"
	StorageFallback = "fallback"
)

// Config is the full service configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Exercises ExercisesConfig `mapstructure:"exercises"`
	Game      GameConfig      `mapstructure:"game"`
	Logging   logger.Config   `mapstructure:"logging"`
}

// ServerConfig configures the gRPC listener
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Reflection      bool          `mapstructure:"reflection"`
}

// StorageConfig picks where snapshots live
type StorageConfig struct {
	Backend     string        `mapstructure:"backend"`
	SQLitePath  string        `mapstructure:"sqlite_path"`
	SnapshotTTL time.Duration `mapstructure:"snapshot_ttl"`
}

// RedisConfig configures the remote snapshot store
type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	TLS      bool   `mapstructure:"tls"`
}

// ExercisesConfig configures the exercise catalog client
type ExercisesConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// GameConfig tunes the simulation
type GameConfig struct {
	// Seed makes every roll reproducible. Zero means a random seed.
	Seed               int64         `mapstructure:"seed"`
	AutoAttackInterval time.Duration `mapstructure:"auto_attack_interval"`
	// ItemsPath and EnemiesPath replace the built-in content tables
	ItemsPath   string `mapstructure:"items_path"`
	EnemiesPath string `mapstructure:"enemies_path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.reflection", true)

	v.SetDefault("storage.backend", StorageSQLite)
	v.SetDefault("storage.sqlite_path", "data/gains.db")
	v.SetDefault("storage.snapshot_ttl", time.Duration(0))

	v.SetDefault("redis.url", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.tls", false)

	v.SetDefault("exercises.api_key", "")
	v.SetDefault("exercises.base_url", "https://api.api-ninjas.com/v1/exercises")
	v.SetDefault("exercises.timeout", 10*time.Second)
	v.SetDefault("exercises.cache_ttl", 24*time.Hour)

	v.SetDefault("game.seed", int64(0))
	v.SetDefault("game.auto_attack_interval", 800*time.Millisecond)
	v.SetDefault("game.items_path", "")
	v.SetDefault("game.enemies_path", "")

	d := logger.DefaultConfig()
	v.SetDefault("logging.level", d.Level)
	v.SetDefault("logging.console_enabled", d.ConsoleEnabled)
	v.SetDefault("logging.console_format", d.ConsoleFormat)
	v.SetDefault("logging.file_enabled", d.FileEnabled)
	v.SetDefault("logging.file_path", d.FilePath)
	v.SetDefault("logging.file_format", d.FileFormat)
	v.SetDefault("logging.file_max_size_mb", d.FileMaxSizeMB)
	v.SetDefault("logging.file_max_backups", d.FileMaxBackups)
	v.SetDefault("logging.file_max_age_days", d.FileMaxAgeDays)
}

// NewViper returns a viper instance with defaults and env overrides wired.
// Flags can be bound to it before Load is called.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, if one is given, and decodes the result
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file").
				WithMeta("path", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the decoded configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	errors.ValidateEnum("storage.backend", c.Storage.Backend,
		[]string{StorageRedis, StorageSQLite, StorageFallback}, vb)

	if c.Storage.Backend != StorageRedis {
		errors.ValidateRequired("storage.sqlite_path", c.Storage.SQLitePath, vb)
	}
	if c.Storage.Backend != StorageSQLite {
		errors.ValidateRequired("redis.url", c.Redis.URL, vb)
	}
	if c.Storage.SnapshotTTL < 0 {
		vb.InvalidField("storage.snapshot_ttl", "must not be negative")
	}
	if c.Game.AutoAttackInterval <= 0 {
		vb.InvalidField("game.auto_attack_interval", "must be positive")
	}

	if err := vb.Build(); err != nil {
		return err
	}

	return c.Logging.Validate()
}
