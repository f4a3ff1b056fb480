package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dungeon-gains/internal/clients/exercises"
	"github.com/KirkDiggler/dungeon-gains/internal/config"
	"github.com/KirkDiggler/dungeon-gains/internal/engine"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/content"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/orchestrators/game"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/rng"
	redisclient "github.com/KirkDiggler/dungeon-gains/internal/redis"
	"github.com/KirkDiggler/dungeon-gains/internal/repositories/gamestate"
)

// app holds the wired game service and everything that must be closed
// when the command exits
type app struct {
	repository gamestate.Repository
	service    game.Service
	bus        events.EventBus
	closers    []func() error
}

// Close releases storage connections in reverse order of creation
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
}

func newApp(ctx context.Context, cfg *config.Config, random rng.Source) (*app, error) {
	a := &app{}
	clk := clock.New()

	repo, err := a.newRepository(ctx, cfg, clk)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.repository = repo

	tables := content.Default()
	if cfg.Game.ItemsPath != "" || cfg.Game.EnemiesPath != "" {
		tables, err = content.Load(cfg.Game.ItemsPath, cfg.Game.EnemiesPath)
		if err != nil {
			a.Close()
			return nil, errors.Wrap(err, "failed to load content tables")
		}
	}

	if random == nil {
		random = newRandom(cfg.Game.Seed)
	}

	eng, err := engine.New(&engine.Config{
		Tables: tables,
		Random: random,
		Clock:  clk,
		IDs:    idgen.NewUUIDSet(),
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create engine")
	}

	catalog, err := exercises.New(&exercises.Config{
		APIKey:      cfg.Exercises.APIKey,
		BaseURL:     cfg.Exercises.BaseURL,
		HTTPTimeout: cfg.Exercises.Timeout,
		CacheTTL:    cfg.Exercises.CacheTTL,
		Clock:       clk,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create exercise client")
	}

	a.bus = events.NewBus()
	game.LogEvents(a.bus)

	a.service, err = game.NewOrchestrator(&game.Config{
		Repository:         repo,
		Engine:             eng,
		Exercises:          catalog,
		EventBus:           a.bus,
		AutoAttackInterval: cfg.Game.AutoAttackInterval,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create game orchestrator")
	}

	return a, nil
}

// newRandom picks the production dice roller unless a seed pins every roll
func newRandom(seed int64) rng.Source {
	if seed != 0 {
		return rng.NewSeeded(uint64(seed))
	}
	return rng.NewDice(nil)
}

func (a *app) newRepository(ctx context.Context, cfg *config.Config, clk clock.Clock) (gamestate.Repository, error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		return a.newRedisRepository(ctx, cfg, clk, true)
	case config.StorageSQLite:
		return a.newSQLiteRepository(cfg.Storage.SQLitePath, clk)
	case config.StorageFallback:
		local, err := a.newSQLiteRepository(cfg.Storage.SQLitePath, clk)
		if err != nil {
			return nil, err
		}
		// Redis may come up later; the fallback store covers the gap.
		remote, err := a.newRedisRepository(ctx, cfg, clk, false)
		if err != nil {
			return nil, err
		}
		return gamestate.NewFallback(&gamestate.FallbackConfig{
			Remote: remote,
			Local:  local,
		})
	default:
		return nil, errors.InvalidArgumentf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// newRedisRepository connects to redis. When required is false a failed
// ping is only logged.
func (a *app) newRedisRepository(
	ctx context.Context,
	cfg *config.Config,
	clk clock.Clock,
	required bool,
) (gamestate.Repository, error) {
	client, err := redisclient.NewClient(cfg.Redis.URL, &redisclient.Options{
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: 5 * time.Second,
		UseTLS:      cfg.Redis.TLS,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis configuration")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		if required {
			_ = client.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
		}
		slog.WarnContext(ctx, "redis unavailable, serving from local snapshots", "error", err)
	}
	a.closers = append(a.closers, client.Close)

	slog.InfoContext(ctx, "using redis snapshot store", "url", cfg.Redis.URL)
	return gamestate.NewRedis(&gamestate.RedisConfig{
		Client: client,
		Clock:  clk,
		TTL:    cfg.Storage.SnapshotTTL,
	})
}

func (a *app) newSQLiteRepository(path string, clk clock.Clock) (gamestate.Repository, error) {
	db, err := gamestate.OpenSQLite(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite store")
	}
	a.closers = append(a.closers, db.Close)

	slog.Info("using sqlite snapshot store", "path", path)
	return gamestate.NewSQLite(&gamestate.SQLiteConfig{
		DB:    db,
		Clock: clk,
	})
}
