package gamestate

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/clock"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// OpenSQLite opens or creates the snapshot database at path and applies
// the schema
func OpenSQLite(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// each connection to :memory: is its own database
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS game_states (
			user_id TEXT PRIMARY KEY,
			snapshot TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	}
	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.DB == nil {
		vb.RequiredField("DB")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite creates a snapshot repository on a database opened with
// OpenSQLite
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &sqliteRepository{db: cfg.DB, clock: cfg.Clock}, nil
}

var _ Repository = (*sqliteRepository)(nil)

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	var snapshot, updated string
	err := r.db.QueryRowContext(ctx,
		`SELECT snapshot, updated_at FROM game_states WHERE user_id = ?`,
		input.UserID,
	).Scan(&snapshot, &updated)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("game state for user %s not found", input.UserID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query game state")
	}

	state, err := decode(input.UserID, []byte(snapshot))
	if err != nil {
		return nil, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, updated)

	return &GetOutput{State: state, UpdatedAt: updatedAt}, nil
}

func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := encode(input.State)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO game_states (user_id, snapshot, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		input.UserID, string(data), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store game state")
	}

	return &SaveOutput{UpdatedAt: now}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM game_states WHERE user_id = ?`, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete game state")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read delete result")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}
