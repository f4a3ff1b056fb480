// Package gamestate stores one GameState snapshot per user
package gamestate

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestatemock github.com/KirkDiggler/dungeon-gains/internal/repositories/gamestate Repository

const (
	errUserIDEmpty = "user ID cannot be empty"
	errStateNil    = "state cannot be nil"
)

// GetInput contains parameters for loading a snapshot
type GetInput struct {
	UserID string
}

// GetOutput contains the loaded snapshot. State is normalized.
type GetOutput struct {
	State     *entities.GameState
	UpdatedAt time.Time
}

// SaveInput contains the snapshot to store
type SaveInput struct {
	UserID string
	State  *entities.GameState
}

// SaveOutput contains the result of storing a snapshot
type SaveOutput struct {
	UpdatedAt time.Time
}

// DeleteInput contains parameters for deleting a snapshot
type DeleteInput struct {
	UserID string
}

// DeleteOutput reports whether a snapshot existed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines snapshot storage. A save replaces the whole snapshot.
type Repository interface {
	// Get returns a NotFound error when the user has no snapshot
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

func validateSave(input SaveInput) error {
	if input.UserID == "" {
		return errors.InvalidArgument(errUserIDEmpty)
	}
	if input.State == nil {
		return errors.InvalidArgument(errStateNil)
	}
	return nil
}

func encode(state *entities.GameState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal game state")
	}
	return data, nil
}

// decode parses a stored snapshot and fills in fields older snapshots lack
func decode(userID string, data []byte) (*entities.GameState, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.DataLoss("stored game state is empty").
			WithMeta("user_id", userID)
	}

	var state entities.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored game state is corrupt").
			WithMeta("user_id", userID)
	}
	state.Normalize()
	return &state, nil
}
