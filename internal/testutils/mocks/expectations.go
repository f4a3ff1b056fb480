// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/repositories/gamestate"
	gamestatemock "github.com/KirkDiggler/dungeon-gains/internal/repositories/gamestate/mock"
)

// SavedAt is the timestamp returned by saves in these helpers
var SavedAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// ExpectStateGet sets up a mock expectation for loading a snapshot
func ExpectStateGet(
	ctx context.Context, mockRepo *gamestatemock.MockRepository,
	userID string, state *entities.GameState,
) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, gamestate.GetInput{UserID: userID}).
		Return(&gamestate.GetOutput{State: state.Clone(), UpdatedAt: SavedAt}, nil)
}

// ExpectStateMissing sets up a mock expectation for a user with no snapshot
func ExpectStateMissing(ctx context.Context, mockRepo *gamestatemock.MockRepository, userID string) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, gamestate.GetInput{UserID: userID}).
		Return(nil, errors.NotFound("game state not found"))
}

// ExpectStateSave captures the saved snapshot into saved when it is non-nil.
// The context is not matched: saves run detached from the request context.
func ExpectStateSave(
	_ context.Context, mockRepo *gamestatemock.MockRepository,
	userID string, saved **entities.GameState,
) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input gamestate.SaveInput) (*gamestate.SaveOutput, error) {
			if input.UserID != userID {
				return nil, errors.InvalidArgumentf("unexpected user %s", input.UserID)
			}
			if saved != nil {
				*saved = input.State.Clone()
			}
			return &gamestate.SaveOutput{UpdatedAt: SavedAt}, nil
		})
}
