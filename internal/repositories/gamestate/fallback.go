package gamestate

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dungeon-gains/internal/errors"
)

// FallbackConfig pairs a remote store with a local one
type FallbackConfig struct {
	Remote Repository
	Local  Repository
}

// Validate ensures all required dependencies are provided
func (c *FallbackConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Remote == nil {
		vb.RequiredField("Remote")
	}
	if c.Local == nil {
		vb.RequiredField("Local")
	}
	return vb.Build()
}

// fallbackRepository writes through to both stores. The local store is
// authoritative for writes: a save only fails when the local write fails.
// Reads return whichever copy was saved last, so a missed remote sync never
// hides newer local progress.
type fallbackRepository struct {
	remote Repository
	local  Repository
}

// NewFallback creates a write-through repository
func NewFallback(cfg *FallbackConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &fallbackRepository{remote: cfg.Remote, local: cfg.Local}, nil
}

var _ Repository = (*fallbackRepository)(nil)

func (r *fallbackRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	remoteOut, remoteErr := r.remote.Get(ctx, input)
	if errors.IsInvalidArgument(remoteErr) {
		return nil, remoteErr
	}
	if remoteErr != nil && !errors.IsNotFound(remoteErr) {
		slog.WarnContext(ctx, "remote game state unavailable, reading local copy",
			"user_id", input.UserID,
			"error", remoteErr)
	}

	localOut, localErr := r.local.Get(ctx, input)
	if localErr != nil && !errors.IsNotFound(localErr) {
		if remoteErr == nil {
			slog.WarnContext(ctx, "local game state unreadable, using remote copy",
				"user_id", input.UserID,
				"error", localErr)
			return remoteOut, nil
		}
		return nil, localErr
	}

	switch {
	case localErr != nil && remoteErr != nil:
		return nil, remoteErr
	case localErr != nil:
		return remoteOut, nil
	case remoteErr == nil && !localOut.UpdatedAt.After(remoteOut.UpdatedAt):
		return remoteOut, nil
	}

	// local is newer, or the remote never got a copy
	if remoteErr == nil || errors.IsNotFound(remoteErr) {
		r.resync(ctx, input.UserID, localOut)
	}
	return localOut, nil
}

// resync pushes the local copy to the remote store. Failures are logged;
// the next save tries again.
func (r *fallbackRepository) resync(ctx context.Context, userID string, local *GetOutput) {
	if _, err := r.remote.Save(ctx, SaveInput{UserID: userID, State: local.State}); err != nil {
		slog.WarnContext(ctx, "failed to resync game state to remote store",
			"user_id", userID,
			"error", err)
		return
	}
	slog.InfoContext(ctx, "resynced newer local game state to remote store",
		"user_id", userID,
		"local_updated_at", local.UpdatedAt)
}

func (r *fallbackRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	out, err := r.local.Save(ctx, input)
	if err != nil {
		return nil, err
	}

	if _, err := r.remote.Save(ctx, input); err != nil {
		slog.WarnContext(ctx, "failed to sync game state to remote store",
			"user_id", input.UserID,
			"error", err)
	}

	return out, nil
}

func (r *fallbackRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	localOut, localErr := r.local.Delete(ctx, input)
	remoteOut, remoteErr := r.remote.Delete(ctx, input)

	switch {
	case localErr != nil && remoteErr != nil:
		return nil, localErr
	case localErr != nil:
		return remoteOut, nil
	case remoteErr != nil:
		slog.WarnContext(ctx, "failed to delete remote game state",
			"user_id", input.UserID,
			"error", remoteErr)
		return localOut, nil
	}

	return &DeleteOutput{Deleted: localOut.Deleted || remoteOut.Deleted}, nil
}
