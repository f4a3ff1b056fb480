package gamestate

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dungeon-gains/internal/redis"
)

const (
	// Key pattern: gamestate:{user_id}
	keyPrefix = "gamestate:"

	fieldState     = "state"
	fieldUpdatedAt = "updated_at"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL expires idle snapshots. Zero keeps them forever.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a Redis-backed snapshot repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, buildKey(input.UserID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get game state from Redis")
	}

	data, ok := fields[fieldState]
	if !ok {
		return nil, errors.NotFoundf("game state for user %s not found", input.UserID)
	}

	state, err := decode(input.UserID, []byte(data))
	if err != nil {
		return nil, err
	}

	// a malformed timestamp only loses the display value
	updatedAt, _ := time.Parse(time.RFC3339Nano, fields[fieldUpdatedAt])

	return &GetOutput{
		State:     state,
		UpdatedAt: updatedAt,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := encode(input.State)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	key := buildKey(input.UserID)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, fieldState, data, fieldUpdatedAt, now.Format(time.RFC3339Nano))
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store game state in Redis")
	}

	return &SaveOutput{UpdatedAt: now}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	n, err := r.client.Del(ctx, buildKey(input.UserID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete game state from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func buildKey(userID string) string {
	return keyPrefix + userID
}
