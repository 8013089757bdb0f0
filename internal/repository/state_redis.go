package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"knockout-tournament-backend/internal/database/models"
	apperrors "knockout-tournament-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStateRepository stores state snapshots as JSON values in Redis
type RedisStateRepository struct {
	client *redis.Client
}

// NewRedisStateRepository creates a new Redis backed state repository
func NewRedisStateRepository(client *redis.Client) *RedisStateRepository {
	return &RedisStateRepository{client: client}
}

// Get retrieves the snapshot stored under key
func (r *RedisStateRepository) Get(ctx context.Context, key string) (*models.StateSnapshot, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrStateNotFound
		}
		return nil, fmt.Errorf("get state %q: %w", key, err)
	}

	var snapshot models.StateSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode state %q: %w", key, err)
	}
	snapshot.Key = key
	return &snapshot, nil
}

// Save overwrites the value stored under the snapshot key, keeping the
// creation time of the value it replaces
func (r *RedisStateRepository) Save(ctx context.Context, snapshot *models.StateSnapshot) error {
	now := time.Now().UTC()
	if snapshot.CreatedAt.IsZero() {
		existing, err := r.Get(ctx, snapshot.Key)
		switch {
		case err == nil:
			snapshot.CreatedAt = existing.CreatedAt
		case errors.Is(err, apperrors.ErrStateNotFound):
			snapshot.CreatedAt = now
		default:
			return fmt.Errorf("save state %q: %w", snapshot.Key, err)
		}
	}
	snapshot.UpdatedAt = now
	snapshot.Revision = uuid.New()

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode state %q: %w", snapshot.Key, err)
	}
	if err := r.client.Set(ctx, snapshot.Key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save state %q: %w", snapshot.Key, err)
	}
	return nil
}

// Delete removes the value stored under key
func (r *RedisStateRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// Ping checks the Redis connection
func (r *RedisStateRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
