package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"log-dashboard/internal/models"
)

type redisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotStore stores snapshots as JSON values. A zero ttl keeps them until deleted.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) SnapshotStore {
	return &redisSnapshotStore{client: client, ttl: ttl}
}

func (s *redisSnapshotStore) Put(ctx context.Context, username, fileHash string, snapshot *models.MetricsSnapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, redisSnapshotKey(username, fileHash), jsonData, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to put snapshot: %w", err)
	}
	return nil
}

func (s *redisSnapshotStore) Get(ctx context.Context, username, fileHash string) (*models.MetricsSnapshot, error) {
	data, err := s.client.Get(ctx, redisSnapshotKey(username, fileHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot models.MetricsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *redisSnapshotStore) Delete(ctx context.Context, username, fileHash string) error {
	if err := s.client.Del(ctx, redisSnapshotKey(username, fileHash)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func redisSnapshotKey(username, fileHash string) string {
	return fmt.Sprintf("snapshot:%s:%s", username, fileHash)
}
