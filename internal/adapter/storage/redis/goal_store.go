package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// GoalStore implements ports.GoalStore using Redis. References never expire.
type GoalStore struct {
	client *goredis.Client
	prefix string
}

// NewGoalStore creates a Redis-backed savings goal reference store.
func NewGoalStore(client *goredis.Client) *GoalStore {
	return &GoalStore{
		client: client,
		prefix: "roundup:goal:",
	}
}

// Get returns the stored goal uid, or "" if none is stored.
func (s *GoalStore) Get(ctx context.Context, accountUID string) (string, error) {
	val, err := s.client.Get(ctx, s.prefix+accountUID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis goal get: %w", err)
	}
	return val, nil
}

// Set stores the goal uid for an account, replacing any previous one.
func (s *GoalStore) Set(ctx context.Context, accountUID, goalUID string) error {
	if err := s.client.Set(ctx, s.prefix+accountUID, goalUID, 0).Err(); err != nil {
		return fmt.Errorf("redis goal set: %w", err)
	}
	return nil
}

// Delete forgets the goal for an account.
func (s *GoalStore) Delete(ctx context.Context, accountUID string) error {
	if err := s.client.Del(ctx, s.prefix+accountUID).Err(); err != nil {
		return fmt.Errorf("redis goal delete: %w", err)
	}
	return nil
}
