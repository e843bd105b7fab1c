package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"streamtube/domain/model"
	"streamtube/domain/repository"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 3 * time.Second

// RedisStore keeps the snapshot in a single Redis key. Useful when the
// process has no writable filesystem (containers, serverless).
type RedisStore struct {
	client    *redis.Client
	namespace string
}

func NewRedisStore(addr, username, password, namespace string) (repository.ISnapshot, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("localstore: redis ping: %w", err)
	}
	return &RedisStore{client: client, namespace: namespace}, nil
}

func (s *RedisStore) Load() (*model.PersistedState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.namespace).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("localstore: redis get: %w", err)
	}
	var state model.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("localstore: decoding snapshot: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(state *model.PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("localstore: encoding snapshot: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := s.client.Set(ctx, s.namespace, data, 0).Err(); err != nil {
		return fmt.Errorf("localstore: redis set: %w", err)
	}
	return nil
}
