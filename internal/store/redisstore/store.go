// Package redisstore backs the room store with Redis. One room is one
// JSON string value under room:<id>; SET with TTL gives us the atomic
// whole-document write and the expiry renewal in a single command.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dkeye/Poker/internal/domain"
	"github.com/dkeye/Poker/internal/store"
)

type Store struct {
	client    *redis.Client
	keyPrefix string
}

// New wraps a connected client. keyPrefix defaults to "poker:".
func New(client *redis.Client, keyPrefix string) *Store {
	if client == nil {
		panic("redis client cannot be nil for redisstore.Store")
	}
	if keyPrefix == "" {
		keyPrefix = "poker:"
	}
	return &Store{client: client, keyPrefix: keyPrefix}
}

func (s *Store) roomKey(id domain.RoomID) string {
	return fmt.Sprintf("%sroom:%s", s.keyPrefix, id)
}

func (s *Store) Get(ctx context.Context, id domain.RoomID) (*domain.Room, error) {
	key := s.roomKey(id)
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("redis: failed to get room from %s: %w", key, err)
	}
	var room domain.Room
	if err := json.Unmarshal([]byte(data), &room); err != nil {
		return nil, fmt.Errorf("redis: failed to unmarshal room from %s: %w", key, err)
	}
	return &room, nil
}

func (s *Store) Put(ctx context.Context, room *domain.Room, ttl time.Duration) error {
	key := s.roomKey(room.ID)
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("redis: failed to marshal room %s: %w", room.ID, err)
	}
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to set room on key %s: %w", key, err)
	}
	return nil
}
