// Package store defines the keyed, expiring holder of room documents.
// Implementations know nothing about room semantics.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/dkeye/Poker/internal/domain"
)

// ErrNotFound covers both rooms that never existed and rooms whose
// retention window has lapsed; callers cannot tell the two apart.
var ErrNotFound = errors.New("store: room not found")

// Store is atomic at whole-document granularity: Put either lands the
// full document or nothing, and resets the expiry countdown to ttl on
// every write. Get never extends a room's lifetime.
type Store interface {
	Get(ctx context.Context, id domain.RoomID) (*domain.Room, error)
	Put(ctx context.Context, room *domain.Room, ttl time.Duration) error
}
