// Package memstore is the in-process room store: an RWMutex-guarded
// map of serialized documents with lazy expiry plus an optional
// reaper. Used by tests and single-node dev runs.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dkeye/Poker/internal/domain"
	"github.com/dkeye/Poker/internal/store"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

type Store struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]entry
}

func New() *Store {
	return &Store{rooms: make(map[domain.RoomID]entry)}
}

// Get returns an independent copy of the document. Expired entries are
// indistinguishable from absent ones.
func (s *Store) Get(ctx context.Context, id domain.RoomID) (*domain.Room, error) {
	s.mu.RLock()
	e, ok := s.rooms[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, store.ErrNotFound
	}
	var room domain.Room
	if err := json.Unmarshal(e.data, &room); err != nil {
		return nil, fmt.Errorf("memstore: failed to unmarshal room %s: %w", id, err)
	}
	return &room, nil
}

// Put serializes the room so later mutations of the caller's copy
// cannot leak into the stored document. The expiry clock restarts at
// ttl on every write.
func (s *Store) Put(ctx context.Context, room *domain.Room, ttl time.Duration) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("memstore: failed to marshal room %s: %w", room.ID, err)
	}
	s.mu.Lock()
	s.rooms[room.ID] = entry{data: data, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

// Reap drops expired entries on an interval until ctx is done. Get
// already treats expired entries as absent; this just frees memory.
func (s *Store) Reap(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.rooms {
				if now.After(e.expiresAt) {
					delete(s.rooms, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
