// Package app implements the room state machine over the store: every
// operation is one load-validate-mutate-persist round trip, and every
// successful write renews the room's retention window.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Poker/internal/domain"
	"github.com/dkeye/Poker/internal/store"
)

type RoomService struct {
	store      store.Store
	ttl        time.Duration
	maxMembers int // 0 means unlimited
}

func NewRoomService(st store.Store, ttl time.Duration, maxMembers int) *RoomService {
	if st == nil {
		panic("store cannot be nil for RoomService")
	}
	return &RoomService{store: st, ttl: ttl, maxMembers: maxMembers}
}

// Create validates names, builds a voting-state room with the creator
// as its only member, and persists it with the full retention TTL.
func (s *RoomService) Create(ctx context.Context, roomName, creatorName string, deck domain.Deck) (domain.RoomID, domain.UserID, domain.View, error) {
	room, creatorID, err := domain.NewRoom(roomName, creatorName, deck)
	if err != nil {
		return "", "", nil, err
	}
	if err := s.store.Put(ctx, room, s.ttl); err != nil {
		return "", "", nil, err
	}
	log.Info().
		Str("room_id", string(room.ID)).
		Str("deck", string(room.Deck)).
		Msg("room created")
	return room.ID, creatorID, room.View(), nil
}

// Join appends a member and returns the view for the room's current
// state: a late joiner to a completed round sees revealed votes and
// cannot vote until the next reset.
func (s *RoomService) Join(ctx context.Context, roomID domain.RoomID, name string) (domain.UserID, domain.View, error) {
	room, err := s.load(ctx, roomID)
	if err != nil {
		return "", nil, err
	}
	if s.maxMembers > 0 && len(room.Users) >= s.maxMembers {
		return "", nil, ErrRoomFull
	}
	userID, err := room.AddUser(name)
	if err != nil {
		return "", nil, err
	}
	if err := s.store.Put(ctx, room, s.ttl); err != nil {
		return "", nil, err
	}
	log.Info().
		Str("room_id", string(roomID)).
		Str("user_id", string(userID)).
		Msg("user joined room")
	return userID, room.View(), nil
}

// State returns the filtered view of the room. userID is accepted for
// future personalization but does not gate access, and a read never
// rewrites the document, so it does not renew the TTL.
func (s *RoomService) State(ctx context.Context, roomID domain.RoomID, userID domain.UserID) (domain.View, error) {
	room, err := s.load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return room.View(), nil
}

// Vote records or overwrites a member's vote while the room is voting.
func (s *RoomService) Vote(ctx context.Context, roomID domain.RoomID, userID domain.UserID, vote int) (domain.View, error) {
	room, err := s.load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := room.CastVote(userID, vote); err != nil {
		if errors.Is(err, domain.ErrNotMember) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.store.Put(ctx, room, s.ttl); err != nil {
		return nil, err
	}
	log.Debug().
		Str("room_id", string(roomID)).
		Str("user_id", string(userID)).
		Msg("vote recorded")
	return room.View(), nil
}

// Reveal flips the room to complete. Any member may call it; revealing
// an already complete room is an error, not a no-op.
func (s *RoomService) Reveal(ctx context.Context, roomID domain.RoomID, userID domain.UserID) (domain.View, error) {
	room, err := s.load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasUser(userID) {
		return nil, ErrUserNotFound
	}
	if err := room.Reveal(); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, room, s.ttl); err != nil {
		return nil, err
	}
	log.Info().Str("room_id", string(roomID)).Msg("votes revealed")
	return room.View(), nil
}

// Reset starts a fresh round from either state, clearing every vote.
func (s *RoomService) Reset(ctx context.Context, roomID domain.RoomID, userID domain.UserID) (domain.View, error) {
	room, err := s.load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasUser(userID) {
		return nil, ErrUserNotFound
	}
	room.Reset()
	if err := s.store.Put(ctx, room, s.ttl); err != nil {
		return nil, err
	}
	log.Info().Str("room_id", string(roomID)).Msg("room reset")
	return room.View(), nil
}

func (s *RoomService) load(ctx context.Context, roomID domain.RoomID) (*domain.Room, error) {
	room, err := s.store.Get(ctx, roomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}
