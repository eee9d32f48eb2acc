// Package domain holds the room aggregate and its state machine.
// Nothing here touches storage or transport.
package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxRoomNameLen = 100
	MaxUserNameLen = 50
)

var (
	ErrRoomNameEmpty   = errors.New("room name empty")
	ErrRoomNameTooLong = errors.New("room name too long")
	ErrUserNameEmpty   = errors.New("user name empty")
	ErrUserNameTooLong = errors.New("user name too long")

	ErrNotMember       = errors.New("user not in room")
	ErrVotingClosed    = errors.New("cannot vote in complete state")
	ErrAlreadyRevealed = errors.New("room already in complete state")
)

type (
	RoomID string
	UserID string
)

// State drives which mutations are legal and what a caller may see.
type State string

const (
	StateVoting   State = "voting"
	StateComplete State = "complete"
)

// User is one participant's membership and current vote. Vote is nil
// until the user votes and after every reset.
type User struct {
	Name     string    `json:"name"`
	Vote     *int      `json:"vote"`
	JoinedAt time.Time `json:"joined_at"`
}

// Room is the shared estimation session document. It is the unit of
// storage: every mutation rewrites the whole document.
type Room struct {
	ID        RoomID           `json:"id"`
	Name      string           `json:"name"`
	Deck      Deck             `json:"deck"`
	State     State            `json:"state"`
	CreatedAt time.Time        `json:"created_at"`
	Users     map[UserID]*User `json:"users"`
}

// NewRoom builds a room in voting state with the creator as its only
// member. Returns the creator's generated user ID alongside the room.
func NewRoom(name, creatorName string, deck Deck) (*Room, UserID, error) {
	if err := validateRoomName(name); err != nil {
		return nil, "", err
	}
	if err := validateUserName(creatorName); err != nil {
		return nil, "", err
	}
	if _, ok := deckValues[deck]; !ok {
		return nil, "", ErrUnknownDeck
	}

	now := time.Now().UTC()
	creatorID := UserID(uuid.NewString())
	room := &Room{
		ID:        RoomID(uuid.NewString()),
		Name:      name,
		Deck:      deck,
		State:     StateVoting,
		CreatedAt: now,
		Users: map[UserID]*User{
			creatorID: {Name: creatorName, JoinedAt: now},
		},
	}
	return room, creatorID, nil
}

// AddUser appends a new member with no vote. Display names are not
// deduplicated; membership only ever grows.
func (r *Room) AddUser(name string) (UserID, error) {
	if err := validateUserName(name); err != nil {
		return "", err
	}
	id := UserID(uuid.NewString())
	r.Users[id] = &User{Name: name, JoinedAt: time.Now().UTC()}
	return id, nil
}

func (r *Room) HasUser(id UserID) bool {
	_, ok := r.Users[id]
	return ok
}

// CastVote records or overwrites a member's vote. Legal only while the
// room is voting and the value belongs to the room's deck.
func (r *Room) CastVote(id UserID, vote int) error {
	if r.State == StateComplete {
		return ErrVotingClosed
	}
	if !r.Deck.Contains(vote) {
		return &InvalidVoteError{Vote: vote, Deck: r.Deck}
	}
	user, ok := r.Users[id]
	if !ok {
		return ErrNotMember
	}
	v := vote
	user.Vote = &v
	return nil
}

// Reveal freezes voting. Revealing twice is an error, not a no-op.
func (r *Room) Reveal() error {
	if r.State == StateComplete {
		return ErrAlreadyRevealed
	}
	r.State = StateComplete
	return nil
}

// Reset starts a fresh round from either state: all votes cleared,
// room back to voting.
func (r *Room) Reset() {
	r.State = StateVoting
	for _, u := range r.Users {
		u.Vote = nil
	}
}

// Name bounds count characters, not bytes; multi-byte names within
// the limit are legal.
func validateRoomName(name string) error {
	if len(name) == 0 {
		return ErrRoomNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxRoomNameLen {
		return ErrRoomNameTooLong
	}
	return nil
}

func validateUserName(name string) error {
	if len(name) == 0 {
		return ErrUserNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxUserNameLen {
		return ErrUserNameTooLong
	}
	return nil
}
