package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Poker/internal/domain"
)

func newTestRoom(t *testing.T) (*domain.Room, domain.UserID) {
	t.Helper()
	room, creatorID, err := domain.NewRoom("Sprint 1", "Alice", domain.DeckFibonacci)
	require.NoError(t, err)
	return room, creatorID
}

func TestNewRoom(t *testing.T) {
	room, creatorID := newTestRoom(t)

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "Sprint 1", room.Name)
	assert.Equal(t, domain.StateVoting, room.State)
	assert.False(t, room.CreatedAt.IsZero())
	require.Len(t, room.Users, 1)
	assert.Equal(t, "Alice", room.Users[creatorID].Name)
	assert.Nil(t, room.Users[creatorID].Vote)
}

func TestNewRoomValidation(t *testing.T) {
	_, _, err := domain.NewRoom("", "Alice", domain.DeckFibonacci)
	assert.ErrorIs(t, err, domain.ErrRoomNameEmpty)

	_, _, err = domain.NewRoom(strings.Repeat("x", 101), "Alice", domain.DeckFibonacci)
	assert.ErrorIs(t, err, domain.ErrRoomNameTooLong)

	_, _, err = domain.NewRoom("Sprint 1", "", domain.DeckFibonacci)
	assert.ErrorIs(t, err, domain.ErrUserNameEmpty)

	_, _, err = domain.NewRoom("Sprint 1", strings.Repeat("x", 51), domain.DeckFibonacci)
	assert.ErrorIs(t, err, domain.ErrUserNameTooLong)

	_, _, err = domain.NewRoom("Sprint 1", "Alice", domain.Deck("tarot"))
	assert.ErrorIs(t, err, domain.ErrUnknownDeck)

	// Boundary lengths are legal.
	_, _, err = domain.NewRoom(strings.Repeat("x", 100), strings.Repeat("y", 50), domain.DeckOrdinal)
	assert.NoError(t, err)
}

func TestNewRoomValidationCountsCharactersNotBytes(t *testing.T) {
	// Two bytes per rune: 100/50 characters are within bounds even
	// though the byte lengths are double the limits.
	_, _, err := domain.NewRoom(strings.Repeat("ы", 100), strings.Repeat("ж", 50), domain.DeckFibonacci)
	assert.NoError(t, err)

	_, _, err = domain.NewRoom(strings.Repeat("ы", 101), "Alice", domain.DeckFibonacci)
	assert.ErrorIs(t, err, domain.ErrRoomNameTooLong)

	_, _, err = domain.NewRoom("Sprint 1", strings.Repeat("ж", 51), domain.DeckFibonacci)
	assert.ErrorIs(t, err, domain.ErrUserNameTooLong)
}

func TestAddUserAllowsDuplicateNames(t *testing.T) {
	room, creatorID := newTestRoom(t)

	id1, err := room.AddUser("Alice")
	require.NoError(t, err)
	id2, err := room.AddUser("Alice")
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.NotEqual(t, creatorID, id1)
	assert.Len(t, room.Users, 3)
}

func TestCastVote(t *testing.T) {
	room, creatorID := newTestRoom(t)

	require.NoError(t, room.CastVote(creatorID, 5))
	require.NotNil(t, room.Users[creatorID].Vote)
	assert.Equal(t, 5, *room.Users[creatorID].Vote)

	// Votes are freely changeable while voting.
	require.NoError(t, room.CastVote(creatorID, 13))
	assert.Equal(t, 13, *room.Users[creatorID].Vote)
}

func TestCastVoteRejectsValueOutsideDeck(t *testing.T) {
	room, creatorID := newTestRoom(t)

	err := room.CastVote(creatorID, 4)
	var invalid *domain.InvalidVoteError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 4, invalid.Vote)
	assert.Equal(t, domain.DeckFibonacci, invalid.Deck)
	assert.Nil(t, room.Users[creatorID].Vote)

	// Same value is legal against an ordinal room.
	ordinal, ordCreator, err := domain.NewRoom("Sprint 2", "Bob", domain.DeckOrdinal)
	require.NoError(t, err)
	assert.NoError(t, ordinal.CastVote(ordCreator, 4))
}

func TestCastVoteRejectsNonMember(t *testing.T) {
	room, _ := newTestRoom(t)
	err := room.CastVote("ghost", 5)
	assert.ErrorIs(t, err, domain.ErrNotMember)
	assert.Len(t, room.Users, 1)
}

func TestCastVoteForbiddenAfterReveal(t *testing.T) {
	room, creatorID := newTestRoom(t)
	require.NoError(t, room.Reveal())

	err := room.CastVote(creatorID, 5)
	assert.ErrorIs(t, err, domain.ErrVotingClosed)
}

func TestRevealTwiceFails(t *testing.T) {
	room, _ := newTestRoom(t)

	require.NoError(t, room.Reveal())
	assert.Equal(t, domain.StateComplete, room.State)

	assert.ErrorIs(t, room.Reveal(), domain.ErrAlreadyRevealed)
}

func TestResetClearsVotesFromEitherState(t *testing.T) {
	room, creatorID := newTestRoom(t)
	bobID, err := room.AddUser("Bob")
	require.NoError(t, err)
	require.NoError(t, room.CastVote(creatorID, 5))
	require.NoError(t, room.CastVote(bobID, 8))
	require.NoError(t, room.Reveal())

	room.Reset()
	assert.Equal(t, domain.StateVoting, room.State)
	for _, u := range room.Users {
		assert.Nil(t, u.Vote)
	}

	// Reset while already voting is a restart, not an error.
	require.NoError(t, room.CastVote(creatorID, 2))
	room.Reset()
	assert.Equal(t, domain.StateVoting, room.State)
	assert.Nil(t, room.Users[creatorID].Vote)
}

func TestVotingViewHidesVoteValues(t *testing.T) {
	room, creatorID := newTestRoom(t)
	bobID, err := room.AddUser("Bob")
	require.NoError(t, err)
	require.NoError(t, room.CastVote(creatorID, 5))

	view, ok := room.View().(domain.VotingView)
	require.True(t, ok, "voting room must project a VotingView")
	assert.Equal(t, room.ID, view.ID)
	assert.Equal(t, domain.StateVoting, view.State)
	assert.True(t, view.Users[creatorID].HasVoted)
	assert.False(t, view.Users[bobID].HasVoted)
}

func TestCompleteViewExposesVotesAndStatistics(t *testing.T) {
	room, creatorID := newTestRoom(t)
	bobID, err := room.AddUser("Bob")
	require.NoError(t, err)
	carolID, err := room.AddUser("Carol")
	require.NoError(t, err)
	require.NoError(t, room.CastVote(creatorID, 5))
	require.NoError(t, room.CastVote(bobID, 8))
	require.NoError(t, room.Reveal())

	view, ok := room.View().(domain.CompleteView)
	require.True(t, ok, "complete room must project a CompleteView")
	assert.Equal(t, domain.StateComplete, view.State)
	require.NotNil(t, view.Users[creatorID].Vote)
	assert.Equal(t, 5, *view.Users[creatorID].Vote)
	require.NotNil(t, view.Users[bobID].Vote)
	assert.Equal(t, 8, *view.Users[bobID].Vote)
	assert.Nil(t, view.Users[carolID].Vote)

	require.NotNil(t, view.Statistics)
	assert.Equal(t, 6.5, view.Statistics.Average)
	assert.Equal(t, 8, view.Statistics.Median) // upper-middle of [5 8]
	assert.Equal(t, 5, view.Statistics.Min)
	assert.Equal(t, 8, view.Statistics.Max)
}

func TestCompleteViewOmitsStatisticsWithoutVotes(t *testing.T) {
	room, _ := newTestRoom(t)
	require.NoError(t, room.Reveal())

	view, ok := room.View().(domain.CompleteView)
	require.True(t, ok)
	assert.Nil(t, view.Statistics)
}
