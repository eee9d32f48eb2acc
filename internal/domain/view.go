package domain

import "time"

// View is the state-dependent projection of a Room handed to callers.
// Exactly two implementations exist, one per State; the unexported
// marker keeps the vote-hiding rule a closed switch instead of an
// optional field somebody forgets to strip.
type View interface {
	roomView()
}

// VoterStatus is a member as seen while votes are still hidden.
type VoterStatus struct {
	Name     string `json:"name"`
	HasVoted bool   `json:"has_voted"`
}

// RevealedVote is a member as seen after reveal. Vote stays nil for
// members who never voted this round.
type RevealedVote struct {
	Name string `json:"name"`
	Vote *int   `json:"vote"`
}

// VotingView hides every vote value; only has_voted flags leak out.
type VotingView struct {
	ID        RoomID                 `json:"id"`
	Name      string                 `json:"name"`
	Deck      Deck                   `json:"deck"`
	State     State                  `json:"state"`
	CreatedAt time.Time              `json:"created_at"`
	Users     map[UserID]VoterStatus `json:"users"`
}

// CompleteView exposes the revealed votes plus derived statistics.
// Statistics is nil when no one voted.
type CompleteView struct {
	ID         RoomID                  `json:"id"`
	Name       string                  `json:"name"`
	Deck       Deck                    `json:"deck"`
	State      State                   `json:"state"`
	CreatedAt  time.Time               `json:"created_at"`
	Users      map[UserID]RevealedVote `json:"users"`
	Statistics *Statistics             `json:"statistics,omitempty"`
}

func (VotingView) roomView()   {}
func (CompleteView) roomView() {}

// View projects the room for its current state.
func (r *Room) View() View {
	switch r.State {
	case StateComplete:
		return r.completeView()
	default:
		return r.votingView()
	}
}

func (r *Room) votingView() VotingView {
	users := make(map[UserID]VoterStatus, len(r.Users))
	for id, u := range r.Users {
		users[id] = VoterStatus{Name: u.Name, HasVoted: u.Vote != nil}
	}
	return VotingView{
		ID:        r.ID,
		Name:      r.Name,
		Deck:      r.Deck,
		State:     r.State,
		CreatedAt: r.CreatedAt,
		Users:     users,
	}
}

func (r *Room) completeView() CompleteView {
	users := make(map[UserID]RevealedVote, len(r.Users))
	votes := make([]int, 0, len(r.Users))
	for id, u := range r.Users {
		users[id] = RevealedVote{Name: u.Name, Vote: u.Vote}
		if u.Vote != nil {
			votes = append(votes, *u.Vote)
		}
	}
	return CompleteView{
		ID:         r.ID,
		Name:       r.Name,
		Deck:       r.Deck,
		State:      r.State,
		CreatedAt:  r.CreatedAt,
		Users:      users,
		Statistics: Summarize(votes),
	}
}
