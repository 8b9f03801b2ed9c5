package entity

import (
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	BoardSize = 15

	EmptyCell  = ""
	OwnerToken = "o"
	GuestToken = "g"
)

// Match phases, in lifecycle order.
const (
	PhaseOpen     = "open"
	PhaseFull     = "full"
	PhaseActive   = "active"
	PhaseTerminal = "terminal"
)

// Terminal outcomes. Empty until the match reaches PhaseTerminal.
const (
	OutcomeNone      = ""
	OutcomeWin       = "win"
	OutcomeDraw      = "draw"
	OutcomeSurrender = "surrender"
)

// Board is the 15x15 grid, row-major. A cell holds EmptyCell, OwnerToken
// or GuestToken.
type Board [BoardSize][BoardSize]string

type Match struct {
	ID               string         `json:"id"`
	Board            Board          `json:"board"`
	ParticipantCount int            `json:"players_count"`
	Phase            string         `json:"phase"`
	Outcome          string         `json:"outcome,omitempty"`
	TurnHolder       string         `json:"turn_holder,omitempty"`
	Participants     []*Participant `json:"players"`
}

func NewMatch(id string, owner *Participant) *Match {
	return &Match{
		ID:               id,
		Phase:            PhaseOpen,
		ParticipantCount: 1,
		Participants:     []*Participant{owner},
	}
}

func (that *Match) IsOpen() bool {
	return that.Phase == PhaseOpen
}

func (that *Match) IsFull() bool {
	return that.Phase == PhaseFull
}

func (that *Match) IsActive() bool {
	return that.Phase == PhaseActive
}

func (that *Match) IsTerminal() bool {
	return that.Phase == PhaseTerminal
}

// ParticipantByUser returns the seat held by the given user, or nil.
func (that *Match) ParticipantByUser(userID string) *Participant {
	for _, participant := range that.Participants {
		if participant.UserID == userID {
			return participant
		}
	}
	return nil
}

// ParticipantByID returns the seat with the given participant id, or nil.
func (that *Match) ParticipantByID(id string) *Participant {
	for _, participant := range that.Participants {
		if participant.ID == id {
			return participant
		}
	}
	return nil
}

// Opponent returns the other seat, or nil if the match has only one.
func (that *Match) Opponent(participantID string) *Participant {
	for _, participant := range that.Participants {
		if participant.ID != participantID {
			return participant
		}
	}
	return nil
}

// Join seats a second participant and moves the match to PhaseFull.
func (that *Match) Join(participant *Participant) error {
	if that.ParticipantByUser(participant.UserID) != nil {
		return apperror.ErrAlreadyJoined
	}

	if that.ParticipantCount == 2 {
		return apperror.ErrGameFull
	}

	that.Participants = append(that.Participants, participant)
	that.ParticipantCount = 2
	that.Phase = PhaseFull

	return nil
}

// Leave removes the user's seat. Ownership transfers to the remaining seat
// when the owner leaves. Only permitted before the match starts.
func (that *Match) Leave(userID string) error {
	participant := that.ParticipantByUser(userID)
	if participant == nil {
		return apperror.ErrNotInGame
	}

	if that.IsActive() || that.IsTerminal() {
		return apperror.ErrGameActive
	}

	remaining := make([]*Participant, 0, 1)
	for _, seat := range that.Participants {
		if seat.ID != participant.ID {
			remaining = append(remaining, seat)
		}
	}

	if participant.IsOwner && len(remaining) == 1 {
		remaining[0].IsOwner = true
	}

	that.Participants = remaining
	that.ParticipantCount = len(remaining)
	that.Phase = PhaseOpen

	return nil
}

// Start activates the match with the given seat as the opening mover.
// The caller picks the opening mover; see the gameplay service.
func (that *Match) Start(first *Participant) {
	first.WentFirst = true
	that.TurnHolder = first.ID
	that.Phase = PhaseActive
}

// ApplyMove validates and applies a placement by the given seat, then hands
// the turn to the opponent. Checks run in a fixed order: turn, bounds,
// occupancy; the first failure is reported and nothing is mutated.
func (that *Match) ApplyMove(participant *Participant, x, y int) error {
	if that.TurnHolder != participant.ID {
		return apperror.ErrNotYourTurn
	}

	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return apperror.ErrInvalidMove
	}

	if that.Board[x][y] != EmptyCell {
		return apperror.ErrSpotTaken
	}

	that.Board[x][y] = that.Token(participant)
	that.TurnHolder = that.Opponent(participant.ID).ID

	return nil
}

// Token returns the board marker for a seat. Assignment follows the owner
// flag, not join order or who went first.
func (that *Match) Token(participant *Participant) string {
	if participant.IsOwner {
		return OwnerToken
	}
	return GuestToken
}

// Finish moves the match to PhaseTerminal with the given outcome. A nil
// winner records a draw.
func (that *Match) Finish(outcome string, winner *Participant) {
	if winner != nil {
		winner.HasWon = true
	}

	that.Outcome = outcome
	that.Phase = PhaseTerminal
	that.TurnHolder = ""
}
