package entity

// Participant is a user's seat in a match. A fresh seat is created on every
// join, so rejoining after a leave yields a new id.
type Participant struct {
	ID      string `json:"id"`
	UserID  string `json:"user"`
	MatchID string `json:"game"`

	IsOwner   bool `json:"owner"`
	WentFirst bool `json:"first"`
	HasWon    bool `json:"won"`
}

func NewParticipant(id, userID, matchID string, isOwner bool) *Participant {
	return &Participant{
		ID:      id,
		UserID:  userID,
		MatchID: matchID,
		IsOwner: isOwner,
	}
}
