package entity

import "time"

// MoveRecord is an accepted placement. Records are immutable and only
// created for accepted submissions.
type MoveRecord struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"player"`
	MatchID       string    `json:"game"`
	X             int       `json:"x"`
	Y             int       `json:"y"`
	Timestamp     time.Time `json:"timestamp"`
}
