package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type matchResponse struct {
	ID           string                `json:"id"`
	PlayersCount int                   `json:"players_count"`
	Board        *entity.Board         `json:"board,omitempty"`
	Phase        string                `json:"phase"`
	Outcome      string                `json:"outcome,omitempty"`
	TurnHolder   string                `json:"turn_holder,omitempty"`
	Players      []*entity.Participant `json:"players"`
}

// newMatchResponse shapes a match snapshot. List views suppress the board.
func newMatchResponse(match *entity.Match, withBoard bool) *matchResponse {
	response := &matchResponse{
		ID:           match.ID,
		PlayersCount: match.ParticipantCount,
		Phase:        match.Phase,
		Outcome:      match.Outcome,
		TurnHolder:   match.TurnHolder,
		Players:      match.Participants,
	}

	if withBoard {
		response.Board = &match.Board
	}

	return response
}

func newMatchListResponse(matches []*entity.Match) []*matchResponse {
	responses := make([]*matchResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, newMatchResponse(match, false))
	}
	return responses
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

var clientErrors = []error{
	apperror.ErrAlreadyJoined,
	apperror.ErrGameFull,
	apperror.ErrNotInGame,
	apperror.ErrGameActive,
	apperror.ErrGameNotActive,
	apperror.ErrGameNotStartable,
	apperror.ErrNotYourTurn,
	apperror.ErrSpotTaken,
	apperror.ErrInvalidMove,
	apperror.ErrUsernameTaken,
	apperror.ErrInvalidCredentials,
}

// writeError maps engine errors onto the wire: caller-correctable conditions
// become 400 with the reference message, missing entities become 404.
func (that *Server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperror.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}

	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": clientErr.Error()})
			return
		}
	}

	that.logger.Error("request failed", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
