package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (that *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	match, err := that.gameplay.CreateMatch(r.Context(), requestUserID(r))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newMatchResponse(match, true))
}

func (that *Server) handleListUnfinished(w http.ResponseWriter, r *http.Request) {
	matches, err := that.matches.GetUnfinishedMatches(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newMatchListResponse(matches))
}

func (that *Server) handleMatchDetail(w http.ResponseWriter, r *http.Request) {
	match, err := that.gameplay.GetMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newMatchResponse(match, true))
}

func (that *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	match, err := that.gameplay.JoinMatch(r.Context(), chi.URLParam(r, "id"), requestUserID(r))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"game":    newMatchResponse(match, true),
	})
}

func (that *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	match, err := that.gameplay.StartMatch(r.Context(), chi.URLParam(r, "id"), requestUserID(r))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"game":    newMatchResponse(match, true),
	})
}

func (that *Server) handleLeave(w http.ResponseWriter, r *http.Request) {
	if err := that.gameplay.LeaveMatch(r.Context(), chi.URLParam(r, "id"), requestUserID(r)); err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (that *Server) handleSurrender(w http.ResponseWriter, r *http.Request) {
	if err := that.gameplay.Surrender(r.Context(), chi.URLParam(r, "id"), requestUserID(r)); err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (that *Server) handleSubmitMove(w http.ResponseWriter, r *http.Request) {
	var request struct {
		X int `json:"x"`
		Y int `json:"y"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	match, move, err := that.gameplay.SubmitMove(r.Context(), chi.URLParam(r, "id"), requestUserID(r), request.X, request.Y)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"game": newMatchResponse(match, true),
		"move": move,
	})
}

func (that *Server) handleListMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := that.gameplay.ListMoves(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, moves)
}

func (that *Server) handleLastMove(w http.ResponseWriter, r *http.Request) {
	move, err := that.gameplay.LatestMove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, move)
}
