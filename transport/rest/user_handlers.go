package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Won            int    `json:"won"`
	Lost           int    `json:"lost"`
	WonBySurrender int    `json:"won_by_surrender"`
	Draws          int    `json:"draws"`
	Surrendered    int    `json:"surrendered"`
}

func newUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:             user.ID,
		Username:       user.Username,
		Won:            user.Stats.Won,
		Lost:           user.Stats.Lost,
		WonBySurrender: user.Stats.WonBySurrender,
		Draws:          user.Stats.Draws,
		Surrendered:    user.Stats.Surrendered,
	}
}

func (that *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var request credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Username == "" || request.Password == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user, err := that.users.Register(r.Context(), request.Username, request.Password)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newUserResponse(user))
}

func (that *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var request credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user, err := that.users.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		that.writeError(w, err)
		return
	}

	token, err := that.auth.GenerateToken(user.ID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (that *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := that.users.GetUserByID(r.Context(), requestUserID(r))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (that *Server) handleMyGames(w http.ResponseWriter, r *http.Request) {
	matches, err := that.matches.GetMatchesByUser(r.Context(), requestUserID(r))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newMatchListResponse(matches))
}

func (that *Server) handleMyFinishedGames(w http.ResponseWriter, r *http.Request) {
	matches, err := that.matches.GetMatchesByUser(r.Context(), requestUserID(r))
	if err != nil {
		that.writeError(w, err)
		return
	}

	finished := make([]*entity.Match, 0, len(matches))
	for _, match := range matches {
		if match.IsTerminal() {
			finished = append(finished, match)
		}
	}

	writeJSON(w, http.StatusOK, newMatchListResponse(finished))
}

func (that *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	user, err := that.users.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}
