package apperror

import "errors"

// Game action errors. The messages mirror what the API reports to clients.
var (
	ErrAlreadyJoined    = errors.New("you are already a player in this game")
	ErrGameFull         = errors.New("this game is already full")
	ErrNotInGame        = errors.New("you are not participating in this game")
	ErrGameActive       = errors.New("this operation cannot be performed while game is active")
	ErrGameNotActive    = errors.New("this game is not started")
	ErrGameNotStartable = errors.New("this game cannot be started")
	ErrNotYourTurn      = errors.New("it's not your turn to move")
	ErrSpotTaken        = errors.New("this spot is already taken")
	ErrInvalidMove      = errors.New("invalid move")
	ErrNotFound         = errors.New("not found")
)

// Account errors.
var (
	ErrUsernameTaken      = errors.New("this username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
