package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Lobby errors
	ErrLobbyNotFound       = errors.New("lobby not found")
	ErrLobbyFull           = errors.New("lobby is full")
	ErrAlreadyInLobby      = errors.New("player is already in a lobby")
	ErrNotInLobby          = errors.New("player is not in a lobby")
	ErrNotHost             = errors.New("player is not the host")
	ErrGameInProgress      = errors.New("game already in progress")
	ErrNotAllReady         = errors.New("not all players are ready")
	ErrInsufficientPlayers = errors.New("need at least 2 players")
	ErrSettingsLocked      = errors.New("settings cannot change after game start")
	ErrNoRejoinMatch       = errors.New("no disconnected player with that name")

	// Game errors
	ErrGameNotFound     = errors.New("game not found")
	ErrRoundNotActive   = errors.New("round is not active")
	ErrAlreadySubmitted = errors.New("player has already submitted")
	ErrDeadlinePassed   = errors.New("round deadline has passed")

	// Photo errors
	ErrPhotoNotFound = errors.New("photo not found")
	ErrPhotoTooLarge = errors.New("photo exceeds size limit")
)
