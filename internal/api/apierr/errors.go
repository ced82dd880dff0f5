package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"snapquest/internal/model"
	"snapquest/internal/services/identity"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotHost             = "NOT_HOST"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeLobbyNotFound       = "LOBBY_NOT_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeLobbyFull           = "LOBBY_FULL"
	CodeAlreadyInLobby      = "ALREADY_IN_LOBBY"
	CodeNotInLobby          = "NOT_IN_LOBBY"
	CodeGameInProgress      = "GAME_IN_PROGRESS"
	CodeNotAllReady         = "NOT_ALL_READY"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeSettingsLocked      = "SETTINGS_LOCKED"
	CodeNoRejoinMatch       = "NO_REJOIN_MATCH"
	CodeRoundNotActive      = "ROUND_NOT_ACTIVE"
	CodeAlreadySubmitted    = "ALREADY_SUBMITTED"
	CodeDeadlinePassed      = "DEADLINE_PASSED"
	CodePhotoNotFound       = "PHOTO_NOT_FOUND"
	CodePhotoTooLarge       = "PHOTO_TOO_LARGE"
	CodeInvalidDisplayName  = "INVALID_DISPLAY_NAME"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrLobbyNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLobbyNotFound, "Lobby not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "No game running in this lobby"}}
	case errors.Is(err, model.ErrLobbyFull):
		return &httpError{http.StatusConflict, APIError{CodeLobbyFull, "Lobby is full"}}
	case errors.Is(err, model.ErrAlreadyInLobby):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInLobby, "Already in this lobby"}}
	case errors.Is(err, model.ErrNotInLobby):
		return &httpError{http.StatusNotFound, APIError{CodeNotInLobby, "Not in this lobby"}}
	case errors.Is(err, model.ErrNotHost):
		return &httpError{http.StatusForbidden, APIError{CodeNotHost, "Only the host can perform this action"}}
	case errors.Is(err, model.ErrGameInProgress):
		return &httpError{http.StatusConflict, APIError{CodeGameInProgress, "Game is in progress"}}
	case errors.Is(err, model.ErrNotAllReady):
		return &httpError{http.StatusConflict, APIError{CodeNotAllReady, "All players must be ready"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrSettingsLocked):
		return &httpError{http.StatusConflict, APIError{CodeSettingsLocked, "Settings are locked while a game is running"}}
	case errors.Is(err, model.ErrNoRejoinMatch):
		return &httpError{http.StatusNotFound, APIError{CodeNoRejoinMatch, "No disconnected player matches that name"}}
	case errors.Is(err, model.ErrRoundNotActive):
		return &httpError{http.StatusConflict, APIError{CodeRoundNotActive, "No active round accepts this action"}}
	case errors.Is(err, model.ErrAlreadySubmitted):
		return &httpError{http.StatusConflict, APIError{CodeAlreadySubmitted, "Already submitted this round"}}
	case errors.Is(err, model.ErrDeadlinePassed):
		return &httpError{http.StatusConflict, APIError{CodeDeadlinePassed, "The round deadline has passed"}}
	case errors.Is(err, model.ErrPhotoNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePhotoNotFound, "Photo not found"}}
	case errors.Is(err, model.ErrPhotoTooLarge):
		return &httpError{http.StatusRequestEntityTooLarge, APIError{CodePhotoTooLarge, "Photo exceeds the size limit"}}

	case errors.Is(err, identity.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, identity.ErrInvalidDisplayName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDisplayName, "Display name must be 1-24 characters"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
