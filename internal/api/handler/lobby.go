package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"snapquest/internal/api/middleware"
	"snapquest/internal/api/request"
	"snapquest/internal/api/response"
	"snapquest/internal/model"
	"snapquest/internal/services/game"
	"snapquest/internal/services/lobby"
)

// LobbyHandler handles lobby membership endpoints
type LobbyHandler struct {
	lobbyController lobby.ControllerInterface
	gameController  game.ControllerInterface
}

// NewLobbyHandler creates a new lobby handler
func NewLobbyHandler(lobbyController lobby.ControllerInterface, gameController game.ControllerInterface) *LobbyHandler {
	return &LobbyHandler{
		lobbyController: lobbyController,
		gameController:  gameController,
	}
}

// Create handles POST /api/v1/lobbies
func (h *LobbyHandler) Create(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	l, err := h.lobbyController.CreateLobby(r.Context(), session.PlayerID, session.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.LobbyFromModel(l))
}

// Get handles GET /api/v1/lobbies/{code}
func (h *LobbyHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])

	l, err := h.lobbyController.GetLobby(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LobbyFromModel(l))
}

// Join handles POST /api/v1/lobbies/{code}/join
func (h *LobbyHandler) Join(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	var req request.JoinLobbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Empty body means join under the session name
		req = request.JoinLobbyRequest{}
	}
	name := session.DisplayName
	if req.DisplayName != "" {
		name = req.DisplayName
	}

	l, err := h.lobbyController.JoinLobby(r.Context(), code, session.PlayerID, name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LobbyFromModel(l))
}

// Rejoin handles POST /api/v1/lobbies/{code}/rejoin
func (h *LobbyHandler) Rejoin(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	var req request.RejoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = request.RejoinRequest{}
	}
	name := req.DisplayName
	if name == "" {
		name = session.DisplayName
	}

	l, oldID, err := h.lobbyController.Rejoin(r.Context(), code, session.PlayerID, name)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.RejoinResponse{Lobby: response.LobbyFromModel(l)}
	g, err := h.gameController.HandleRejoin(r.Context(), code, oldID, session.PlayerID)
	if err == nil {
		state := response.GameStateFromModel(g)
		resp.Game = &state
	} else if !errors.Is(err, model.ErrGameNotFound) && !errors.Is(err, model.ErrPlayerNotFound) {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// Leave handles POST /api/v1/lobbies/{code}/leave
func (h *LobbyHandler) Leave(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	l, err := h.lobbyController.GetLobby(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Drop the player from a running game before the lobby record goes
	if l.State == model.LobbyStateInGame {
		if err := h.gameController.RemovePlayer(r.Context(), code, session.PlayerID); err != nil &&
			!errors.Is(err, model.ErrGameNotFound) && !errors.Is(err, model.ErrPlayerNotFound) {
			WriteError(w, err)
			return
		}
	}

	if err := h.lobbyController.LeaveLobby(r.Context(), code, session.PlayerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// SetReady handles PUT /api/v1/lobbies/{code}/ready
func (h *LobbyHandler) SetReady(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	var req request.SetReadyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.lobbyController.SetReady(r.Context(), code, session.PlayerID, req.Ready); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// UpdateSettings handles PATCH /api/v1/lobbies/{code}/settings
func (h *LobbyHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	settings := model.GameSettings{
		Rounds:           req.Rounds,
		RoundTimeSeconds: req.RoundTimeSeconds,
	}
	if err := h.lobbyController.UpdateSettings(r.Context(), code, session.PlayerID, settings); err != nil {
		WriteError(w, err)
		return
	}

	l, err := h.lobbyController.GetLobby(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SettingsFromModel(l.Settings))
}

// React handles POST /api/v1/lobbies/{code}/reactions
func (h *LobbyHandler) React(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	var req request.ReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Icon == "" {
		WriteError(w, NewInvalidRequestError("icon is required"))
		return
	}

	if err := h.lobbyController.SendReaction(r.Context(), code, session.PlayerID, req.Icon); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
