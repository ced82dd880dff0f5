package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"snapquest/internal/api/middleware"
	"snapquest/internal/api/request"
	"snapquest/internal/api/response"
	"snapquest/internal/model"
	"snapquest/internal/services/game"
)

// GameHandler handles in-game endpoints
type GameHandler struct {
	gameController game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface) *GameHandler {
	return &GameHandler{gameController: gameController}
}

// Start handles POST /api/v1/lobbies/{code}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	g, err := h.gameController.StartGame(r.Context(), code, session.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromModel(g))
}

// Get handles GET /api/v1/lobbies/{code}/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])

	g, err := h.gameController.GetGame(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// Submit handles POST /api/v1/lobbies/{code}/submit
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	var req request.SubmitPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PhotoRef == "" {
		WriteError(w, NewInvalidRequestError("photo_ref is required"))
		return
	}

	if err := h.gameController.SubmitPhoto(r.Context(), code, session.PlayerID, req.PhotoRef); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// NextRound handles POST /api/v1/lobbies/{code}/next-round
func (h *GameHandler) NextRound(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	if err := h.gameController.ConfirmNextRound(r.Context(), code, session.PlayerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
