package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"snapquest/internal/api/middleware"
	"snapquest/internal/gateway/sse"
	"snapquest/internal/model"
	"snapquest/internal/services/game"
	"snapquest/internal/services/lobby"
)

// EventsHandler streams lobby events over SSE
type EventsHandler struct {
	hubs            *sse.HubManager
	lobbyController lobby.ControllerInterface
	gameController  game.ControllerInterface
	logger          *slog.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hubs *sse.HubManager, lobbyController lobby.ControllerInterface, gameController game.ControllerInterface, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		hubs:            hubs,
		lobbyController: lobbyController,
		gameController:  gameController,
		logger:          logger,
	}
}

// Stream handles GET /api/v1/lobbies/{code}/events. The connection is
// the player's presence signal: when the stream closes the player is
// marked disconnected, and a running game treats that as a forfeit.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	l, err := h.lobbyController.GetLobby(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	if _, ok := l.Players[session.PlayerID]; !ok {
		WriteError(w, model.ErrNotInLobby)
		return
	}

	hub := h.hubs.GetOrCreateHub(code)
	sse.ServeSSE(w, r, hub, session.PlayerID)

	// The request context is done here, so disconnect handling runs on
	// a fresh context.
	ctx := context.WithoutCancel(r.Context())
	disconnectedCode, kept, err := h.lobbyController.MarkDisconnected(ctx, session.PlayerID)
	if err != nil {
		h.logger.Warn("failed to mark player disconnected",
			"lobby_code", code, "player_id", session.PlayerID, "error", err)
		return
	}
	if kept {
		if err := h.gameController.HandleDisconnect(ctx, disconnectedCode, session.PlayerID); err != nil {
			h.logger.Warn("failed to forfeit disconnected player",
				"lobby_code", disconnectedCode, "player_id", session.PlayerID, "error", err)
		}
	}
}
