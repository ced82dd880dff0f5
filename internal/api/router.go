package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"snapquest/internal/api/handler"
	apimiddleware "snapquest/internal/api/middleware"
	"snapquest/internal/gateway/sse"
	"snapquest/internal/middleware"
	"snapquest/internal/photo"
	"snapquest/internal/services/game"
	"snapquest/internal/services/identity"
	"snapquest/internal/services/lobby"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	IdentityService *identity.Service
	LobbyController lobby.ControllerInterface
	GameController  game.ControllerInterface
	PhotoStore      photo.Store
	Hubs            *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.IdentityService)
	lobbyHandler := handler.NewLobbyHandler(cfg.LobbyController, cfg.GameController)
	gameHandler := handler.NewGameHandler(cfg.GameController)
	photoHandler := handler.NewPhotoHandler(cfg.PhotoStore)
	eventsHandler := handler.NewEventsHandler(cfg.Hubs, cfg.LobbyController, cfg.GameController, cfg.Logger)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.IdentityService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating a guest identity)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)

	// Lobby routes (all require auth)
	lobbies := api.PathPrefix("/lobbies").Subrouter()
	lobbies.Use(authMiddleware)
	lobbies.HandleFunc("", lobbyHandler.Create).Methods(http.MethodPost)
	lobbies.HandleFunc("/{code}", lobbyHandler.Get).Methods(http.MethodGet)
	lobbies.HandleFunc("/{code}/join", lobbyHandler.Join).Methods(http.MethodPost)
	lobbies.HandleFunc("/{code}/rejoin", lobbyHandler.Rejoin).Methods(http.MethodPost)
	lobbies.HandleFunc("/{code}/leave", lobbyHandler.Leave).Methods(http.MethodPost)
	lobbies.HandleFunc("/{code}/ready", lobbyHandler.SetReady).Methods(http.MethodPut)
	lobbies.HandleFunc("/{code}/settings", lobbyHandler.UpdateSettings).Methods(http.MethodPatch)
	lobbies.HandleFunc("/{code}/reactions", lobbyHandler.React).Methods(http.MethodPost)

	// Game routes (all require auth)
	lobbies.HandleFunc("/{code}/start", gameHandler.Start).Methods(http.MethodPost)
	lobbies.HandleFunc("/{code}/game", gameHandler.Get).Methods(http.MethodGet)
	lobbies.HandleFunc("/{code}/submit", gameHandler.Submit).Methods(http.MethodPost)
	lobbies.HandleFunc("/{code}/next-round", gameHandler.NextRound).Methods(http.MethodPost)

	// Event stream (auth via header or ?token= for EventSource clients)
	lobbies.HandleFunc("/{code}/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Photo routes (all require auth)
	photos := api.PathPrefix("/photos").Subrouter()
	photos.Use(authMiddleware)
	photos.HandleFunc("", photoHandler.Upload).Methods(http.MethodPost)
	photos.HandleFunc("/{ref}", photoHandler.Get).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
