package storage

import (
	"context"

	"snapquest/internal/model"
)

// Storage defines the interface for lobby and game state. State is
// memory-resident and ephemeral by design: rooms own in-process timers,
// so nothing here survives a restart.
type Storage interface {
	// Lobby operations
	SaveLobby(ctx context.Context, lobby *model.Lobby) error
	GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error)
	DeleteLobby(ctx context.Context, code model.LobbyCode) error
	LobbyExists(ctx context.Context, code model.LobbyCode) (bool, error)

	// Player -> lobby index. GetPlayerLobby returns
	// model.ErrPlayerNotFound for an unmapped identity.
	SetPlayerLobby(ctx context.Context, id model.PlayerID, code model.LobbyCode) error
	GetPlayerLobby(ctx context.Context, id model.PlayerID) (model.LobbyCode, error)
	DeletePlayerLobby(ctx context.Context, id model.PlayerID) error

	// Game operations (keyed by lobby code, one game per lobby)
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, code model.LobbyCode) (*model.Game, error)
	DeleteGame(ctx context.Context, code model.LobbyCode) error
}
