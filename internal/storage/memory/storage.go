package memory

import (
	"context"
	"sync"

	"snapquest/internal/model"
	"snapquest/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	lobbies       map[model.LobbyCode]*model.Lobby
	playerLobbies map[model.PlayerID]model.LobbyCode
	games         map[model.LobbyCode]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		lobbies:       make(map[model.LobbyCode]*model.Lobby),
		playerLobbies: make(map[model.PlayerID]model.LobbyCode),
		games:         make(map[model.LobbyCode]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Lobby operations

func (s *Storage) SaveLobby(ctx context.Context, lobby *model.Lobby) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lobbies[lobby.Code] = lobby
	return nil
}

func (s *Storage) GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lobby, ok := s.lobbies[code]
	if !ok {
		return nil, model.ErrLobbyNotFound
	}
	return lobby, nil
}

func (s *Storage) DeleteLobby(ctx context.Context, code model.LobbyCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lobbies, code)
	return nil
}

func (s *Storage) LobbyExists(ctx context.Context, code model.LobbyCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.lobbies[code]
	return ok, nil
}

// Player -> lobby index

func (s *Storage) SetPlayerLobby(ctx context.Context, id model.PlayerID, code model.LobbyCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerLobbies[id] = code
	return nil
}

func (s *Storage) GetPlayerLobby(ctx context.Context, id model.PlayerID) (model.LobbyCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.playerLobbies[id]
	if !ok {
		return "", model.ErrPlayerNotFound
	}
	return code, nil
}

func (s *Storage) DeletePlayerLobby(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.playerLobbies, id)
	return nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.LobbyCode] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, code model.LobbyCode) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[code]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, code model.LobbyCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, code)
	return nil
}
