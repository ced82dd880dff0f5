package lobby

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"snapquest/internal/dependencies/clock"
	"snapquest/internal/dependencies/random"
	"snapquest/internal/events"
	"snapquest/internal/model"
	"snapquest/internal/storage"
)

const (
	// LobbyCodeLength is the length of generated lobby codes
	LobbyCodeLength = 4
	// LobbyCodeAlphabet is the characters used in lobby codes
	LobbyCodeAlphabet = "0123456789"
	// maxCodeAttempts bounds code generation when the space is crowded
	maxCodeAttempts = 1000
)

// Controller manages lobby membership, readiness, and settings. Every
// mutation of a lobby happens under that lobby's lock; callers only
// ever see clones of the stored lobby.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	emitter events.Emitter
	logger  *slog.Logger

	lockMu sync.Mutex
	locks  map[model.LobbyCode]*sync.Mutex
}

// NewController creates a new lobby controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	emitter events.Emitter,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		emitter: emitter,
		logger:  logger,
		locks:   make(map[model.LobbyCode]*sync.Mutex),
	}
}

// lobbyLock returns the mutex serialising mutations of one lobby. The
// storage's own lock guards its maps, not the lobbies they point at.
func (c *Controller) lobbyLock(code model.LobbyCode) *sync.Mutex {
	c.lockMu.Lock()
	defer c.lockMu.Unlock()
	mu, ok := c.locks[code]
	if !ok {
		mu = &sync.Mutex{}
		c.locks[code] = mu
	}
	return mu
}

// peekLock returns the lobby's mutex without creating an entry. Live
// lobbies always have one; a nil result means the code is unknown.
func (c *Controller) peekLock(code model.LobbyCode) *sync.Mutex {
	c.lockMu.Lock()
	defer c.lockMu.Unlock()
	return c.locks[code]
}

func (c *Controller) dropLock(code model.LobbyCode) {
	c.lockMu.Lock()
	defer c.lockMu.Unlock()
	delete(c.locks, code)
}

// CreateLobby creates a new lobby with the given player as host
func (c *Controller) CreateLobby(ctx context.Context, hostID model.PlayerID, hostName string) (*model.Lobby, error) {
	now := c.clock.Now()

	var code model.LobbyCode
	var mu *sync.Mutex
	for attempt := 0; ; attempt++ {
		if attempt >= maxCodeAttempts {
			return nil, fmt.Errorf("could not allocate a free lobby code")
		}
		code = model.LobbyCode(c.random.String(LobbyCodeLength, LobbyCodeAlphabet))
		mu = c.lobbyLock(code)
		mu.Lock()
		exists, err := c.storage.LobbyExists(ctx, code)
		if err != nil {
			mu.Unlock()
			return nil, err
		}
		if !exists {
			// Hold the lock so a concurrent create cannot claim the
			// same code before the save below.
			break
		}
		mu.Unlock()
	}
	defer mu.Unlock()

	host := &model.Player{
		ID:          hostID,
		DisplayName: hostName,
		IsHost:      true,
		IsConnected: true,
	}

	lobby := &model.Lobby{
		Code:       code,
		Players:    map[model.PlayerID]*model.Player{hostID: host},
		Order:      []model.PlayerID{hostID},
		HostID:     hostID,
		State:      model.LobbyStateWaiting,
		MaxPlayers: model.DefaultMaxPlayers,
		Settings:   model.DefaultGameSettings(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return nil, err
	}
	if err := c.storage.SetPlayerLobby(ctx, hostID, code); err != nil {
		return nil, err
	}

	c.logger.Info("lobby created",
		slog.String("code", string(code)),
		slog.String("host_id", string(hostID)))

	return lobby.Clone(), nil
}

// GetLobby retrieves a snapshot of a lobby by code
func (c *Controller) GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error) {
	if mu := c.peekLock(code); mu != nil {
		mu.Lock()
		defer mu.Unlock()
	}
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return nil, err
	}
	return lobby.Clone(), nil
}

// GetLobbyForPlayer resolves the lobby a player identity belongs to
func (c *Controller) GetLobbyForPlayer(ctx context.Context, playerID model.PlayerID) (*model.Lobby, error) {
	code, err := c.storage.GetPlayerLobby(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return c.GetLobby(ctx, code)
}

// JoinLobby adds a player to a lobby. Lobbies running a game only admit
// returning players, via Rejoin.
func (c *Controller) JoinLobby(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, name string) (*model.Lobby, error) {
	mu := c.lobbyLock(code)
	mu.Lock()
	defer mu.Unlock()

	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return nil, err
	}

	// An identity mapped to any lobby, this one or another, cannot
	// join again; the index must stay one-to-one.
	if _, err := c.storage.GetPlayerLobby(ctx, playerID); err == nil {
		return nil, model.ErrAlreadyInLobby
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}
	if lobby.State != model.LobbyStateWaiting {
		return nil, model.ErrGameInProgress
	}
	if len(lobby.Players) >= lobby.MaxPlayers {
		return nil, model.ErrLobbyFull
	}

	lobby.Players[playerID] = &model.Player{
		ID:          playerID,
		DisplayName: name,
		IsConnected: true,
	}
	lobby.Order = append(lobby.Order, playerID)
	lobby.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return nil, err
	}
	if err := c.storage.SetPlayerLobby(ctx, playerID, code); err != nil {
		return nil, err
	}

	c.emit(lobby.Code, model.EventPlayerJoined, model.PlayerJoinedPayload{
		PlayerID: playerID,
		Name:     name,
	})
	c.emitLobbyState(lobby)

	return lobby.Clone(), nil
}

// LeaveLobby removes a player from a lobby. The last player out deletes
// the lobby; a departing host promotes the longest-standing member.
func (c *Controller) LeaveLobby(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error {
	mu := c.lobbyLock(code)
	mu.Lock()
	defer mu.Unlock()
	return c.leaveLobby(ctx, code, playerID)
}

// leaveLobby is LeaveLobby's body; the caller holds the lobby lock.
func (c *Controller) leaveLobby(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	player := lobby.GetPlayer(playerID)
	if player == nil {
		return model.ErrNotInLobby
	}

	name := player.DisplayName
	wasHost := lobby.HostID == playerID

	delete(lobby.Players, playerID)
	lobby.Order = removeID(lobby.Order, playerID)
	if err := c.storage.DeletePlayerLobby(ctx, playerID); err != nil {
		return err
	}

	if len(lobby.Players) == 0 {
		if err := c.storage.DeleteLobby(ctx, code); err != nil {
			return err
		}
		c.dropLock(code)
		c.logger.Info("lobby deleted, last player left", slog.String("code", string(code)))
		return nil
	}

	c.emit(lobby.Code, model.EventPlayerLeft, model.PlayerLeftPayload{
		PlayerID: playerID,
		Name:     name,
	})

	if wasHost {
		newHostID := lobby.Order[0]
		lobby.HostID = newHostID
		lobby.Players[newHostID].IsHost = true
		c.emit(lobby.Code, model.EventHostChanged, model.HostChangedPayload{
			NewHostID: newHostID,
			Name:      lobby.Players[newHostID].DisplayName,
		})
	}

	lobby.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return err
	}

	c.emitLobbyState(lobby)
	return nil
}

// MarkDisconnected records a connection loss. During a game the player
// record is retained for rejoin; outside a game a disconnect is a
// leave. Returns the lobby code and whether the player was kept.
func (c *Controller) MarkDisconnected(ctx context.Context, playerID model.PlayerID) (model.LobbyCode, bool, error) {
	code, err := c.storage.GetPlayerLobby(ctx, playerID)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	mu := c.lobbyLock(code)
	mu.Lock()
	defer mu.Unlock()

	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		// The lobby can vanish between the index read and the lock
		if errors.Is(err, model.ErrLobbyNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	if lobby.State != model.LobbyStateInGame {
		return code, false, c.leaveLobby(ctx, code, playerID)
	}

	player := lobby.GetPlayer(playerID)
	if player == nil {
		return code, false, model.ErrNotInLobby
	}
	player.IsConnected = false
	lobby.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return "", false, err
	}

	c.emit(lobby.Code, model.EventPlayerDisconnected, model.PlayerDisconnectedPayload{
		PlayerID: playerID,
		Name:     player.DisplayName,
	})
	c.emitLobbyState(lobby)

	return code, true, nil
}

// Rejoin splices a new connection identity into a disconnected player's
// seat, matched by display name. Only valid while a game is running.
func (c *Controller) Rejoin(ctx context.Context, code model.LobbyCode, newPlayerID model.PlayerID, name string) (*model.Lobby, model.PlayerID, error) {
	mu := c.lobbyLock(code)
	mu.Lock()
	defer mu.Unlock()

	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return nil, "", err
	}

	if lobby.State != model.LobbyStateInGame {
		return nil, "", model.ErrNoRejoinMatch
	}

	var old *model.Player
	for _, id := range lobby.Order {
		p := lobby.Players[id]
		if p != nil && !p.IsConnected && p.DisplayName == name {
			old = p
			break
		}
	}
	if old == nil {
		return nil, "", model.ErrNoRejoinMatch
	}

	oldID := old.ID
	old.ID = newPlayerID
	old.IsConnected = true

	delete(lobby.Players, oldID)
	lobby.Players[newPlayerID] = old
	for i, id := range lobby.Order {
		if id == oldID {
			lobby.Order[i] = newPlayerID
			break
		}
	}
	if lobby.HostID == oldID {
		lobby.HostID = newPlayerID
	}
	lobby.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return nil, "", err
	}
	if err := c.storage.DeletePlayerLobby(ctx, oldID); err != nil {
		return nil, "", err
	}
	if err := c.storage.SetPlayerLobby(ctx, newPlayerID, code); err != nil {
		return nil, "", err
	}

	c.logger.Info("player rejoined",
		slog.String("code", string(code)),
		slog.String("old_id", string(oldID)),
		slog.String("new_id", string(newPlayerID)))

	c.emit(lobby.Code, model.EventPlayerRejoined, model.PlayerRejoinedPayload{
		OldPlayerID: oldID,
		NewPlayerID: newPlayerID,
		Name:        name,
	})
	c.emitLobbyState(lobby)

	return lobby.Clone(), oldID, nil
}

// SetReady toggles a player's ready flag while the lobby is waiting
func (c *Controller) SetReady(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, ready bool) error {
	mu := c.lobbyLock(code)
	mu.Lock()
	defer mu.Unlock()

	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	if lobby.State != model.LobbyStateWaiting {
		return model.ErrGameInProgress
	}

	player := lobby.GetPlayer(playerID)
	if player == nil {
		return model.ErrNotInLobby
	}

	player.IsReady = ready
	lobby.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return err
	}

	c.emitLobbyState(lobby)
	return nil
}

// UpdateSettings applies host-chosen game settings, clamped to bounds.
// Settings are locked once a game starts.
func (c *Controller) UpdateSettings(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, settings model.GameSettings) error {
	mu := c.lobbyLock(code)
	mu.Lock()
	defer mu.Unlock()

	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	if lobby.HostID != playerID {
		return model.ErrNotHost
	}
	if lobby.State != model.LobbyStateWaiting {
		return model.ErrSettingsLocked
	}

	settings.Clamp()
	lobby.Settings = settings
	lobby.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return err
	}

	c.emitLobbyState(lobby)
	return nil
}

// SetState transitions the lobby between waiting, starting, and
// in-game. Used by the game controller around game lifecycle edges.
func (c *Controller) SetState(ctx context.Context, code model.LobbyCode, state model.LobbyState) error {
	mu := c.lobbyLock(code)
	mu.Lock()
	defer mu.Unlock()

	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	lobby.State = state
	if state == model.LobbyStateWaiting {
		// Back in the waiting room everyone re-readies from scratch
		for _, p := range lobby.Players {
			p.IsReady = false
		}
	}
	lobby.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return err
	}

	c.emitLobbyState(lobby)
	return nil
}

// RemovePlayer drops a player record without the leave ceremony. Used
// by the game controller when a disconnected player forfeits for good.
func (c *Controller) RemovePlayer(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error {
	return c.LeaveLobby(ctx, code, playerID)
}

// SendReaction relays a fire-and-forget emote to the room
func (c *Controller) SendReaction(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, icon string) error {
	mu := c.lobbyLock(code)
	mu.Lock()
	defer mu.Unlock()

	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	player := lobby.GetPlayer(playerID)
	if player == nil {
		return model.ErrNotInLobby
	}

	c.emit(lobby.Code, model.EventReaction, model.ReactionPayload{
		PlayerID: playerID,
		Name:     player.DisplayName,
		Icon:     icon,
	})
	return nil
}

func (c *Controller) emit(code model.LobbyCode, t model.EventType, payload any) {
	c.emitter.Emit(model.Event{
		Type:      t,
		Timestamp: c.clock.Now(),
		LobbyCode: code,
		Payload:   payload,
	})
}

func (c *Controller) emitLobbyState(lobby *model.Lobby) {
	players := make([]model.Player, 0, len(lobby.Order))
	for _, p := range lobby.PlayersInOrder() {
		players = append(players, *p)
	}
	c.emit(lobby.Code, model.EventLobbyState, model.LobbyStatePayload{
		Code:     lobby.Code,
		Players:  players,
		HostID:   lobby.HostID,
		State:    lobby.State,
		AllReady: lobby.AllReady(),
		Settings: lobby.Settings,
	})
}

func removeID(ids []model.PlayerID, target model.PlayerID) []model.PlayerID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateLobby(ctx context.Context, hostID model.PlayerID, hostName string) (*model.Lobby, error)
	GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error)
	GetLobbyForPlayer(ctx context.Context, playerID model.PlayerID) (*model.Lobby, error)
	JoinLobby(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, name string) (*model.Lobby, error)
	LeaveLobby(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error
	MarkDisconnected(ctx context.Context, playerID model.PlayerID) (model.LobbyCode, bool, error)
	Rejoin(ctx context.Context, code model.LobbyCode, newPlayerID model.PlayerID, name string) (*model.Lobby, model.PlayerID, error)
	SetReady(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, ready bool) error
	UpdateSettings(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, settings model.GameSettings) error
	SetState(ctx context.Context, code model.LobbyCode, state model.LobbyState) error
	RemovePlayer(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error
	SendReaction(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, icon string) error
}

var _ ControllerInterface = (*Controller)(nil)
