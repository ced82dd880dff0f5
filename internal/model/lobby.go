package model

import "time"

// LobbyCode is a short human-typeable identifier for joining lobbies
type LobbyCode string

// LobbyState represents the current state of a lobby
type LobbyState string

const (
	LobbyStateWaiting  LobbyState = "waiting"
	LobbyStateStarting LobbyState = "starting"
	LobbyStateInGame   LobbyState = "in-game"
)

// DefaultMaxPlayers is the lobby capacity bound
const DefaultMaxPlayers = 8

// Settings bounds; values outside are clamped, not rejected
const (
	MinRounds           = 3
	MaxRounds           = 6
	MinRoundTimeSeconds = 15
	MaxRoundTimeSeconds = 60
)

// GameSettings holds the host-configurable game parameters
type GameSettings struct {
	Rounds           int
	RoundTimeSeconds int
}

// DefaultGameSettings returns the settings for a newly created lobby
func DefaultGameSettings() GameSettings {
	return GameSettings{
		Rounds:           4,
		RoundTimeSeconds: 60,
	}
}

// Clamp forces both settings into their configured bounds
func (s *GameSettings) Clamp() {
	s.Rounds = min(MaxRounds, max(MinRounds, s.Rounds))
	s.RoundTimeSeconds = min(MaxRoundTimeSeconds, max(MinRoundTimeSeconds, s.RoundTimeSeconds))
}

// Lobby represents a room of players waiting for or running a game.
// Order preserves join order; host promotion on departure picks the
// first remaining entry so the outcome is deterministic.
type Lobby struct {
	Code       LobbyCode
	Players    map[PlayerID]*Player
	Order      []PlayerID
	HostID     PlayerID
	State      LobbyState
	MaxPlayers int
	Settings   GameSettings
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GetPlayer returns the player with the given identity, or nil
func (l *Lobby) GetPlayer(id PlayerID) *Player {
	return l.Players[id]
}

// PlayersInOrder returns all players in join order
func (l *Lobby) PlayersInOrder() []*Player {
	players := make([]*Player, 0, len(l.Order))
	for _, id := range l.Order {
		if p, ok := l.Players[id]; ok {
			players = append(players, p)
		}
	}
	return players
}

// Clone returns a deep copy of the lobby. Callers outside the lobby
// registry's lock only ever see clones.
func (l *Lobby) Clone() *Lobby {
	out := *l
	out.Players = make(map[PlayerID]*Player, len(l.Players))
	for id, p := range l.Players {
		cp := *p
		out.Players[id] = &cp
	}
	out.Order = append([]PlayerID(nil), l.Order...)
	return &out
}

// AllReady reports whether the game can start: at least two players,
// every one of them ready
func (l *Lobby) AllReady() bool {
	if len(l.Players) < 2 {
		return false
	}
	for _, p := range l.Players {
		if !p.IsReady {
			return false
		}
	}
	return true
}
