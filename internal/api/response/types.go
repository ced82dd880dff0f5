package response

import (
	"time"

	"snapquest/internal/model"
	"snapquest/internal/services/identity"
)

// AuthResponse is the response for guest session creation
type AuthResponse struct {
	PlayerID     string `json:"player_id"`
	DisplayName  string `json:"display_name"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *identity.Session) AuthResponse {
	return AuthResponse{
		PlayerID:     string(s.PlayerID),
		DisplayName:  s.DisplayName,
		SessionToken: s.Token,
	}
}

// Player represents a lobby member in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsHost      bool   `json:"is_host"`
	IsReady     bool   `json:"is_ready"`
	IsConnected bool   `json:"is_connected"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsHost:      p.IsHost,
		IsReady:     p.IsReady,
		IsConnected: p.IsConnected,
	}
}

// GameSettings represents the host-configurable settings
type GameSettings struct {
	Rounds           int `json:"rounds"`
	RoundTimeSeconds int `json:"round_time_seconds"`
}

// SettingsFromModel converts model.GameSettings
func SettingsFromModel(s model.GameSettings) GameSettings {
	return GameSettings{
		Rounds:           s.Rounds,
		RoundTimeSeconds: s.RoundTimeSeconds,
	}
}

// Lobby represents a lobby in API responses
type Lobby struct {
	Code       string       `json:"code"`
	State      string       `json:"state"`
	HostID     string       `json:"host_id"`
	MaxPlayers int          `json:"max_players"`
	Players    []Player     `json:"players"`
	Settings   GameSettings `json:"settings"`
	AllReady   bool         `json:"all_ready"`
}

// LobbyFromModel converts model.Lobby
func LobbyFromModel(l *model.Lobby) Lobby {
	players := make([]Player, 0, len(l.Order))
	for _, p := range l.PlayersInOrder() {
		players = append(players, PlayerFromModel(p))
	}
	return Lobby{
		Code:       string(l.Code),
		State:      string(l.State),
		HostID:     string(l.HostID),
		MaxPlayers: l.MaxPlayers,
		Players:    players,
		Settings:   SettingsFromModel(l.Settings),
		AllReady:   l.AllReady(),
	}
}

// StoryBlank represents one blank's prompt
type StoryBlank struct {
	Index    int    `json:"index"`
	Theme    string `json:"theme"`
	Criteria string `json:"criteria"`
}

// PlayerGameState represents one player's standing in a game
type PlayerGameState struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	WinCount     int    `json:"win_count"`
	HasSubmitted bool   `json:"has_submitted"`
}

// RoundResult represents a completed round's outcome
type RoundResult struct {
	BlankIndex int    `json:"blank_index"`
	WinnerID   string `json:"winner_id"`
	WinnerName string `json:"winner_name"`
	PhotoRef   string `json:"photo_ref"`
	ObjectName string `json:"object_name"`
	OneLiner   string `json:"one_liner"`
}

// GameState represents a running game
type GameState struct {
	LobbyCode    string            `json:"lobby_code"`
	Status       string            `json:"status"`
	CurrentRound int               `json:"current_round"`
	TotalRounds  int               `json:"total_rounds"`
	Deadline     time.Time         `json:"deadline"`
	StoryBlank   *StoryBlank       `json:"current_blank,omitempty"`
	Players      []PlayerGameState `json:"players"`
	Results      []RoundResult     `json:"results"`
}

// GameStateFromModel converts model.Game
func GameStateFromModel(g *model.Game) GameState {
	players := make([]PlayerGameState, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, PlayerGameState{
			ID:           string(p.ID),
			Name:         p.Name,
			WinCount:     p.WinCount,
			HasSubmitted: p.HasSubmitted,
		})
	}

	results := make([]RoundResult, 0, len(g.Results))
	for _, r := range g.Results {
		results = append(results, RoundResult{
			BlankIndex: r.BlankIndex,
			WinnerID:   string(r.WinnerID),
			WinnerName: r.WinnerName,
			PhotoRef:   r.PhotoRef,
			ObjectName: r.ObjectName,
			OneLiner:   r.OneLiner,
		})
	}

	var blank *StoryBlank
	if b := g.CurrentBlank(); b != nil {
		blank = &StoryBlank{Index: b.Index, Theme: b.Theme, Criteria: b.Criteria}
	}

	return GameState{
		LobbyCode:    string(g.LobbyCode),
		Status:       string(g.Status),
		CurrentRound: g.CurrentRound,
		TotalRounds:  g.TotalRounds,
		Deadline:     g.Deadline,
		StoryBlank:   blank,
		Players:      players,
		Results:      results,
	}
}

// RejoinResponse is the response for a successful rejoin
type RejoinResponse struct {
	Lobby Lobby      `json:"lobby"`
	Game  *GameState `json:"game,omitempty"`
}

// UploadPhotoResponse is the response after a photo upload
type UploadPhotoResponse struct {
	PhotoRef string `json:"photo_ref"`
}
