package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case Lobby:
		o.printLobby(v)
	case GameSettings:
		o.printSettings(v)
	case GameState:
		o.printGameState(v)
	case RejoinResult:
		o.printRejoinResult(v)
	case UploadResult:
		o.printUploadResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AuthResult response type (matches API)
type AuthResult struct {
	PlayerID     string `json:"player_id"`
	DisplayName  string `json:"display_name"`
	SessionToken string `json:"session_token"`
}

// Player response type
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsHost      bool   `json:"is_host"`
	IsReady     bool   `json:"is_ready"`
	IsConnected bool   `json:"is_connected"`
}

// GameSettings response type
type GameSettings struct {
	Rounds           int `json:"rounds"`
	RoundTimeSeconds int `json:"round_time_seconds"`
}

// Lobby response type
type Lobby struct {
	Code       string       `json:"code"`
	State      string       `json:"state"`
	HostID     string       `json:"host_id"`
	MaxPlayers int          `json:"max_players"`
	Players    []Player     `json:"players"`
	Settings   GameSettings `json:"settings"`
	AllReady   bool         `json:"all_ready"`
}

// StoryBlank response type
type StoryBlank struct {
	Index    int    `json:"index"`
	Theme    string `json:"theme"`
	Criteria string `json:"criteria"`
}

// PlayerGameState response type
type PlayerGameState struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	WinCount     int    `json:"win_count"`
	HasSubmitted bool   `json:"has_submitted"`
}

// RoundResult response type
type RoundResult struct {
	BlankIndex int    `json:"blank_index"`
	WinnerID   string `json:"winner_id"`
	WinnerName string `json:"winner_name"`
	ObjectName string `json:"object_name"`
	OneLiner   string `json:"one_liner"`
}

// GameState response type
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

// RejoinResult response type
type RejoinResult struct {
	Lobby Lobby      `json:"lobby"`
	Game  *GameState `json:"game,omitempty"`
}

// UploadResult response type
type UploadResult struct {
	PhotoRef string `json:"photo_ref"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Player: %s (%s)\n", a.DisplayName, a.PlayerID)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printLobby(l Lobby) {
	fmt.Printf("Lobby: %s\n", l.Code)
	fmt.Printf("State: %s\n", l.State)
	fmt.Printf("Rounds: %d, %ds per round\n", l.Settings.Rounds, l.Settings.RoundTimeSeconds)
	fmt.Printf("Players (%d/%d):\n", len(l.Players), l.MaxPlayers)
	for _, p := range l.Players {
		tags := ""
		if p.ID == l.HostID {
			tags += " [host]"
		}
		if p.IsReady {
			tags += " [ready]"
		}
		if !p.IsConnected {
			tags += " [disconnected]"
		}
		fmt.Printf("  - %s (%s)%s\n", p.DisplayName, p.ID, tags)
	}
	if l.AllReady {
		fmt.Println("Everyone is ready")
	}
}

func (o *Output) printSettings(s GameSettings) {
	fmt.Printf("Rounds: %d\n", s.Rounds)
	fmt.Printf("Round Time: %ds\n", s.RoundTimeSeconds)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.LobbyCode)
	fmt.Printf("Status: %s\n", g.Status)
	fmt.Printf("Round: %d of %d\n", g.CurrentRound, g.TotalRounds)

	if g.StoryBlank != nil {
		fmt.Printf("Find: %s\n", g.StoryBlank.Theme)
		fmt.Printf("Judged on: %s\n", g.StoryBlank.Criteria)
		if remaining := time.Until(g.Deadline).Round(time.Second); remaining > 0 {
			fmt.Printf("Time left: %s\n", remaining)
		}
	}

	fmt.Println("Players:")
	for _, p := range g.Players {
		submitted := ""
		if p.HasSubmitted {
			submitted = " [submitted]"
		}
		fmt.Printf("  - %s: %d wins%s\n", p.Name, p.WinCount, submitted)
	}

	if len(g.Results) > 0 {
		fmt.Println("Results so far:")
		for _, r := range g.Results {
			fmt.Printf("  Round %d: %s with %q\n", r.BlankIndex+1, r.WinnerName, r.ObjectName)
			if r.OneLiner != "" {
				fmt.Printf("    %s\n", r.OneLiner)
			}
		}
	}
}

func (o *Output) printRejoinResult(r RejoinResult) {
	fmt.Println("Rejoined!")
	o.printLobby(r.Lobby)
	if r.Game != nil {
		fmt.Println()
		o.printGameState(*r.Game)
	}
}

func (o *Output) printUploadResult(u UploadResult) {
	fmt.Printf("Photo Ref: %s\n", u.PhotoRef)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
