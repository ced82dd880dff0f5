package gateway

import (
	"time"

	"snapquest/internal/model"
)

// Wire types are the JSON shapes clients see on the event stream. They
// mirror the domain payloads but keep the wire format decoupled from
// internal structs.

type wirePlayer struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsHost      bool   `json:"is_host"`
	IsReady     bool   `json:"is_ready"`
	IsConnected bool   `json:"is_connected"`
}

type wireSettings struct {
	Rounds           int `json:"rounds"`
	RoundTimeSeconds int `json:"round_time_seconds"`
}

type wireLobbyState struct {
	Code     string       `json:"code"`
	Players  []wirePlayer `json:"players"`
	HostID   string       `json:"host_id"`
	State    string       `json:"state"`
	AllReady bool         `json:"all_ready"`
	Settings wireSettings `json:"settings"`
}

type wirePlayerRef struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type wireRejoin struct {
	OldPlayerID string `json:"old_player_id"`
	NewPlayerID string `json:"new_player_id"`
	Name        string `json:"name"`
}

type wireHostChanged struct {
	NewHostID string `json:"new_host_id"`
	Name      string `json:"name"`
}

type wireReaction struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
}

type wireBlank struct {
	Index    int    `json:"index"`
	Theme    string `json:"theme"`
	Criteria string `json:"criteria"`
}

type wireGameStart struct {
	StoryTemplate string      `json:"story_template"`
	Blanks        []wireBlank `json:"blanks"`
	TotalRounds   int         `json:"total_rounds"`
}

type wireRound struct {
	Round            int       `json:"round"`
	TotalRounds      int       `json:"total_rounds"`
	Theme            string    `json:"theme"`
	Criteria         string    `json:"criteria"`
	Deadline         time.Time `json:"deadline"`
	RemainingSeconds int       `json:"remaining_seconds"`
}

type wireTick struct {
	RemainingSeconds int `json:"remaining_seconds"`
}

type wireRoundResult struct {
	Round      int    `json:"round"`
	WinnerID   string `json:"winner_id,omitempty"`
	WinnerName string `json:"winner_name,omitempty"`
	PhotoRef   string `json:"photo_ref,omitempty"`
	ObjectName string `json:"object_name,omitempty"`
	OneLiner   string `json:"one_liner,omitempty"`
}

type wireNextRoundStatus struct {
	ReadyCount   int `json:"ready_count"`
	TotalPlayers int `json:"total_players"`
}

type wireStorySegment struct {
	Index int    `json:"index"`
	Lead  string `json:"lead"`
}

type wireGameComplete struct {
	StoryTemplate string             `json:"story_template"`
	Results       []wireRoundResult  `json:"results"`
	Segments      []wireStorySegment `json:"segments"`
	FinalStory    string             `json:"final_story"`
}

type wireAwardEntry struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
}

type wireFinalAwards struct {
	JudgesFavorite []wireAwardEntry `json:"judges_favorite"`
	MostClueless   []wireAwardEntry `json:"most_clueless"`
}

func toWirePlayer(p model.Player) wirePlayer {
	return wirePlayer{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsHost:      p.IsHost,
		IsReady:     p.IsReady,
		IsConnected: p.IsConnected,
	}
}

func toWireSettings(s model.GameSettings) wireSettings {
	return wireSettings{
		Rounds:           s.Rounds,
		RoundTimeSeconds: s.RoundTimeSeconds,
	}
}

func toWireBlanks(blanks []model.StoryBlank) []wireBlank {
	out := make([]wireBlank, 0, len(blanks))
	for _, b := range blanks {
		out = append(out, wireBlank{Index: b.Index, Theme: b.Theme, Criteria: b.Criteria})
	}
	return out
}

func toWireAwardEntries(entries []model.AwardEntry) []wireAwardEntry {
	out := make([]wireAwardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, wireAwardEntry{PlayerID: string(e.PlayerID), Name: e.Name, Wins: e.Wins})
	}
	return out
}

func toWireResults(results []model.RoundResult) []wireRoundResult {
	out := make([]wireRoundResult, 0, len(results))
	for _, r := range results {
		out = append(out, wireRoundResult{
			Round:      r.BlankIndex + 1,
			WinnerID:   string(r.WinnerID),
			WinnerName: r.WinnerName,
			PhotoRef:   r.PhotoRef,
			ObjectName: r.ObjectName,
			OneLiner:   r.OneLiner,
		})
	}
	return out
}
