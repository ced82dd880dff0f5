package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Lobby events
	EventLobbyState         EventType = "lobby-state"
	EventPlayerJoined       EventType = "player-joined"
	EventPlayerLeft         EventType = "player-left"
	EventPlayerDisconnected EventType = "player-disconnected"
	EventPlayerRejoined     EventType = "player-rejoined"
	EventHostChanged        EventType = "host-changed"
	EventReaction           EventType = "reaction"

	// Game events
	EventGameStart       EventType = "game-start"
	EventRound           EventType = "round"
	EventTick            EventType = "tick"
	EventPlayerSubmitted EventType = "player-submitted"
	EventJudging         EventType = "judging"
	EventRoundResult     EventType = "round-result"
	EventNextRoundStatus EventType = "next-round-status"
	EventGameComplete    EventType = "game-complete"
	EventFinalAwards     EventType = "final-awards"

	// EventError is a user-facing failure notice, broadcast when a
	// background step degrades rather than stopping the game
	EventError EventType = "error"
)

// Event is the base structure for all domain events emitted by the
// lobby registry and the game controller. A dispatcher translates these
// into transport broadcasts; nothing in here knows about the transport.
type Event struct {
	Type      EventType
	Timestamp time.Time
	LobbyCode LobbyCode
	Payload   any
}

// LobbyStatePayload is the full lobby snapshot broadcast after any
// membership or readiness change
type LobbyStatePayload struct {
	Code     LobbyCode
	Players  []Player
	HostID   PlayerID
	State    LobbyState
	AllReady bool
	Settings GameSettings
}

// PlayerJoinedPayload contains data for player joined events
type PlayerJoinedPayload struct {
	PlayerID PlayerID
	Name     string
}

// PlayerLeftPayload contains data for player left events
type PlayerLeftPayload struct {
	PlayerID PlayerID
	Name     string
}

// PlayerDisconnectedPayload contains data for mid-game disconnects,
// where the player record is retained for rejoin
type PlayerDisconnectedPayload struct {
	PlayerID PlayerID
	Name     string
}

// PlayerRejoinedPayload contains data for a rejoin under a new identity
type PlayerRejoinedPayload struct {
	OldPlayerID PlayerID
	NewPlayerID PlayerID
	Name        string
}

// HostChangedPayload contains data for host promotion events
type HostChangedPayload struct {
	NewHostID PlayerID
	Name      string
}

// ReactionPayload is a fire-and-forget emote relayed to the room
type ReactionPayload struct {
	PlayerID PlayerID
	Name     string
	Icon     string
}

// GameStartPayload contains the generated story shape
type GameStartPayload struct {
	StoryTemplate string
	Blanks        []StoryBlank
	TotalRounds   int
}

// RoundPayload announces a round and its prompt
type RoundPayload struct {
	Round            int
	TotalRounds      int
	Theme            string
	Criteria         string
	Deadline         time.Time
	RemainingSeconds int
}

// TickPayload carries the countdown for the current round
type TickPayload struct {
	RemainingSeconds int
}

// PlayerSubmittedPayload announces that a player's photo is in
type PlayerSubmittedPayload struct {
	PlayerID PlayerID
	Name     string
}

// RoundResultPayload announces the round winner. Winner fields are
// zero-valued when the round had no valid submissions.
type RoundResultPayload struct {
	Round      int
	WinnerID   PlayerID
	WinnerName string
	PhotoRef   string
	ObjectName string
	OneLiner   string
}

// NextRoundStatusPayload reports results-screen readiness progress
type NextRoundStatusPayload struct {
	ReadyCount   int
	TotalPlayers int
}

// GameCompletePayload carries the narrated recap of the finished game
type GameCompletePayload struct {
	StoryTemplate string
	Results       []RoundResult
	Segments      []StorySegment
	FinalStory    string
}

// FinalAwardsPayload carries the end-of-game award categories
type FinalAwardsPayload struct {
	Awards FinalAwards
}

// ErrorPayload is a labeled, user-facing failure message
type ErrorPayload struct {
	Message string
}
