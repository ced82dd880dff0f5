package model

import "time"

// GameStatus represents the round lifecycle state of a running game
type GameStatus string

const (
	GameStatusWaiting  GameStatus = "waiting"
	GameStatusRound    GameStatus = "round"
	GameStatusJudging  GameStatus = "judging"
	GameStatusResults  GameStatus = "results"
	GameStatusComplete GameStatus = "complete"
)

// PlayerGameState tracks a single player's per-game and per-round state.
// HasSubmitted and PhotoRef are reset exactly once per round transition;
// PhotoRef is cleared to the empty string, never conditionally deleted.
type PlayerGameState struct {
	ID           PlayerID
	Name         string
	WinCount     int
	HasSubmitted bool
	PhotoRef     string
}

// RoundResult records the outcome of one completed round. Appended
// exactly once per round, never mutated. A round with no valid
// submissions produces no RoundResult at all.
type RoundResult struct {
	BlankIndex int
	WinnerID   PlayerID
	WinnerName string
	PhotoRef   string
	ObjectName string // the judge's extracted best word
	OneLiner   string
}

// Game is the per-lobby round state machine. CurrentRound is 1-based,
// only ever increases, and never exceeds TotalRounds. TotalRounds is
// fixed at game start to the actual number of blanks the story
// generator returned, not the number requested.
type Game struct {
	LobbyCode    LobbyCode
	Players      map[PlayerID]*PlayerGameState
	CurrentRound int
	TotalRounds  int
	RoundTime    time.Duration
	Story        Story
	Results      []RoundResult
	Deadline     time.Time
	Status       GameStatus
	// NextReady is the set of players who confirmed leaving the results
	// screen; cleared every time results are broadcast.
	NextReady map[PlayerID]struct{}
	// PhotoRefs accumulates every photo submitted across all rounds so
	// teardown can release them.
	PhotoRefs []string
}

// Clone returns a deep copy of the game. Callers outside the room lock
// only ever see clones.
func (g *Game) Clone() *Game {
	out := *g
	out.Players = make(map[PlayerID]*PlayerGameState, len(g.Players))
	for id, p := range g.Players {
		cp := *p
		out.Players[id] = &cp
	}
	out.NextReady = make(map[PlayerID]struct{}, len(g.NextReady))
	for id := range g.NextReady {
		out.NextReady[id] = struct{}{}
	}
	out.Results = append([]RoundResult(nil), g.Results...)
	out.PhotoRefs = append([]string(nil), g.PhotoRefs...)
	out.Story.Blanks = append([]StoryBlank(nil), g.Story.Blanks...)
	return &out
}

// CurrentBlank returns the blank for the current round, or nil if the
// round number is out of range
func (g *Game) CurrentBlank() *StoryBlank {
	idx := g.CurrentRound - 1
	if idx < 0 || idx >= len(g.Story.Blanks) {
		return nil
	}
	return &g.Story.Blanks[idx]
}

// AllSubmitted reports whether every player has submitted this round
func (g *Game) AllSubmitted() bool {
	for _, p := range g.Players {
		if !p.HasSubmitted {
			return false
		}
	}
	return true
}

// AllNextReady reports whether every player has confirmed readiness to
// leave the results screen. False for an empty roster.
func (g *Game) AllNextReady() bool {
	if len(g.Players) == 0 {
		return false
	}
	for id := range g.Players {
		if _, ok := g.NextReady[id]; !ok {
			return false
		}
	}
	return true
}

// AwardEntry is one player's placement in a final award category
type AwardEntry struct {
	PlayerID PlayerID
	Name     string
	Wins     int
}

// FinalAwards holds the end-of-game award categories. JudgesFavorite is
// every player tied at the maximum win count (when it is above zero);
// MostClueless is every player tied at the minimum when the minimum is
// strictly below the maximum. Both empty when all players are tied.
type FinalAwards struct {
	JudgesFavorite []AwardEntry
	MostClueless   []AwardEntry
}

// StorySegment is one narrated lead-in from the recap generator
type StorySegment struct {
	Index int
	Lead  string
}
