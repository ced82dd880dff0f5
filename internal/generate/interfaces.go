// Package generate holds the content generators: story, judge,
// announcer, and recap. Each is a pure request/response call against a
// generative model with a schema-constrained JSON reply; none of them
// hold game state.
package generate

import (
	"context"
	"errors"

	"snapquest/internal/model"
)

// ErrNoSubmissions is returned when a round ends with nothing to judge
var ErrNoSubmissions = errors.New("no submissions to judge")

// StoryGenerator produces the game's story template. The number of
// blanks in the returned story is authoritative for the round count;
// callers must size the game to the output, not the request.
type StoryGenerator interface {
	GenerateStory(ctx context.Context, blanks int) (*model.Story, error)
}

// Submission is one player's entry for a round
type Submission struct {
	PlayerID model.PlayerID
	Name     string
	PhotoRef string
}

// JudgeInput is everything the judge pipeline needs for one round
type JudgeInput struct {
	Theme       string
	Criteria    string
	Submissions []Submission
}

// Verdict is the combined output of the judge and announcer stages
type Verdict struct {
	WinnerID   model.PlayerID
	ObjectName string
	OneLiner   string
}

// Judge evaluates a round's photo submissions and picks one winner
type Judge interface {
	JudgeRound(ctx context.Context, in JudgeInput) (*Verdict, error)
}

// BlankWord is the judge's best word for one resolved blank
type BlankWord struct {
	Index int
	Word  string
}

// RecapInput feeds the end-of-game narration
type RecapInput struct {
	StoryTemplate string
	FeaturedName  string
	Results       []BlankWord
}

// RecapResult is the narrated final story
type RecapResult struct {
	Segments   []model.StorySegment
	FinalStory string
}

// Recapper narrates the completed game
type Recapper interface {
	GenerateRecap(ctx context.Context, in RecapInput) (*RecapResult, error)
}
