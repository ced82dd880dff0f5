package generate

import (
	"context"

	"snapquest/internal/dependencies/random"
	"snapquest/internal/model"
)

// StaticStoryGenerator serves pre-written stories. It backs local
// development and acts as the fallback when no API key is configured.
type StaticStoryGenerator struct {
	rand random.Random
}

var _ StoryGenerator = (*StaticStoryGenerator)(nil)

func NewStaticStoryGenerator(rand random.Random) *StaticStoryGenerator {
	return &StaticStoryGenerator{rand: rand}
}

var staticStories = []model.Story{
	{
		Template: "Gerald woke up late for the world's most important meeting. He grabbed a {0} instead of his briefcase, combed his hair with a {1}, and sprinted out the door clutching a {2}. Nobody at the office said a word, because Gerald was the boss.",
		Blanks: []model.StoryBlank{
			{Index: 0, Theme: "Something you could mistake for a briefcase in the dark", Criteria: "The most unprofessional"},
			{Index: 1, Theme: "An object that should never touch hair", Criteria: "The most painful"},
			{Index: 2, Theme: "A thing you would never bring to a meeting", Criteria: "The most distracting"},
			{Index: 3, Theme: "Something that makes a terrible lunch", Criteria: "The most inedible"},
		},
	},
	{
		Template: "Captain Mildred prepared her spaceship for launch. The engine was powered by a {0}, the navigation system was just a {1}, and the emergency escape pod contained only a {2}. Mission control approved everything without looking.",
		Blanks: []model.StoryBlank{
			{Index: 0, Theme: "Something that produces heat but shouldn't power a rocket", Criteria: "The most dangerous"},
			{Index: 1, Theme: "A thing that points in a direction", Criteria: "The most unreliable"},
			{Index: 2, Theme: "An item you'd want if stranded in space", Criteria: "The most useless"},
			{Index: 3, Theme: "Something round enough to orbit", Criteria: "The most planetary"},
		},
	},
	{
		Template: "Chef Bartholomew's secret recipe called for one {0}, a pinch of {1}, and an entire {2}. The food critics wept. It was unclear whether from joy.",
		Blanks: []model.StoryBlank{
			{Index: 0, Theme: "Something from your kitchen that isn't food", Criteria: "The most appetising"},
			{Index: 1, Theme: "A substance you should never season with", Criteria: "The most suspicious"},
			{Index: 2, Theme: "The biggest thing within reach", Criteria: "The most oversized"},
			{Index: 3, Theme: "Something that would survive an oven", Criteria: "The most indestructible"},
		},
	},
}

// GenerateStory picks a canned story and trims or pads its blanks to
// the requested count. Padding reuses the last blank's theme so extra
// rounds remain playable.
func (g *StaticStoryGenerator) GenerateStory(_ context.Context, blanks int) (*model.Story, error) {
	src := staticStories[g.rand.Intn(len(staticStories))]

	story := &model.Story{
		Template: src.Template,
		Blanks:   make([]model.StoryBlank, 0, blanks),
	}
	for i := 0; i < blanks; i++ {
		var b model.StoryBlank
		if i < len(src.Blanks) {
			b = src.Blanks[i]
		} else {
			b = src.Blanks[len(src.Blanks)-1]
		}
		b.Index = i
		story.Blanks = append(story.Blanks, b)
	}
	return story, nil
}

// StaticJudge picks a random submission as the winner. Like the static
// story generator it keeps a game playable without an API key.
type StaticJudge struct {
	rand random.Random
}

var _ Judge = (*StaticJudge)(nil)

func NewStaticJudge(rand random.Random) *StaticJudge {
	return &StaticJudge{rand: rand}
}

func (j *StaticJudge) JudgeRound(_ context.Context, in JudgeInput) (*Verdict, error) {
	if len(in.Submissions) == 0 {
		return nil, ErrNoSubmissions
	}
	winner := in.Submissions[j.rand.Intn(len(in.Submissions))]
	return &Verdict{
		WinnerID:   winner.PlayerID,
		ObjectName: "Mystery Object",
		OneLiner:   winner.Name + " takes it, no contest!",
	}, nil
}

// StaticRecapper returns the fallback recap unchanged.
type StaticRecapper struct{}

var _ Recapper = (*StaticRecapper)(nil)

func NewStaticRecapper() *StaticRecapper {
	return &StaticRecapper{}
}

func (r *StaticRecapper) GenerateRecap(_ context.Context, in RecapInput) (*RecapResult, error) {
	return FallbackRecap(in), nil
}
