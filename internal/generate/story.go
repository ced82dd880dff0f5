package generate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"snapquest/internal/model"
)

// GeminiStoryGenerator generates story templates via the Gemini API
type GeminiStoryGenerator struct {
	client *GeminiClient
	logger *slog.Logger
}

var _ StoryGenerator = (*GeminiStoryGenerator)(nil)

func NewGeminiStoryGenerator(client *GeminiClient, logger *slog.Logger) *GeminiStoryGenerator {
	return &GeminiStoryGenerator{
		client: client,
		logger: logger,
	}
}

type storyOutput struct {
	StoryTemplate string `json:"storyTemplate"`
	Blanks        []struct {
		Index    int    `json:"index"`
		Theme    string `json:"theme"`
		Criteria string `json:"criteria"`
	} `json:"blanks"`
}

func (g *GeminiStoryGenerator) GenerateStory(ctx context.Context, blanks int) (*model.Story, error) {
	prompt := fmt.Sprintf("Generate a story with EXACTLY %d blanks.", blanks)

	var out storyOutput
	err := g.client.GenerateJSON(ctx, storyModel, storySystemPrompt, []Part{{Text: prompt}}, storySchema, &out)
	if err != nil {
		return nil, fmt.Errorf("generating story: %w", err)
	}

	if out.StoryTemplate == "" || len(out.Blanks) == 0 {
		return nil, fmt.Errorf("story output incomplete: %d blanks", len(out.Blanks))
	}

	// The model does not always honour the requested count; the returned
	// blanks are authoritative, so just normalise their order and indices.
	sort.Slice(out.Blanks, func(i, j int) bool {
		return out.Blanks[i].Index < out.Blanks[j].Index
	})

	story := &model.Story{
		Template: out.StoryTemplate,
		Blanks:   make([]model.StoryBlank, 0, len(out.Blanks)),
	}
	for i, b := range out.Blanks {
		story.Blanks = append(story.Blanks, model.StoryBlank{
			Index:    i,
			Theme:    b.Theme,
			Criteria: b.Criteria,
		})
	}

	if len(story.Blanks) != blanks {
		g.logger.Warn("story blank count differs from request",
			slog.Int("requested", blanks),
			slog.Int("generated", len(story.Blanks)))
	}

	return story, nil
}
