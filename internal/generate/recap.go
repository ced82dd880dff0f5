package generate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"snapquest/internal/model"
)

// GeminiRecapper narrates the finished game as a segmented story
type GeminiRecapper struct {
	client *GeminiClient
	logger *slog.Logger
}

var _ Recapper = (*GeminiRecapper)(nil)

func NewGeminiRecapper(client *GeminiClient, logger *slog.Logger) *GeminiRecapper {
	return &GeminiRecapper{
		client: client,
		logger: logger,
	}
}

type recapOutput struct {
	Segments []struct {
		Index int    `json:"index"`
		Lead  string `json:"lead"`
	} `json:"segments"`
	FinalStory string `json:"finalStory"`
}

func (r *GeminiRecapper) GenerateRecap(ctx context.Context, in RecapInput) (*RecapResult, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "STORY TEMPLATE:\n%s\n\nFEATURED PLAYER NAME: %s\n\nWINNING ITEMS:\n", in.StoryTemplate, in.FeaturedName)
	for _, res := range in.Results {
		fmt.Fprintf(&sb, "- blank {%d}: %s\n", res.Index, res.Word)
	}

	var out recapOutput
	err := r.client.GenerateJSON(ctx, recapModel, recapSystemPrompt, []Part{{Text: sb.String()}}, recapSchema, &out)
	if err != nil {
		return nil, fmt.Errorf("generating recap: %w", err)
	}
	if out.FinalStory == "" {
		return nil, fmt.Errorf("recap output missing final story")
	}

	sort.Slice(out.Segments, func(i, j int) bool {
		return out.Segments[i].Index < out.Segments[j].Index
	})

	result := &RecapResult{
		FinalStory: out.FinalStory,
		Segments:   make([]model.StorySegment, 0, len(out.Segments)),
	}
	for _, seg := range out.Segments {
		result.Segments = append(result.Segments, model.StorySegment{
			Index: seg.Index,
			Lead:  seg.Lead,
		})
	}
	return result, nil
}

// FallbackRecap is used when narration fails: the raw template with no
// segment leads, so the game can still complete.
func FallbackRecap(in RecapInput) *RecapResult {
	return &RecapResult{
		Segments:   []model.StorySegment{},
		FinalStory: in.StoryTemplate,
	}
}
