package generate

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"snapquest/internal/model"
	"snapquest/internal/photo"
)

// GeminiJudge runs the two-stage round judgement: a vision pass picks
// the winning submission, then an announcer pass names the winning
// object and writes the one-liner.
type GeminiJudge struct {
	client *GeminiClient
	photos photo.Store
	logger *slog.Logger
}

var _ Judge = (*GeminiJudge)(nil)

func NewGeminiJudge(client *GeminiClient, photos photo.Store, logger *slog.Logger) *GeminiJudge {
	return &GeminiJudge{
		client: client,
		photos: photos,
		logger: logger,
	}
}

type judgeOutput struct {
	ChosenPlayerID    string `json:"chosenPlayerId"`
	JudgesExplanation string `json:"judgesExplanation"`
}

type announcerOutput struct {
	OneLiner string `json:"oneLiner"`
	BestWord string `json:"bestWord"`
}

func (j *GeminiJudge) JudgeRound(ctx context.Context, in JudgeInput) (*Verdict, error) {
	if len(in.Submissions) == 0 {
		return nil, ErrNoSubmissions
	}

	parts := []Part{{Text: fmt.Sprintf("THEME: %s\nCRITERIA: %s\n\nSubmissions follow, one photo each.", in.Theme, in.Criteria)}}
	photoParts := make(map[model.PlayerID]Part, len(in.Submissions))
	for _, sub := range in.Submissions {
		p, err := j.photos.Get(ctx, sub.PhotoRef)
		if err != nil {
			return nil, fmt.Errorf("loading photo for player %s: %w", sub.PlayerID, err)
		}
		imgPart := Part{InlineData: &InlineData{
			MIMEType: p.ContentType,
			Data:     base64.StdEncoding.EncodeToString(p.Data),
		}}
		photoParts[sub.PlayerID] = imgPart
		parts = append(parts,
			Part{Text: fmt.Sprintf("player_id: %s\nplayer_name: %s", sub.PlayerID, sub.Name)},
			imgPart,
		)
	}

	var picked judgeOutput
	if err := j.client.GenerateJSON(ctx, judgeModel, judgeSystemPrompt, parts, judgeSchema, &picked); err != nil {
		return nil, fmt.Errorf("judging round: %w", err)
	}

	winner, ok := j.findWinner(in.Submissions, picked.ChosenPlayerID)
	if !ok {
		return nil, fmt.Errorf("judge picked unknown player %q", picked.ChosenPlayerID)
	}

	j.logger.Info("round judged",
		slog.String("winner_id", string(winner.PlayerID)),
		slog.String("winner_name", winner.Name))

	announced, err := j.announce(ctx, in, *winner, picked.JudgesExplanation, photoParts[winner.PlayerID])
	if err != nil {
		// The winner stands even when the announcer fails; fall back to
		// flat copy so the round can still resolve.
		j.logger.Warn("announcer failed, using fallback copy", slog.String("error", err.Error()))
		announced = &announcerOutput{
			OneLiner: fmt.Sprintf("%s takes it!", winner.Name),
			BestWord: "Mystery Object",
		}
	}

	return &Verdict{
		WinnerID:   winner.PlayerID,
		ObjectName: announced.BestWord,
		OneLiner:   announced.OneLiner,
	}, nil
}

func (j *GeminiJudge) findWinner(subs []Submission, chosenID string) (*Submission, bool) {
	for i := range subs {
		if string(subs[i].PlayerID) == chosenID {
			return &subs[i], true
		}
	}
	return nil, false
}

func (j *GeminiJudge) announce(ctx context.Context, in JudgeInput, winner Submission, explanation string, img Part) (*announcerOutput, error) {
	parts := []Part{
		{Text: fmt.Sprintf(
			"THEME: %s\nCRITERIA: %s\nWINNER: %s\nJUDGE'S EXPLANATION: %s\n\nThe winning photo follows.",
			in.Theme, in.Criteria, winner.Name, explanation)},
		img,
	}

	var out announcerOutput
	if err := j.client.GenerateJSON(ctx, announcerModel, announcerSystemPrompt, parts, announcerSchema, &out); err != nil {
		return nil, fmt.Errorf("announcing winner: %w", err)
	}
	if out.OneLiner == "" || out.BestWord == "" {
		return nil, fmt.Errorf("announcer output incomplete")
	}
	return &out, nil
}
