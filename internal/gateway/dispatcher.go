// Package gateway translates domain events into SSE broadcasts. It is
// the only place that knows both the event payload types and the wire
// format.
package gateway

import (
	"encoding/json"
	"log/slog"

	"snapquest/internal/events"
	"snapquest/internal/gateway/sse"
	"snapquest/internal/model"
)

// Dispatcher receives domain events and fans them out to the emitting
// lobby's SSE hub
type Dispatcher struct {
	hubs   *sse.HubManager
	logger *slog.Logger
}

var _ events.Emitter = (*Dispatcher)(nil)

// NewDispatcher creates a new Dispatcher
func NewDispatcher(hubs *sse.HubManager, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		hubs:   hubs,
		logger: logger.With(slog.String("component", "dispatcher")),
	}
}

// Emit converts the event payload to its wire shape and broadcasts it.
// Unknown payloads are dropped with a log line rather than crashing the
// emitting controller.
func (d *Dispatcher) Emit(event model.Event) {
	hub := d.hubs.GetHub(event.LobbyCode)
	if hub == nil {
		return
	}

	payload := toWire(event.Payload)
	data, err := json.Marshal(payload)
	if err != nil {
		d.logger.Error("event marshal failed",
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()))
		return
	}

	hub.BroadcastEvent(string(event.Type), string(data))
}

func toWire(payload any) any {
	switch p := payload.(type) {
	case model.LobbyStatePayload:
		players := make([]wirePlayer, 0, len(p.Players))
		for _, pl := range p.Players {
			players = append(players, toWirePlayer(pl))
		}
		return wireLobbyState{
			Code:     string(p.Code),
			Players:  players,
			HostID:   string(p.HostID),
			State:    string(p.State),
			AllReady: p.AllReady,
			Settings: toWireSettings(p.Settings),
		}
	case model.PlayerJoinedPayload:
		return wirePlayerRef{PlayerID: string(p.PlayerID), Name: p.Name}
	case model.PlayerLeftPayload:
		return wirePlayerRef{PlayerID: string(p.PlayerID), Name: p.Name}
	case model.PlayerDisconnectedPayload:
		return wirePlayerRef{PlayerID: string(p.PlayerID), Name: p.Name}
	case model.PlayerRejoinedPayload:
		return wireRejoin{
			OldPlayerID: string(p.OldPlayerID),
			NewPlayerID: string(p.NewPlayerID),
			Name:        p.Name,
		}
	case model.HostChangedPayload:
		return wireHostChanged{NewHostID: string(p.NewHostID), Name: p.Name}
	case model.ReactionPayload:
		return wireReaction{PlayerID: string(p.PlayerID), Name: p.Name, Icon: p.Icon}
	case model.GameStartPayload:
		return wireGameStart{
			StoryTemplate: p.StoryTemplate,
			Blanks:        toWireBlanks(p.Blanks),
			TotalRounds:   p.TotalRounds,
		}
	case model.RoundPayload:
		return wireRound{
			Round:            p.Round,
			TotalRounds:      p.TotalRounds,
			Theme:            p.Theme,
			Criteria:         p.Criteria,
			Deadline:         p.Deadline,
			RemainingSeconds: p.RemainingSeconds,
		}
	case model.TickPayload:
		return wireTick{RemainingSeconds: p.RemainingSeconds}
	case model.PlayerSubmittedPayload:
		return wirePlayerRef{PlayerID: string(p.PlayerID), Name: p.Name}
	case model.RoundResultPayload:
		return wireRoundResult{
			Round:      p.Round,
			WinnerID:   string(p.WinnerID),
			WinnerName: p.WinnerName,
			PhotoRef:   p.PhotoRef,
			ObjectName: p.ObjectName,
			OneLiner:   p.OneLiner,
		}
	case model.NextRoundStatusPayload:
		return wireNextRoundStatus{ReadyCount: p.ReadyCount, TotalPlayers: p.TotalPlayers}
	case model.GameCompletePayload:
		segments := make([]wireStorySegment, 0, len(p.Segments))
		for _, seg := range p.Segments {
			segments = append(segments, wireStorySegment{Index: seg.Index, Lead: seg.Lead})
		}
		return wireGameComplete{
			StoryTemplate: p.StoryTemplate,
			Results:       toWireResults(p.Results),
			Segments:      segments,
			FinalStory:    p.FinalStory,
		}
	case model.FinalAwardsPayload:
		return wireFinalAwards{
			JudgesFavorite: toWireAwardEntries(p.Awards.JudgesFavorite),
			MostClueless:   toWireAwardEntries(p.Awards.MostClueless),
		}
	case model.ErrorPayload:
		return map[string]string{"message": p.Message}
	case nil:
		return map[string]string{}
	default:
		return payload
	}
}
