// Package game runs the per-lobby round state machine: story setup,
// timed photo rounds, judging, results, and the final recap. All round
// transitions funnel through a per-room gate so a timer expiry, a final
// submission, and a disconnect can race without double-ending a round.
package game

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"snapquest/internal/dependencies/clock"
	"snapquest/internal/dependencies/random"
	"snapquest/internal/events"
	"snapquest/internal/generate"
	"snapquest/internal/model"
	"snapquest/internal/photo"
	"snapquest/internal/services/lobby"
	"snapquest/internal/storage"
)

// Config holds game controller tuning
type Config struct {
	// GraceWindow is how long after the round deadline submissions are
	// still accepted, covering upload latency. Measured from the
	// original deadline; late submissions never extend it.
	GraceWindow time.Duration
}

// DefaultConfig returns default game configuration
func DefaultConfig() Config {
	return Config{
		GraceWindow: 3 * time.Second,
	}
}

// room is the per-lobby concurrency envelope. Its mutex serialises
// every state transition for one game; the ticker drives the countdown.
type room struct {
	mu     sync.Mutex
	ticker clock.Ticker
	done   chan struct{}
}

func (r *room) lock()   { r.mu.Lock() }
func (r *room) unlock() { r.mu.Unlock() }

// Controller manages running games
type Controller struct {
	storage storage.Storage
	photos  photo.Store
	lobbies lobby.ControllerInterface
	story   generate.StoryGenerator
	judge   generate.Judge
	recap   generate.Recapper
	clock   clock.Clock
	random  random.Random
	emitter events.Emitter
	logger  *slog.Logger
	cfg     Config

	roomMu sync.Mutex
	rooms  map[model.LobbyCode]*room
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	photos photo.Store,
	lobbies lobby.ControllerInterface,
	story generate.StoryGenerator,
	judge generate.Judge,
	recap generate.Recapper,
	clock clock.Clock,
	random random.Random,
	emitter events.Emitter,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	if cfg.GraceWindow == 0 {
		cfg.GraceWindow = DefaultConfig().GraceWindow
	}
	return &Controller{
		storage: storage,
		photos:  photos,
		lobbies: lobbies,
		story:   story,
		judge:   judge,
		recap:   recap,
		clock:   clock,
		random:  random,
		emitter: emitter,
		logger:  logger,
		cfg:     cfg,
		rooms:   make(map[model.LobbyCode]*room),
	}
}

func (c *Controller) getRoom(code model.LobbyCode) *room {
	c.roomMu.Lock()
	defer c.roomMu.Unlock()
	r, ok := c.rooms[code]
	if !ok {
		r = &room{}
		c.rooms[code] = r
	}
	return r
}

// peekRoom returns the room if one exists, without creating an entry
// for codes that never started a game
func (c *Controller) peekRoom(code model.LobbyCode) *room {
	c.roomMu.Lock()
	defer c.roomMu.Unlock()
	return c.rooms[code]
}

func (c *Controller) dropRoom(code model.LobbyCode) {
	c.roomMu.Lock()
	defer c.roomMu.Unlock()
	delete(c.rooms, code)
}

// GetGame retrieves a snapshot of the running game for a lobby. The
// copy is taken under the room lock so readers never observe the timer
// goroutine mid-mutation.
func (c *Controller) GetGame(ctx context.Context, code model.LobbyCode) (*model.Game, error) {
	if r := c.peekRoom(code); r != nil {
		r.lock()
		defer r.unlock()
	}
	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

// StartGame begins a game for the lobby. Only the host may start, the
// lobby must be waiting, and every player must be ready. The round
// count is fixed to however many blanks the generated story has.
func (c *Controller) StartGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) (*model.Game, error) {
	l, err := c.lobbies.GetLobby(ctx, code)
	if err != nil {
		return nil, err
	}
	if l.HostID != requestingPlayer {
		return nil, model.ErrNotHost
	}
	if l.State != model.LobbyStateWaiting {
		return nil, model.ErrGameInProgress
	}
	if len(l.Players) < 2 {
		return nil, model.ErrInsufficientPlayers
	}
	if !l.AllReady() {
		return nil, model.ErrNotAllReady
	}

	settings := l.Settings

	// Starting blocks double-starts while story generation is in flight
	if err := c.lobbies.SetState(ctx, code, model.LobbyStateStarting); err != nil {
		return nil, err
	}

	story, err := c.story.GenerateStory(ctx, settings.Rounds)
	if err != nil {
		c.logger.Error("story generation failed",
			slog.String("code", string(code)),
			slog.String("error", err.Error()))
		_ = c.lobbies.SetState(ctx, code, model.LobbyStateWaiting)
		return nil, err
	}

	// Re-read membership after the generation suspension
	l, err = c.lobbies.GetLobby(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(l.Players) < 2 {
		_ = c.lobbies.SetState(ctx, code, model.LobbyStateWaiting)
		return nil, model.ErrInsufficientPlayers
	}

	now := c.clock.Now()
	roundTime := time.Duration(settings.RoundTimeSeconds) * time.Second

	players := make(map[model.PlayerID]*model.PlayerGameState, len(l.Players))
	for _, p := range l.PlayersInOrder() {
		players[p.ID] = &model.PlayerGameState{
			ID:   p.ID,
			Name: p.DisplayName,
		}
	}

	g := &model.Game{
		LobbyCode:    code,
		Players:      players,
		CurrentRound: 1,
		TotalRounds:  len(story.Blanks),
		RoundTime:    roundTime,
		Story:        *story,
		Results:      []model.RoundResult{},
		Deadline:     now.Add(roundTime),
		Status:       model.GameStatusRound,
		NextReady:    make(map[model.PlayerID]struct{}),
	}

	r := c.getRoom(code)
	r.lock()
	if err := c.storage.SaveGame(ctx, g); err != nil {
		r.unlock()
		_ = c.lobbies.SetState(ctx, code, model.LobbyStateWaiting)
		return nil, err
	}
	snapshot := g.Clone()
	r.unlock()

	if err := c.lobbies.SetState(ctx, code, model.LobbyStateInGame); err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("code", string(code)),
		slog.Int("rounds", snapshot.TotalRounds),
		slog.Int("players", len(players)))

	c.emit(code, model.EventGameStart, model.GameStartPayload{
		StoryTemplate: story.Template,
		Blanks:        story.Blanks,
		TotalRounds:   snapshot.TotalRounds,
	})
	c.emitRound(snapshot)
	c.startTimer(code, snapshot.Deadline)

	return snapshot, nil
}

// SubmitPhoto records a player's photo for the current round. Accepted
// until the deadline plus the grace window, once per player per round.
func (c *Controller) SubmitPhoto(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, photoRef string) error {
	r := c.getRoom(code)
	r.lock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		r.unlock()
		return err
	}
	if g.Status != model.GameStatusRound {
		r.unlock()
		return model.ErrRoundNotActive
	}
	p, ok := g.Players[playerID]
	if !ok {
		r.unlock()
		return model.ErrPlayerNotFound
	}
	if p.HasSubmitted {
		r.unlock()
		return model.ErrAlreadySubmitted
	}
	if c.clock.Now().After(g.Deadline.Add(c.cfg.GraceWindow)) {
		r.unlock()
		return model.ErrDeadlinePassed
	}

	p.HasSubmitted = true
	p.PhotoRef = photoRef
	g.PhotoRefs = append(g.PhotoRefs, photoRef)
	if err := c.storage.SaveGame(ctx, g); err != nil {
		r.unlock()
		return err
	}

	name := p.Name
	allIn := g.AllSubmitted()
	r.unlock()

	c.emit(code, model.EventPlayerSubmitted, model.PlayerSubmittedPayload{
		PlayerID: playerID,
		Name:     name,
	})

	if allIn {
		c.endRound(ctx, code)
	}
	return nil
}

// ConfirmNextRound marks a player ready to leave the results screen.
// When the whole roster has confirmed, the game advances.
func (c *Controller) ConfirmNextRound(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error {
	r := c.getRoom(code)
	r.lock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		r.unlock()
		return err
	}
	if g.Status != model.GameStatusResults {
		r.unlock()
		return model.ErrRoundNotActive
	}
	if _, ok := g.Players[playerID]; !ok {
		r.unlock()
		return model.ErrPlayerNotFound
	}

	g.NextReady[playerID] = struct{}{}
	if err := c.storage.SaveGame(ctx, g); err != nil {
		r.unlock()
		return err
	}

	ready := len(g.NextReady)
	total := len(g.Players)
	allReady := g.AllNextReady()
	r.unlock()

	c.emit(code, model.EventNextRoundStatus, model.NextRoundStatusPayload{
		ReadyCount:   ready,
		TotalPlayers: total,
	})

	if allReady {
		c.advance(ctx, code)
	}
	return nil
}

// HandleDisconnect forfeits a disconnected player's current round so
// the rest of the room is not held hostage. The player keeps their seat
// and scores for a possible rejoin.
func (c *Controller) HandleDisconnect(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error {
	r := c.getRoom(code)
	r.lock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		r.unlock()
		return err
	}
	p, ok := g.Players[playerID]
	if !ok {
		r.unlock()
		return model.ErrPlayerNotFound
	}

	forfeited := false
	if g.Status == model.GameStatusRound && !p.HasSubmitted {
		// Forfeit: counts as submitted with no photo
		p.HasSubmitted = true
		p.PhotoRef = ""
		forfeited = true
		if err := c.storage.SaveGame(ctx, g); err != nil {
			r.unlock()
			return err
		}
	}

	name := p.Name
	allIn := g.Status == model.GameStatusRound && g.AllSubmitted()
	allReady := g.Status == model.GameStatusResults && g.AllNextReady()
	r.unlock()

	if forfeited {
		c.emit(code, model.EventPlayerSubmitted, model.PlayerSubmittedPayload{
			PlayerID: playerID,
			Name:     name,
		})
	}

	if allIn {
		c.endRound(ctx, code)
	} else if allReady {
		c.advance(ctx, code)
	}
	return nil
}

// HandleRejoin splices a new connection identity into a seat vacated by
// a disconnect. Win counts and the current round submission carry over.
func (c *Controller) HandleRejoin(ctx context.Context, code model.LobbyCode, oldID, newID model.PlayerID) (*model.Game, error) {
	r := c.getRoom(code)
	r.lock()
	defer r.unlock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		return nil, err
	}
	p, ok := g.Players[oldID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}

	p.ID = newID
	delete(g.Players, oldID)
	g.Players[newID] = p
	if _, ok := g.NextReady[oldID]; ok {
		delete(g.NextReady, oldID)
		g.NextReady[newID] = struct{}{}
	}

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

// RemovePlayer drops a player from the game for good, re-checking both
// completion gates since the departed player may have been the holdout.
// The last player out abandons the game.
func (c *Controller) RemovePlayer(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error {
	r := c.getRoom(code)
	r.lock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		r.unlock()
		return err
	}
	if _, ok := g.Players[playerID]; !ok {
		r.unlock()
		return model.ErrPlayerNotFound
	}

	delete(g.Players, playerID)
	delete(g.NextReady, playerID)

	if len(g.Players) == 0 {
		c.stopTimer(r)
		r.unlock()
		return c.teardown(ctx, code, g)
	}

	if err := c.storage.SaveGame(ctx, g); err != nil {
		r.unlock()
		return err
	}

	allIn := g.Status == model.GameStatusRound && g.AllSubmitted()
	allReady := g.Status == model.GameStatusResults && g.AllNextReady()
	r.unlock()

	if allIn {
		c.endRound(ctx, code)
	} else if allReady {
		c.advance(ctx, code)
	}
	return nil
}

// Abandon stops and discards the lobby's game
func (c *Controller) Abandon(ctx context.Context, code model.LobbyCode) error {
	r := c.getRoom(code)
	r.lock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		r.unlock()
		return err
	}
	c.stopTimer(r)
	r.unlock()
	return c.teardown(ctx, code, g)
}

// startTimer runs the countdown for the current round. Ticks are
// emitted every second; the round ends once the grace window past the
// deadline has elapsed.
func (c *Controller) startTimer(code model.LobbyCode, deadline time.Time) {
	r := c.getRoom(code)
	r.lock()
	c.stopTimer(r)
	r.ticker = c.clock.NewTicker(time.Second)
	r.done = make(chan struct{})
	ticker, done := r.ticker, r.done
	r.unlock()

	go func() {
		for {
			select {
			case <-done:
				return
			case now, ok := <-ticker.Chan():
				if !ok {
					return
				}
				remaining := deadline.Sub(now)
				if remaining <= -c.cfg.GraceWindow {
					c.endRound(context.Background(), code)
					return
				}
				secs := int(remaining.Round(time.Second) / time.Second)
				if secs < 0 {
					secs = 0
				}
				c.emit(code, model.EventTick, model.TickPayload{RemainingSeconds: secs})
			}
		}
	}()
}

// stopTimer must be called with the room lock held
func (c *Controller) stopTimer(r *room) {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
	if r.done != nil {
		close(r.done)
		r.done = nil
	}
}

// endRound is the single gate out of an active round. Whichever trigger
// arrives first (timer expiry, final submission, disconnect of the
// holdout) flips the status to judging; every later arrival sees the
// flipped status and returns. Judging itself happens outside the lock.
func (c *Controller) endRound(ctx context.Context, code model.LobbyCode) {
	r := c.getRoom(code)
	r.lock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		r.unlock()
		return
	}
	if g.Status != model.GameStatusRound {
		r.unlock()
		return
	}

	g.Status = model.GameStatusJudging
	c.stopTimer(r)
	if err := c.storage.SaveGame(ctx, g); err != nil {
		r.unlock()
		return
	}

	blank := g.CurrentBlank()
	subs := make([]generate.Submission, 0, len(g.Players))
	for _, p := range g.Players {
		if p.HasSubmitted && p.PhotoRef != "" {
			subs = append(subs, generate.Submission{
				PlayerID: p.ID,
				Name:     p.Name,
				PhotoRef: p.PhotoRef,
			})
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })
	r.unlock()

	c.emit(code, model.EventJudging, nil)

	var verdict *generate.Verdict
	if len(subs) > 0 && blank != nil {
		verdict, err = c.judge.JudgeRound(ctx, generate.JudgeInput{
			Theme:       blank.Theme,
			Criteria:    blank.Criteria,
			Submissions: subs,
		})
		if err != nil {
			c.logger.Error("judging failed",
				slog.String("code", string(code)),
				slog.String("error", err.Error()))
			c.emit(code, model.EventError, model.ErrorPayload{
				Message: "The judge lost their notes. Nobody wins this round.",
			})
			verdict = nil
		}
	}

	c.applyVerdict(ctx, code, verdict)
}

// applyVerdict records the round outcome and moves to the results
// screen. A nil verdict means the round had no winner.
func (c *Controller) applyVerdict(ctx context.Context, code model.LobbyCode, verdict *generate.Verdict) {
	r := c.getRoom(code)
	r.lock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		r.unlock()
		return
	}
	if g.Status != model.GameStatusJudging {
		r.unlock()
		return
	}

	result := model.RoundResultPayload{Round: g.CurrentRound}
	if verdict != nil {
		if winner, ok := g.Players[verdict.WinnerID]; ok {
			winner.WinCount++
			rr := model.RoundResult{
				BlankIndex: g.CurrentRound - 1,
				WinnerID:   winner.ID,
				WinnerName: winner.Name,
				PhotoRef:   winner.PhotoRef,
				ObjectName: verdict.ObjectName,
				OneLiner:   verdict.OneLiner,
			}
			g.Results = append(g.Results, rr)
			result.WinnerID = rr.WinnerID
			result.WinnerName = rr.WinnerName
			result.PhotoRef = rr.PhotoRef
			result.ObjectName = rr.ObjectName
			result.OneLiner = rr.OneLiner
		} else {
			c.logger.Warn("verdict names a player no longer in the game",
				slog.String("code", string(code)),
				slog.String("winner_id", string(verdict.WinnerID)))
		}
	}

	g.Status = model.GameStatusResults
	g.NextReady = make(map[model.PlayerID]struct{})
	if err := c.storage.SaveGame(ctx, g); err != nil {
		r.unlock()
		return
	}
	total := len(g.Players)
	r.unlock()

	c.emit(code, model.EventRoundResult, result)
	c.emit(code, model.EventNextRoundStatus, model.NextRoundStatusPayload{
		ReadyCount:   0,
		TotalPlayers: total,
	})
}

// advance moves from the results screen to the next round, or to game
// completion after the final round.
func (c *Controller) advance(ctx context.Context, code model.LobbyCode) {
	r := c.getRoom(code)
	r.lock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		r.unlock()
		return
	}
	if g.Status != model.GameStatusResults {
		r.unlock()
		return
	}

	if g.CurrentRound >= g.TotalRounds {
		g.Status = model.GameStatusComplete
		if err := c.storage.SaveGame(ctx, g); err != nil {
			r.unlock()
			return
		}
		r.unlock()
		c.complete(ctx, code, g)
		return
	}

	for _, p := range g.Players {
		p.HasSubmitted = false
		p.PhotoRef = ""
	}
	g.CurrentRound++
	g.Deadline = c.clock.Now().Add(g.RoundTime)
	g.Status = model.GameStatusRound
	g.NextReady = make(map[model.PlayerID]struct{})

	if err := c.storage.SaveGame(ctx, g); err != nil {
		r.unlock()
		return
	}
	snapshot := g.Clone()
	r.unlock()

	c.emitRound(snapshot)
	c.startTimer(code, snapshot.Deadline)
}

// complete narrates the finished game, hands out awards, and tears the
// game down. The lobby returns to waiting so the room can go again.
func (c *Controller) complete(ctx context.Context, code model.LobbyCode, g *model.Game) {
	awards := c.computeAwards(g)

	recap := c.narrate(ctx, g, awards)

	c.emit(code, model.EventGameComplete, model.GameCompletePayload{
		StoryTemplate: g.Story.Template,
		Results:       g.Results,
		Segments:      recap.Segments,
		FinalStory:    recap.FinalStory,
	})
	c.emit(code, model.EventFinalAwards, model.FinalAwardsPayload{Awards: awards})

	c.logger.Info("game complete",
		slog.String("code", string(code)),
		slog.Int("rounds", g.TotalRounds))

	if err := c.teardown(ctx, code, g); err != nil {
		c.logger.Error("game teardown failed",
			slog.String("code", string(code)),
			slog.String("error", err.Error()))
	}
	_ = c.lobbies.SetState(ctx, code, model.LobbyStateWaiting)
}

// narrate runs the recap generator, falling back to the bare template
// when narration fails so completion never blocks on the model.
func (c *Controller) narrate(ctx context.Context, g *model.Game, awards model.FinalAwards) *generate.RecapResult {
	words := make([]generate.BlankWord, 0, len(g.Results))
	for _, res := range g.Results {
		words = append(words, generate.BlankWord{Index: res.BlankIndex, Word: res.ObjectName})
	}

	in := generate.RecapInput{
		StoryTemplate: g.Story.Template,
		FeaturedName:  c.pickFeatured(g, awards),
		Results:       words,
	}

	recap, err := c.recap.GenerateRecap(ctx, in)
	if err != nil {
		c.logger.Warn("recap generation failed, using raw template",
			slog.String("code", string(g.LobbyCode)),
			slog.String("error", err.Error()))
		return generate.FallbackRecap(in)
	}
	return recap
}

// pickFeatured chooses the protagonist for the recap: a random player
// from the clueless tier when there is one, otherwise anyone.
func (c *Controller) pickFeatured(g *model.Game, awards model.FinalAwards) string {
	if len(awards.MostClueless) > 0 {
		return awards.MostClueless[c.random.Intn(len(awards.MostClueless))].Name
	}
	names := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return "Somebody"
	}
	return names[c.random.Intn(len(names))]
}

// computeAwards derives the award tiers from win counts. Favorites are
// everyone tied at the top when the top is above zero; clueless are
// everyone tied at the bottom when the bottom is strictly below the
// top. A full tie awards nothing.
func (c *Controller) computeAwards(g *model.Game) model.FinalAwards {
	if len(g.Players) == 0 {
		return model.FinalAwards{JudgesFavorite: []model.AwardEntry{}, MostClueless: []model.AwardEntry{}}
	}

	entries := make([]model.AwardEntry, 0, len(g.Players))
	for _, p := range g.Players {
		entries = append(entries, model.AwardEntry{PlayerID: p.ID, Name: p.Name, Wins: p.WinCount})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	maxWins, minWins := entries[0].Wins, entries[0].Wins
	for _, e := range entries[1:] {
		maxWins = max(maxWins, e.Wins)
		minWins = min(minWins, e.Wins)
	}

	awards := model.FinalAwards{
		JudgesFavorite: []model.AwardEntry{},
		MostClueless:   []model.AwardEntry{},
	}
	for _, e := range entries {
		if e.Wins == maxWins && maxWins > 0 {
			awards.JudgesFavorite = append(awards.JudgesFavorite, e)
		}
		if e.Wins == minWins && minWins < maxWins {
			awards.MostClueless = append(awards.MostClueless, e)
		}
	}
	return awards
}

// teardown deletes the game, releases its photos, and drops the room
func (c *Controller) teardown(ctx context.Context, code model.LobbyCode, g *model.Game) error {
	for _, ref := range g.PhotoRefs {
		if err := c.photos.Delete(ctx, ref); err != nil {
			c.logger.Warn("photo cleanup failed",
				slog.String("code", string(code)),
				slog.String("ref", ref))
		}
	}
	err := c.storage.DeleteGame(ctx, code)
	c.dropRoom(code)
	return err
}

func (c *Controller) emit(code model.LobbyCode, t model.EventType, payload any) {
	c.emitter.Emit(model.Event{
		Type:      t,
		Timestamp: c.clock.Now(),
		LobbyCode: code,
		Payload:   payload,
	})
}

func (c *Controller) emitRound(g *model.Game) {
	blank := g.CurrentBlank()
	if blank == nil {
		return
	}
	remaining := int(g.Deadline.Sub(c.clock.Now()).Round(time.Second) / time.Second)
	c.emit(g.LobbyCode, model.EventRound, model.RoundPayload{
		Round:            g.CurrentRound,
		TotalRounds:      g.TotalRounds,
		Theme:            blank.Theme,
		Criteria:         blank.Criteria,
		Deadline:         g.Deadline,
		RemainingSeconds: remaining,
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	GetGame(ctx context.Context, code model.LobbyCode) (*model.Game, error)
	StartGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) (*model.Game, error)
	SubmitPhoto(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, photoRef string) error
	ConfirmNextRound(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error
	HandleDisconnect(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error
	HandleRejoin(ctx context.Context, code model.LobbyCode, oldID, newID model.PlayerID) (*model.Game, error)
	RemovePlayer(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error
	Abandon(ctx context.Context, code model.LobbyCode) error
}

var _ ControllerInterface = (*Controller)(nil)
