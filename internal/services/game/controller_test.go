package game

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"snapquest/internal/dependencies/mocks"
	"snapquest/internal/generate"
	"snapquest/internal/model"
	"snapquest/internal/photo"
	"snapquest/internal/services/lobby"
	"snapquest/internal/storage/memory"
	"snapquest/internal/testutil"
)

type stubStory struct {
	err   error
	fixed int // when > 0, ignore the requested count
}

func (s *stubStory) GenerateStory(_ context.Context, blanks int) (*model.Story, error) {
	if s.err != nil {
		return nil, s.err
	}
	n := blanks
	if s.fixed > 0 {
		n = s.fixed
	}
	story := &model.Story{Template: "Gerald found a {0}."}
	for i := 0; i < n; i++ {
		story.Blanks = append(story.Blanks, model.StoryBlank{
			Index:    i,
			Theme:    fmt.Sprintf("theme %d", i),
			Criteria: "The most testable",
		})
	}
	return story, nil
}

type stubJudge struct {
	verdict *generate.Verdict
	err     error
	calls   int
	lastIn  generate.JudgeInput
}

func (s *stubJudge) JudgeRound(_ context.Context, in generate.JudgeInput) (*generate.Verdict, error) {
	s.calls++
	s.lastIn = in
	if s.err != nil {
		return nil, s.err
	}
	if s.verdict != nil {
		return s.verdict, nil
	}
	// Default: first submission wins
	return &generate.Verdict{
		WinnerID:   in.Submissions[0].PlayerID,
		ObjectName: "Wet Shoe",
		OneLiner:   "Technically it holds water.",
	}, nil
}

type stubRecap struct {
	result *generate.RecapResult
	err    error
	lastIn generate.RecapInput
}

func (s *stubRecap) GenerateRecap(_ context.Context, in generate.RecapInput) (*generate.RecapResult, error) {
	s.lastIn = in
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &generate.RecapResult{
		Segments:   []model.StorySegment{{Index: 0, Lead: "Gerald searched and found..."}},
		FinalStory: "Gerald found a Wet Shoe.",
	}, nil
}

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	photos     *photo.MemoryStore
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	recorder   *testutil.EventRecorder
	story      *stubStory
	judge      *stubJudge
	recap      *stubRecap
	lobbies    *lobby.Controller
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.photos = photo.NewMemoryStore()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.recorder = testutil.NewEventRecorder()
	s.story = &stubStory{}
	s.judge = &stubJudge{}
	s.recap = &stubRecap{}
	logger := testutil.NopLogger()
	s.lobbies = lobby.NewController(s.storage, s.clock, s.random, s.recorder, logger)
	s.controller = NewController(
		s.storage, s.photos, s.lobbies,
		s.story, s.judge, s.recap,
		s.clock, s.random, s.recorder, logger,
		DefaultConfig(),
	)
	s.ctx = context.Background()
}

// readyLobby creates a lobby with n ready players p1..pn (p1 hosting)
func (s *ControllerSuite) readyLobby(n int) model.LobbyCode {
	l, err := s.lobbies.CreateLobby(s.ctx, "p1", "Alice")
	s.Require().NoError(err)
	names := []string{"", "Alice", "Bob", "Cleo", "Dina"}
	for i := 2; i <= n; i++ {
		_, err := s.lobbies.JoinLobby(s.ctx, l.Code, model.PlayerID(fmt.Sprintf("p%d", i)), names[i])
		s.Require().NoError(err)
	}
	for i := 1; i <= n; i++ {
		s.Require().NoError(s.lobbies.SetReady(s.ctx, l.Code, model.PlayerID(fmt.Sprintf("p%d", i)), true))
	}
	return l.Code
}

func (s *ControllerSuite) startGame(n int) (model.LobbyCode, *model.Game) {
	code := s.readyLobby(n)
	g, err := s.controller.StartGame(s.ctx, code, "p1")
	s.Require().NoError(err)
	s.recorder.Reset()
	return code, g
}

func (s *ControllerSuite) submitPhoto(code model.LobbyCode, playerID model.PlayerID) string {
	ref, err := s.photos.Put(s.ctx, photo.Photo{Data: []byte("img"), ContentType: "image/jpeg"})
	s.Require().NoError(err)
	s.Require().NoError(s.controller.SubmitPhoto(s.ctx, code, playerID, ref))
	return ref
}

// StartGame tests

func (s *ControllerSuite) TestStartGameSucceeds() {
	code := s.readyLobby(2)

	g, err := s.controller.StartGame(s.ctx, code, "p1")
	s.Require().NoError(err)

	s.Equal(model.GameStatusRound, g.Status)
	s.Equal(1, g.CurrentRound)
	s.Equal(model.DefaultGameSettings().Rounds, g.TotalRounds)
	s.Equal(s.clock.Now().Add(60*time.Second), g.Deadline)

	l, err := s.lobbies.GetLobby(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(model.LobbyStateInGame, l.State)

	start := s.recorder.LastOfType(model.EventGameStart)
	s.Require().NotNil(start)
	s.Equal(g.TotalRounds, start.Payload.(model.GameStartPayload).TotalRounds)

	round := s.recorder.LastOfType(model.EventRound)
	s.Require().NotNil(round)
	s.Equal(60, round.Payload.(model.RoundPayload).RemainingSeconds)
}

func (s *ControllerSuite) TestStartGameRoundCountFollowsStory() {
	s.story.fixed = 3
	code := s.readyLobby(2)

	g, err := s.controller.StartGame(s.ctx, code, "p1")
	s.Require().NoError(err)
	s.Equal(3, g.TotalRounds)
}

func (s *ControllerSuite) TestStartGameHostOnly() {
	code := s.readyLobby(2)

	_, err := s.controller.StartGame(s.ctx, code, "p2")
	s.ErrorIs(err, model.ErrNotHost)
}

func (s *ControllerSuite) TestStartGameRequiresAllReady() {
	l, err := s.lobbies.CreateLobby(s.ctx, "p1", "Alice")
	s.Require().NoError(err)
	_, err = s.lobbies.JoinLobby(s.ctx, l.Code, "p2", "Bob")
	s.Require().NoError(err)
	s.Require().NoError(s.lobbies.SetReady(s.ctx, l.Code, "p1", true))

	_, err = s.controller.StartGame(s.ctx, l.Code, "p1")
	s.ErrorIs(err, model.ErrNotAllReady)
}

func (s *ControllerSuite) TestStartGameRequiresTwoPlayers() {
	l, err := s.lobbies.CreateLobby(s.ctx, "p1", "Alice")
	s.Require().NoError(err)
	s.Require().NoError(s.lobbies.SetReady(s.ctx, l.Code, "p1", true))

	_, err = s.controller.StartGame(s.ctx, l.Code, "p1")
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *ControllerSuite) TestStartGameStoryFailureRevertsLobby() {
	s.story.err = fmt.Errorf("model unavailable")
	code := s.readyLobby(2)

	_, err := s.controller.StartGame(s.ctx, code, "p1")
	s.Error(err)

	l, err := s.lobbies.GetLobby(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(model.LobbyStateWaiting, l.State)
	_, err = s.storage.GetGame(s.ctx, code)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestStartGameRejectedWhileRunning() {
	code, _ := s.startGame(2)

	_, err := s.controller.StartGame(s.ctx, code, "p1")
	s.ErrorIs(err, model.ErrGameInProgress)
}

func (s *ControllerSuite) TestGetGameReturnsIndependentCopy() {
	code, _ := s.startGame(2)

	got, err := s.controller.GetGame(s.ctx, code)
	s.Require().NoError(err)
	got.Players["p1"].HasSubmitted = true
	got.Status = model.GameStatusComplete
	got.Results = append(got.Results, model.RoundResult{WinnerID: "p1"})

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.False(g.Players["p1"].HasSubmitted)
	s.Equal(model.GameStatusRound, g.Status)
	s.Empty(g.Results)
}

// SubmitPhoto tests

func (s *ControllerSuite) TestSubmitPhotoRecordsSubmission() {
	code, _ := s.startGame(3)

	ref := s.submitPhoto(code, "p2")

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.True(g.Players["p2"].HasSubmitted)
	s.Equal(ref, g.Players["p2"].PhotoRef)
	s.Equal(model.GameStatusRound, g.Status)

	submitted := s.recorder.LastOfType(model.EventPlayerSubmitted)
	s.Require().NotNil(submitted)
	s.Equal("Bob", submitted.Payload.(model.PlayerSubmittedPayload).Name)
}

func (s *ControllerSuite) TestSubmitPhotoRejectsDoubleSubmit() {
	code, _ := s.startGame(3)
	s.submitPhoto(code, "p2")

	err := s.controller.SubmitPhoto(s.ctx, code, "p2", "ph_other")
	s.ErrorIs(err, model.ErrAlreadySubmitted)
}

func (s *ControllerSuite) TestSubmitPhotoRejectsUnknownPlayer() {
	code, _ := s.startGame(2)

	err := s.controller.SubmitPhoto(s.ctx, code, "ghost", "ph_x")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestSubmitPhotoAcceptedWithinGrace() {
	code, _ := s.startGame(3)
	s.clock.Advance(62 * time.Second)

	err := s.controller.SubmitPhoto(s.ctx, code, "p2", "ph_x")
	s.NoError(err)
}

func (s *ControllerSuite) TestSubmitPhotoRejectedPastGrace() {
	code, _ := s.startGame(3)
	s.clock.Advance(64 * time.Second)

	err := s.controller.SubmitPhoto(s.ctx, code, "p2", "ph_x")
	s.ErrorIs(err, model.ErrDeadlinePassed)
}

// Round completion tests

func (s *ControllerSuite) TestAllSubmittedEndsRound() {
	code, _ := s.startGame(2)
	s.submitPhoto(code, "p1")
	s.submitPhoto(code, "p2")

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(model.GameStatusResults, g.Status)
	s.Equal(1, s.judge.calls)

	s.NotNil(s.recorder.LastOfType(model.EventJudging))

	result := s.recorder.LastOfType(model.EventRoundResult)
	s.Require().NotNil(result)
	payload := result.Payload.(model.RoundResultPayload)
	s.Equal(1, payload.Round)
	s.NotEmpty(payload.WinnerID)
	s.Equal("Wet Shoe", payload.ObjectName)

	status := s.recorder.LastOfType(model.EventNextRoundStatus)
	s.Require().NotNil(status)
	s.Equal(0, status.Payload.(model.NextRoundStatusPayload).ReadyCount)
	s.Equal(2, status.Payload.(model.NextRoundStatusPayload).TotalPlayers)
}

func (s *ControllerSuite) TestWinnerGetsExactlyOneWin() {
	code, _ := s.startGame(2)
	s.judge.verdict = &generate.Verdict{WinnerID: "p2", ObjectName: "Cat", OneLiner: "Apex predator."}
	s.submitPhoto(code, "p1")
	s.submitPhoto(code, "p2")

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(1, g.Players["p2"].WinCount)
	s.Equal(0, g.Players["p1"].WinCount)
	s.Require().Len(g.Results, 1)
	s.Equal(model.PlayerID("p2"), g.Results[0].WinnerID)
	s.Equal(0, g.Results[0].BlankIndex)
}

func (s *ControllerSuite) TestJudgeFailureYieldsNoWinner() {
	code, _ := s.startGame(2)
	s.judge.err = fmt.Errorf("vision model down")
	s.submitPhoto(code, "p1")
	s.submitPhoto(code, "p2")

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(model.GameStatusResults, g.Status)
	s.Empty(g.Results)

	result := s.recorder.LastOfType(model.EventRoundResult)
	s.Require().NotNil(result)
	s.Empty(result.Payload.(model.RoundResultPayload).WinnerID)

	notice := s.recorder.LastOfType(model.EventError)
	s.Require().NotNil(notice)
	s.NotEmpty(notice.Payload.(model.ErrorPayload).Message)
}

func (s *ControllerSuite) TestUnknownWinnerYieldsNoWinner() {
	code, _ := s.startGame(2)
	s.judge.verdict = &generate.Verdict{WinnerID: "ghost", ObjectName: "X", OneLiner: "Y"}
	s.submitPhoto(code, "p1")
	s.submitPhoto(code, "p2")

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Empty(g.Results)
}

func (s *ControllerSuite) TestTimerExpiryEndsRoundWithoutSubmissions() {
	code, _ := s.startGame(2)

	s.clock.Advance(64 * time.Second)
	s.clock.FireTickers()

	s.Eventually(func() bool {
		g, err := s.storage.GetGame(s.ctx, code)
		return err == nil && g.Status == model.GameStatusResults
	}, time.Second, 5*time.Millisecond)

	s.Equal(0, s.judge.calls)
	result := s.recorder.LastOfType(model.EventRoundResult)
	s.Require().NotNil(result)
	s.Empty(result.Payload.(model.RoundResultPayload).WinnerID)
}

func (s *ControllerSuite) TestTimerEmitsTicks() {
	code, _ := s.startGame(2)

	s.clock.Advance(time.Second)
	s.clock.FireTickers()

	s.Eventually(func() bool {
		return s.recorder.LastOfType(model.EventTick) != nil
	}, time.Second, 5*time.Millisecond)
	_ = code

	tick := s.recorder.LastOfType(model.EventTick)
	s.Equal(59, tick.Payload.(model.TickPayload).RemainingSeconds)
}

func (s *ControllerSuite) TestRoundEndsExactlyOnce() {
	code, _ := s.startGame(2)
	s.submitPhoto(code, "p1")
	s.submitPhoto(code, "p2")

	// A late timer expiry must not re-judge the already ended round
	s.clock.Advance(64 * time.Second)
	s.clock.FireTickers()

	s.Never(func() bool {
		return len(s.recorder.EventsOfType(model.EventRoundResult)) > 1
	}, 50*time.Millisecond, 5*time.Millisecond)
	s.Equal(1, s.judge.calls)
}

func (s *ControllerSuite) TestForfeitedSubmissionsAreNotJudged() {
	code, _ := s.startGame(2)
	s.submitPhoto(code, "p1")
	s.Require().NoError(s.controller.HandleDisconnect(s.ctx, code, "p2"))

	s.Equal(1, s.judge.calls)
	s.Require().Len(s.judge.lastIn.Submissions, 1)
	s.Equal(model.PlayerID("p1"), s.judge.lastIn.Submissions[0].PlayerID)
}

// ConfirmNextRound and advancement tests

func (s *ControllerSuite) finishRound(code model.LobbyCode, players ...model.PlayerID) {
	for _, p := range players {
		s.submitPhoto(code, p)
	}
}

func (s *ControllerSuite) TestConfirmNextRoundReportsProgress() {
	code, _ := s.startGame(3)
	s.finishRound(code, "p1", "p2", "p3")
	s.recorder.Reset()

	s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p1"))

	status := s.recorder.LastOfType(model.EventNextRoundStatus)
	s.Require().NotNil(status)
	s.Equal(1, status.Payload.(model.NextRoundStatusPayload).ReadyCount)
	s.Equal(3, status.Payload.(model.NextRoundStatusPayload).TotalPlayers)

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(model.GameStatusResults, g.Status)
}

func (s *ControllerSuite) TestConfirmNextRoundRejectedMidRound() {
	code, _ := s.startGame(2)

	err := s.controller.ConfirmNextRound(s.ctx, code, "p1")
	s.ErrorIs(err, model.ErrRoundNotActive)
}

func (s *ControllerSuite) TestAllConfirmedAdvancesRound() {
	code, _ := s.startGame(2)
	s.finishRound(code, "p1", "p2")

	s.clock.Advance(10 * time.Second)
	s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p1"))
	s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p2"))

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(2, g.CurrentRound)
	s.Equal(model.GameStatusRound, g.Status)
	s.Equal(s.clock.Now().Add(60*time.Second), g.Deadline)
	s.False(g.Players["p1"].HasSubmitted)
	s.Empty(g.Players["p1"].PhotoRef)
	s.Empty(g.NextReady)

	round := s.recorder.LastOfType(model.EventRound)
	s.Require().NotNil(round)
	s.Equal(2, round.Payload.(model.RoundPayload).Round)
	s.Equal("theme 1", round.Payload.(model.RoundPayload).Theme)
}

func (s *ControllerSuite) TestRoundsOnlyIncrease() {
	code, _ := s.startGame(2)
	for round := 1; round < 4; round++ {
		s.finishRound(code, "p1", "p2")
		s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p1"))
		s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p2"))

		g, err := s.storage.GetGame(s.ctx, code)
		s.Require().NoError(err)
		s.Equal(round+1, g.CurrentRound)
	}
}

// Completion tests

// playThrough runs all rounds to completion with p1 winning every round
func (s *ControllerSuite) playThrough(code model.LobbyCode, players ...model.PlayerID) {
	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	for round := 1; round <= g.TotalRounds; round++ {
		s.finishRound(code, players...)
		for _, p := range players {
			s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, p))
		}
	}
}

func (s *ControllerSuite) TestFinalRoundCompletesGame() {
	code, _ := s.startGame(2)
	s.judge.verdict = &generate.Verdict{WinnerID: "p1", ObjectName: "Cat", OneLiner: "Meow."}

	s.playThrough(code, "p1", "p2")

	complete := s.recorder.LastOfType(model.EventGameComplete)
	s.Require().NotNil(complete)
	payload := complete.Payload.(model.GameCompletePayload)
	s.Len(payload.Results, model.DefaultGameSettings().Rounds)
	s.NotEmpty(payload.FinalStory)

	awards := s.recorder.LastOfType(model.EventFinalAwards)
	s.Require().NotNil(awards)
	final := awards.Payload.(model.FinalAwardsPayload).Awards
	s.Require().Len(final.JudgesFavorite, 1)
	s.Equal("Alice", final.JudgesFavorite[0].Name)
	s.Require().Len(final.MostClueless, 1)
	s.Equal("Bob", final.MostClueless[0].Name)

	// Game is gone and the lobby is back to waiting
	_, err := s.storage.GetGame(s.ctx, code)
	s.ErrorIs(err, model.ErrGameNotFound)
	l, err := s.lobbies.GetLobby(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(model.LobbyStateWaiting, l.State)
	s.False(l.Players["p1"].IsReady)
}

func (s *ControllerSuite) TestCompletionReleasesPhotos() {
	code, _ := s.startGame(2)
	ref := s.submitPhoto(code, "p1")
	s.submitPhoto(code, "p2")
	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	for round := 2; round <= g.TotalRounds; round++ {
		s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p1"))
		s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p2"))
		s.finishRound(code, "p1", "p2")
	}
	s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p1"))
	s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p2"))

	_, err = s.photos.Get(s.ctx, ref)
	s.ErrorIs(err, model.ErrPhotoNotFound)
}

func (s *ControllerSuite) TestRecapFailureFallsBackToTemplate() {
	code, _ := s.startGame(2)
	s.recap.err = fmt.Errorf("narrator speechless")

	s.playThrough(code, "p1", "p2")

	complete := s.recorder.LastOfType(model.EventGameComplete)
	s.Require().NotNil(complete)
	payload := complete.Payload.(model.GameCompletePayload)
	s.Equal("Gerald found a {0}.", payload.FinalStory)
	s.Empty(payload.Segments)
}

func (s *ControllerSuite) TestRecapFeaturesCluelessPlayer() {
	code, _ := s.startGame(2)
	s.judge.verdict = &generate.Verdict{WinnerID: "p1", ObjectName: "Cat", OneLiner: "Meow."}
	s.random.QueueIntn(0)

	s.playThrough(code, "p1", "p2")

	s.Equal("Bob", s.recap.lastIn.FeaturedName)
}

func (s *ControllerSuite) TestAllTiedAwardsNothing() {
	code, _ := s.startGame(2)
	s.judge.err = fmt.Errorf("no winners today")

	s.playThrough(code, "p1", "p2")

	awards := s.recorder.LastOfType(model.EventFinalAwards)
	s.Require().NotNil(awards)
	final := awards.Payload.(model.FinalAwardsPayload).Awards
	s.Empty(final.JudgesFavorite)
	s.Empty(final.MostClueless)
}

// Disconnect, rejoin, and removal tests

func (s *ControllerSuite) TestDisconnectOfHoldoutEndsRound() {
	code, _ := s.startGame(2)
	s.submitPhoto(code, "p1")

	s.Require().NoError(s.controller.HandleDisconnect(s.ctx, code, "p2"))

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(model.GameStatusResults, g.Status)
}

func (s *ControllerSuite) TestDisconnectKeepsSeatAndScore() {
	code, _ := s.startGame(2)
	s.judge.verdict = &generate.Verdict{WinnerID: "p2", ObjectName: "Cat", OneLiner: "Meow."}
	s.finishRound(code, "p1", "p2")

	s.Require().NoError(s.controller.HandleDisconnect(s.ctx, code, "p2"))

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Require().NotNil(g.Players["p2"])
	s.Equal(1, g.Players["p2"].WinCount)
}

func (s *ControllerSuite) TestRejoinSplicesIdentity() {
	code, _ := s.startGame(2)
	s.judge.verdict = &generate.Verdict{WinnerID: "p2", ObjectName: "Cat", OneLiner: "Meow."}
	s.finishRound(code, "p1", "p2")
	s.Require().NoError(s.controller.ConfirmNextRound(s.ctx, code, "p2"))

	g, err := s.controller.HandleRejoin(s.ctx, code, "p2", "p2new")
	s.Require().NoError(err)

	s.Nil(g.Players["p2"])
	s.Require().NotNil(g.Players["p2new"])
	s.Equal(1, g.Players["p2new"].WinCount)
	s.Contains(g.NextReady, model.PlayerID("p2new"))
	s.NotContains(g.NextReady, model.PlayerID("p2"))
}

func (s *ControllerSuite) TestRejoinUnknownSeatFails() {
	code, _ := s.startGame(2)

	_, err := s.controller.HandleRejoin(s.ctx, code, "ghost", "gnew")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestRemovePlayerUnblocksRound() {
	code, _ := s.startGame(3)
	s.submitPhoto(code, "p1")
	s.submitPhoto(code, "p2")

	s.Require().NoError(s.controller.RemovePlayer(s.ctx, code, "p3"))

	g, err := s.storage.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(model.GameStatusResults, g.Status)
	s.Nil(g.Players["p3"])
}

func (s *ControllerSuite) TestRemoveLastPlayerAbandonsGame() {
	code, _ := s.startGame(2)

	s.Require().NoError(s.controller.RemovePlayer(s.ctx, code, "p1"))
	s.Require().NoError(s.controller.RemovePlayer(s.ctx, code, "p2"))

	_, err := s.storage.GetGame(s.ctx, code)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestAbandonDeletesGame() {
	code, _ := s.startGame(2)

	s.Require().NoError(s.controller.Abandon(s.ctx, code))

	_, err := s.storage.GetGame(s.ctx, code)
	s.ErrorIs(err, model.ErrGameNotFound)
}
