package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"snapquest/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) makeLobby(code model.LobbyCode) *model.Lobby {
	return &model.Lobby{
		Code:       code,
		Players:    map[model.PlayerID]*model.Player{},
		State:      model.LobbyStateWaiting,
		MaxPlayers: model.DefaultMaxPlayers,
		Settings:   model.DefaultGameSettings(),
	}
}

func (s *StorageSuite) TestSaveAndGetLobby() {
	lobby := s.makeLobby("1234")
	lobby.Players["p1"] = &model.Player{ID: "p1", DisplayName: "Alice", IsHost: true}
	lobby.Order = []model.PlayerID{"p1"}
	lobby.HostID = "p1"

	s.Require().NoError(s.storage.SaveLobby(s.ctx, lobby))

	got, err := s.storage.GetLobby(s.ctx, "1234")
	s.Require().NoError(err)
	s.Equal(model.LobbyCode("1234"), got.Code)
	s.Equal("Alice", got.Players["p1"].DisplayName)
}

func (s *StorageSuite) TestGetUnknownLobby() {
	_, err := s.storage.GetLobby(s.ctx, "0000")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

func (s *StorageSuite) TestLobbyExists() {
	exists, err := s.storage.LobbyExists(s.ctx, "1234")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveLobby(s.ctx, s.makeLobby("1234")))

	exists, err = s.storage.LobbyExists(s.ctx, "1234")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteLobby() {
	s.Require().NoError(s.storage.SaveLobby(s.ctx, s.makeLobby("1234")))
	s.Require().NoError(s.storage.DeleteLobby(s.ctx, "1234"))

	_, err := s.storage.GetLobby(s.ctx, "1234")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

func (s *StorageSuite) TestPlayerLobbyIndex() {
	s.Require().NoError(s.storage.SetPlayerLobby(s.ctx, "p1", "1234"))

	code, err := s.storage.GetPlayerLobby(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(model.LobbyCode("1234"), code)

	s.Require().NoError(s.storage.DeletePlayerLobby(s.ctx, "p1"))

	_, err = s.storage.GetPlayerLobby(s.ctx, "p1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		LobbyCode: "1234",
		Players: map[model.PlayerID]*model.PlayerGameState{
			"p1": {ID: "p1", Name: "Alice"},
		},
		CurrentRound: 1,
		TotalRounds:  4,
		Status:       model.GameStatusRound,
	}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	got, err := s.storage.GetGame(s.ctx, "1234")
	s.Require().NoError(err)
	s.Equal(1, got.CurrentRound)
	s.Equal("Alice", got.Players["p1"].Name)
}

func (s *StorageSuite) TestGetUnknownGame() {
	_, err := s.storage.GetGame(s.ctx, "1234")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{LobbyCode: "1234"}))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, "1234"))

	_, err := s.storage.GetGame(s.ctx, "1234")
	s.ErrorIs(err, model.ErrGameNotFound)
}
