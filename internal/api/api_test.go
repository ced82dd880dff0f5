package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapquest/internal/api"
	"snapquest/internal/api/response"
	"snapquest/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use the production factory with
	// real random/clock and the static generators
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		IdentityService: app.IdentityService,
		LobbyController: app.LobbyController,
		GameController:  app.GameController,
		PhotoStore:      app.PhotoStore,
		Hubs:            app.HubManager,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) rawRequest(method, path string, body []byte, contentType, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createGuest registers a guest and returns their auth details
func (ts *testServer) createGuest(t *testing.T, name string) response.AuthResponse {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/players/guest", map[string]string{"display_name": name}, "")
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

// createLobby creates a lobby hosted by the given player
func (ts *testServer) createLobby(t *testing.T, token string) response.Lobby {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/lobbies", nil, token)
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var resp response.Lobby
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

// uploadPhoto uploads a fake photo and returns its ref
func (ts *testServer) uploadPhoto(t *testing.T, token string) string {
	t.Helper()

	rr := ts.rawRequest(http.MethodPost, "/api/v1/photos", []byte("fake image bytes"), "image/jpeg", token)
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var resp response.UploadPhotoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.PhotoRef
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGuest(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.createGuest(t, "Alice")
	assert.Equal(t, "Alice", resp.DisplayName)
	assert.NotEmpty(t, resp.PlayerID)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestCreateGuestRejectsEmptyName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/guest", map[string]string{"display_name": "   "}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLobbyRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/lobbies", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/lobbies", nil, "sess_bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateAndGetLobby(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")

	lobby := ts.createLobby(t, alice.SessionToken)
	assert.Len(t, lobby.Code, 4)
	assert.Equal(t, "waiting", lobby.State)
	assert.Equal(t, alice.PlayerID, lobby.HostID)
	require.Len(t, lobby.Players, 1)
	assert.Equal(t, "Alice", lobby.Players[0].DisplayName)
	assert.True(t, lobby.Players[0].IsHost)

	rr := ts.request(http.MethodGet, "/api/v1/lobbies/"+lobby.Code, nil, alice.SessionToken)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetUnknownLobby(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/lobbies/0000", nil, alice.SessionToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestJoinLobby(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")
	bob := ts.createGuest(t, "Bob")

	lobby := ts.createLobby(t, alice.SessionToken)

	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobby.Code+"/join", nil, bob.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())

	var joined response.Lobby
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &joined))
	require.Len(t, joined.Players, 2)
	assert.Equal(t, "Bob", joined.Players[1].DisplayName)
}

func TestReadyAndSettings(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")
	bob := ts.createGuest(t, "Bob")

	lobby := ts.createLobby(t, alice.SessionToken)
	code := lobby.Code
	ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/join", nil, bob.SessionToken)

	// Ready toggles
	rr := ts.request(http.MethodPut, "/api/v1/lobbies/"+code+"/ready", map[string]bool{"ready": true}, bob.SessionToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Host updates settings
	rr = ts.request(http.MethodPatch, "/api/v1/lobbies/"+code+"/settings",
		map[string]int{"rounds": 5, "round_time_seconds": 30}, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())

	var settings response.GameSettings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &settings))
	assert.Equal(t, 5, settings.Rounds)
	assert.Equal(t, 30, settings.RoundTimeSeconds)

	// Settings are clamped to valid bounds
	rr = ts.request(http.MethodPatch, "/api/v1/lobbies/"+code+"/settings",
		map[string]int{"rounds": 99, "round_time_seconds": 1}, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &settings))
	assert.Equal(t, 6, settings.Rounds)
	assert.Equal(t, 15, settings.RoundTimeSeconds)

	// Non-host cannot update settings
	rr = ts.request(http.MethodPatch, "/api/v1/lobbies/"+code+"/settings",
		map[string]int{"rounds": 4, "round_time_seconds": 60}, bob.SessionToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestPhotoUploadAndFetch(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")

	ref := ts.uploadPhoto(t, alice.SessionToken)
	assert.NotEmpty(t, ref)

	rr := ts.rawRequest(http.MethodGet, "/api/v1/photos/"+ref, nil, "", alice.SessionToken)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
	assert.Equal(t, "fake image bytes", rr.Body.String())
}

func TestPhotoUploadRejectsNonImage(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")

	rr := ts.rawRequest(http.MethodPost, "/api/v1/photos", []byte(`{"not": "an image"}`), "application/json", alice.SessionToken)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFetchUnknownPhoto(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")

	rr := ts.rawRequest(http.MethodGet, "/api/v1/photos/ph_nope", nil, "", alice.SessionToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// startGame stands up a two-player lobby and starts the game, returning
// the lobby code and both auth responses
func startGame(t *testing.T, ts *testServer) (string, response.AuthResponse, response.AuthResponse, response.GameState) {
	t.Helper()

	alice := ts.createGuest(t, "Alice")
	bob := ts.createGuest(t, "Bob")

	lobby := ts.createLobby(t, alice.SessionToken)
	code := lobby.Code

	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/join", nil, bob.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPatch, "/api/v1/lobbies/"+code+"/settings",
		map[string]int{"rounds": 3, "round_time_seconds": 60}, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	for _, token := range []string{alice.SessionToken, bob.SessionToken} {
		rr = ts.request(http.MethodPut, "/api/v1/lobbies/"+code+"/ready", map[string]bool{"ready": true}, token)
		require.Equal(t, http.StatusNoContent, rr.Code)
	}

	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/start", nil, alice.SessionToken)
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var game response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	return code, alice, bob, game
}

func TestStartGame(t *testing.T) {
	ts := newTestServer(t)

	code, _, _, game := startGame(t, ts)
	assert.Equal(t, code, game.LobbyCode)
	assert.Equal(t, "round", game.Status)
	assert.Equal(t, 1, game.CurrentRound)
	assert.Equal(t, 3, game.TotalRounds)
	require.NotNil(t, game.StoryBlank)
	assert.NotEmpty(t, game.StoryBlank.Theme)
	assert.NotEmpty(t, game.StoryBlank.Criteria)
}

func TestStartGameRequiresHost(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")
	bob := ts.createGuest(t, "Bob")

	lobby := ts.createLobby(t, alice.SessionToken)
	code := lobby.Code
	ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/join", nil, bob.SessionToken)
	for _, token := range []string{alice.SessionToken, bob.SessionToken} {
		ts.request(http.MethodPut, "/api/v1/lobbies/"+code+"/ready", map[string]bool{"ready": true}, token)
	}

	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/start", nil, bob.SessionToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestStartGameRequiresEveryoneReady(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")
	bob := ts.createGuest(t, "Bob")

	lobby := ts.createLobby(t, alice.SessionToken)
	code := lobby.Code
	ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/join", nil, bob.SessionToken)
	ts.request(http.MethodPut, "/api/v1/lobbies/"+code+"/ready", map[string]bool{"ready": true}, alice.SessionToken)

	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/start", nil, alice.SessionToken)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestSubmitPhotoFlow(t *testing.T) {
	ts := newTestServer(t)
	code, alice, bob, _ := startGame(t, ts)

	// Alice submits
	ref := ts.uploadPhoto(t, alice.SessionToken)
	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/submit",
		map[string]string{"photo_ref": ref}, alice.SessionToken)
	assert.Equal(t, http.StatusNoContent, rr.Code, "body: %s", rr.Body.String())

	// Double submission is rejected
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/submit",
		map[string]string{"photo_ref": ref}, alice.SessionToken)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Bob's submission closes the round and judging runs before the
	// request returns
	ref = ts.uploadPhoto(t, bob.SessionToken)
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/submit",
		map[string]string{"photo_ref": ref}, bob.SessionToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/lobbies/"+code+"/game", nil, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var game response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.Equal(t, "results", game.Status)
	require.Len(t, game.Results, 1)
	assert.NotEmpty(t, game.Results[0].WinnerName)
	assert.NotEmpty(t, game.Results[0].OneLiner)
}

func TestFullGameOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	code, alice, bob, game := startGame(t, ts)

	for round := 1; round <= game.TotalRounds; round++ {
		for _, player := range []response.AuthResponse{alice, bob} {
			ref := ts.uploadPhoto(t, player.SessionToken)
			rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/submit",
				map[string]string{"photo_ref": ref}, player.SessionToken)
			require.Equal(t, http.StatusNoContent, rr.Code,
				"round %d submit for %s: %s", round, player.DisplayName, rr.Body.String())
		}

		if round < game.TotalRounds {
			for _, player := range []response.AuthResponse{alice, bob} {
				rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+code+"/next-round", nil, player.SessionToken)
				require.Equal(t, http.StatusNoContent, rr.Code, "body: %s", rr.Body.String())
			}
		}
	}

	// The game is torn down and the lobby is back to waiting
	rr := ts.request(http.MethodGet, "/api/v1/lobbies/"+code+"/game", nil, alice.SessionToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/lobbies/"+code, nil, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)
	var lobby response.Lobby
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &lobby))
	assert.Equal(t, "waiting", lobby.State)
	for _, p := range lobby.Players {
		assert.False(t, p.IsReady)
	}
}

func TestRejoinOutsideGameFails(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")

	lobby := ts.createLobby(t, alice.SessionToken)

	ghost := ts.createGuest(t, "Alice")
	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobby.Code+"/rejoin",
		map[string]string{"display_name": "Alice"}, ghost.SessionToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSubmitWithoutGame(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")

	lobby := ts.createLobby(t, alice.SessionToken)

	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobby.Code+"/submit",
		map[string]string{"photo_ref": "ph_x"}, alice.SessionToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestJoinFullLobby(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createGuest(t, "Alice")
	lobby := ts.createLobby(t, alice.SessionToken)

	for i := 0; i < 7; i++ {
		guest := ts.createGuest(t, fmt.Sprintf("Guest%d", i))
		rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobby.Code+"/join", nil, guest.SessionToken)
		require.Equal(t, http.StatusOK, rr.Code, "join %d: %s", i, rr.Body.String())
	}

	late := ts.createGuest(t, "Late")
	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobby.Code+"/join", nil, late.SessionToken)
	assert.Equal(t, http.StatusConflict, rr.Code)
}
