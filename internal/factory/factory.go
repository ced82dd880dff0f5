package factory

import (
	"errors"
	"io"
	"log/slog"

	"snapquest/internal/dependencies/clock"
	"snapquest/internal/dependencies/random"
	"snapquest/internal/gateway"
	"snapquest/internal/gateway/sse"
	"snapquest/internal/generate"
	"snapquest/internal/photo"
	"snapquest/internal/services/game"
	"snapquest/internal/services/identity"
	"snapquest/internal/services/lobby"
	"snapquest/internal/storage"
	"snapquest/internal/storage/memory"
)

// Photo store type constants
const (
	PhotoStoreMemory = "memory"
	PhotoStoreRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage    storage.Storage
	PhotoStore photo.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	IdentityService *identity.Service
	LobbyController *lobby.Controller
	GameController  *game.Controller
	HubManager      *sse.HubManager
	Dispatcher      *gateway.Dispatcher
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// IdentityConfig holds session settings (optional)
	// If zero value, defaults to identity.DefaultConfig()
	IdentityConfig identity.Config
	// GameConfig holds round timing settings (optional)
	GameConfig game.Config
	// PhotoStoreType selects the photo backend ("memory" or "redis")
	// If empty, defaults to "memory"
	PhotoStoreType string
	// RedisConfig holds Redis connection settings (required if
	// PhotoStoreType is "redis")
	RedisConfig *photo.RedisConfig
	// GeminiAPIKey enables the Gemini generators. If empty, the static
	// generators are used instead.
	GeminiAPIKey string
	// GeminiBaseURL overrides the Gemini API endpoint (optional)
	GeminiBaseURL string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Game and lobby state always live in memory: rooms own in-process
	// timers, so the state cannot outlive the process anyway.
	store := memory.New()

	// Photos can outgrow memory, so they optionally go to Redis
	var photos photo.Store
	photoStoreType := cfg.PhotoStoreType
	if photoStoreType == "" {
		photoStoreType = PhotoStoreMemory
	}

	switch photoStoreType {
	case PhotoStoreMemory:
		photos = photo.NewMemoryStore()
	case PhotoStoreRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when PhotoStoreType is redis")
		}
		redisStore, err := photo.NewRedisStore(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		photos = redisStore
	default:
		return nil, errors.New("invalid PhotoStoreType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Content generators: Gemini with an API key, static otherwise
	var (
		story generate.StoryGenerator
		judge generate.Judge
		recap generate.Recapper
	)
	if cfg.GeminiAPIKey != "" {
		geminiCfg := generate.DefaultGeminiConfig()
		geminiCfg.APIKey = cfg.GeminiAPIKey
		if cfg.GeminiBaseURL != "" {
			geminiCfg.BaseURL = cfg.GeminiBaseURL
		}
		client, err := generate.NewGeminiClient(geminiCfg)
		if err != nil {
			return nil, err
		}
		story = generate.NewGeminiStoryGenerator(client, logger)
		judge = generate.NewGeminiJudge(client, photos, logger)
		recap = generate.NewGeminiRecapper(client, logger)
	} else {
		logger.Warn("no Gemini API key configured, using static generators")
		story = generate.NewStaticStoryGenerator(rnd)
		judge = generate.NewStaticJudge(rnd)
		recap = generate.NewStaticRecapper()
	}

	// Use default identity config if not provided
	identityCfg := cfg.IdentityConfig
	if identityCfg.SessionDuration == 0 {
		identityCfg = identity.DefaultConfig()
	}

	// Events flow controllers -> dispatcher -> per-lobby SSE hubs
	hubManager := sse.NewHubManager(logger)
	dispatcher := gateway.NewDispatcher(hubManager, logger)

	identityService := identity.New(clk, identityCfg)
	lobbyController := lobby.NewController(store, clk, rnd, dispatcher, logger)
	gameController := game.NewController(
		store, photos, lobbyController,
		story, judge, recap,
		clk, rnd, dispatcher, logger, cfg.GameConfig,
	)

	return &App{
		Storage:         store,
		PhotoStore:      photos,
		Clock:           clk,
		Random:          rnd,
		IdentityService: identityService,
		LobbyController: lobbyController,
		GameController:  gameController,
		HubManager:      hubManager,
		Dispatcher:      dispatcher,
	}, nil
}
