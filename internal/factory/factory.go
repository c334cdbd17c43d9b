package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/blackjack/internal/dependencies/clock"
	"github.com/mcoot/blackjack/internal/dependencies/random"
	"github.com/mcoot/blackjack/internal/services/bot"
	"github.com/mcoot/blackjack/internal/services/dealer"
	"github.com/mcoot/blackjack/internal/services/deck"
	"github.com/mcoot/blackjack/internal/services/ledger"
	"github.com/mcoot/blackjack/internal/services/round"
	"github.com/mcoot/blackjack/internal/services/scoring"
	"github.com/mcoot/blackjack/internal/storage"
	"github.com/mcoot/blackjack/internal/storage/file"
	"github.com/mcoot/blackjack/internal/storage/memory"
	pgstorage "github.com/mcoot/blackjack/internal/storage/postgres"
	redisstorage "github.com/mcoot/blackjack/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile     = "file"
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DeckService     *deck.Service
	ScoringService  *scoring.Service
	LedgerService   *ledger.Service
	RoundController *round.Controller
	BotService      *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend
	// If empty, defaults to "file"
	StorageType string
	// SavePath is the save file location for the file backend
	// If empty, defaults to file.DefaultPath
	SavePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PostgresDSN is the connection string (required if StorageType is "postgres")
	PostgresDSN string
	// Slot names the save for the shared backends (redis, postgres)
	Slot string
	// Policy overrides the dealer policy (optional)
	Policy *dealer.Policy
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	policy := dealer.DefaultPolicy()
	if cfg.Policy != nil {
		policy = *cfg.Policy
	}

	return newWithDependencies(store, clock.New(), random.New(), policy, logger), nil
}

func newStorage(ctx context.Context, cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeFile:
		path := cfg.SavePath
		if path == "" {
			path = file.DefaultPath
		}
		return file.New(path), nil
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisCfg := *cfg.RedisConfig
		if cfg.Slot != "" {
			redisCfg.Slot = cfg.Slot
		}
		return redisstorage.New(redisCfg)
	case StorageTypePostgres:
		if cfg.PostgresDSN == "" {
			return nil, errors.New("PostgresDSN required when StorageType is postgres")
		}
		return pgstorage.New(ctx, cfg.PostgresDSN, cfg.Slot)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be one of file, memory, redis, postgres", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, policy dealer.Policy, logger *slog.Logger) *App {
	deckService := deck.New(rnd, logger)
	scoringService := scoring.New()
	ledgerService := ledger.New(store, logger)
	roundController := round.NewController(deckService, scoringService, ledgerService, policy, clk, logger)
	botService := bot.NewService(roundController, map[string]bot.Strategy{
		bot.StrategyThreshold: bot.NewThresholdStrategy(),
		bot.StrategyRandom:    bot.NewRandomStrategy(rnd),
	}, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		DeckService:     deckService,
		ScoringService:  scoringService,
		LedgerService:   ledgerService,
		RoundController: roundController,
		BotService:      botService,
	}
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
