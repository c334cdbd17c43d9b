package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/bot"
	"github.com/mcoot/blackjack/internal/storage/file"
	"github.com/mcoot/blackjack/internal/storage/memory"
	redisstorage "github.com/mcoot/blackjack/internal/storage/redis"
)

type FactorySuite struct {
	suite.Suite
	ctx context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FactorySuite) TestDefaultsToFileStorage() {
	path := filepath.Join(s.T().TempDir(), "ledger.blackjack")

	app, err := New(s.ctx, Config{SavePath: path})
	s.Require().NoError(err)
	defer app.Close()

	fs, ok := app.Storage.(*file.Storage)
	s.Require().True(ok)
	s.Equal(path, fs.Path())
}

func (s *FactorySuite) TestMemoryStorage() {
	app, err := New(s.ctx, Config{StorageType: StorageTypeMemory})
	s.Require().NoError(err)
	defer app.Close()

	s.IsType(&memory.Storage{}, app.Storage)
}

func (s *FactorySuite) TestRedisStorage() {
	mr := miniredis.RunT(s.T())
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()

	app, err := New(s.ctx, Config{StorageType: StorageTypeRedis, RedisConfig: &cfg, Slot: "ann"})
	s.Require().NoError(err)
	defer app.Close()

	_, err = app.LedgerService.NewGame(s.ctx, "Ann")
	s.Require().NoError(err)
	s.True(mr.Exists("blackjack:save:ann"))
}

func (s *FactorySuite) TestRedisRequiresConfig() {
	_, err := New(s.ctx, Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *FactorySuite) TestPostgresRequiresDSN() {
	_, err := New(s.ctx, Config{StorageType: StorageTypePostgres})
	s.Error(err)
}

func (s *FactorySuite) TestUnknownStorageType() {
	_, err := New(s.ctx, Config{StorageType: "floppy"})
	s.ErrorContains(err, "invalid StorageType")
}

func (s *FactorySuite) TestTestAppPlaysAndPersists() {
	app := NewTestApp()

	player, err := app.LedgerService.NewGame(s.ctx, "Ann")
	s.Require().NoError(err)

	summary, err := app.BotService.Autoplay(s.ctx, player, bot.StrategyThreshold, 2, nil)
	s.Require().NoError(err)
	s.Equal(2, summary.Rounds)

	saved, err := app.MemoryStorage.LoadPlayer(s.ctx)
	s.Require().NoError(err)
	s.Equal(summary.Player, *saved)
	s.Equal("Ann", saved.Name)
	s.NotEqual(model.Wealth(0), saved.Wealth)
}
