package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/storage/memory"
	"github.com/mcoot/blackjack/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestNewGameSavesStartingWealth() {
	player, err := s.service.NewGame(s.ctx, "Ann")
	s.Require().NoError(err)
	s.Equal("Ann", player.Name)
	s.Equal(model.StartingWealth, player.Wealth)

	saved, err := s.storage.LoadPlayer(s.ctx)
	s.Require().NoError(err)
	s.Equal(player, saved)
}

func (s *ServiceSuite) TestNewGameDefaultsName() {
	player, err := s.service.NewGame(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(model.DefaultPlayerName, player.Name)
}

func (s *ServiceSuite) TestSaveAndLoadRoundTrip() {
	s.Require().NoError(s.service.Save(s.ctx, &model.Player{Name: "Ann", Wealth: 42}))

	loaded, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal("Ann", loaded.Name)
	s.Equal(model.Wealth(42), loaded.Wealth)
}

func (s *ServiceSuite) TestLoadMissingSaveIsPersistenceError() {
	_, err := s.service.Load(s.ctx)
	s.ErrorIs(err, model.ErrPersistence)
	s.ErrorIs(err, model.ErrSaveNotFound)
}

func (s *ServiceSuite) TestSaveFailureIsPersistenceError() {
	cause := errors.New("disk full")
	s.storage.FailSaves = cause

	err := s.service.Save(s.ctx, &model.Player{Name: "Ann", Wealth: 1})
	s.ErrorIs(err, model.ErrPersistence)
	s.ErrorIs(err, cause)
}

func (s *ServiceSuite) TestNewGameFailsWhenSaveFails() {
	s.storage.FailSaves = errors.New("disk full")

	_, err := s.service.NewGame(s.ctx, "Ann")
	s.ErrorIs(err, model.ErrPersistence)
}
