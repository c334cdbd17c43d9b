package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blackjack/internal/dependencies/mocks"
	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/bot"
	"github.com/mcoot/blackjack/internal/services/round"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	random     *bot.RandomStrategy
	threshold  *bot.ThresholdStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.random = bot.NewRandomStrategy(s.mockRandom)
	s.threshold = bot.NewThresholdStrategy()
}

func (s *StrategySuite) TestRandomBetStaysWithinWealth() {
	s.mockRandom.QueueIntn(0, 9)

	s.Equal(model.Wealth(1), s.random.ChooseBet(round.BetView{Wealth: 10}))
	s.Equal(model.Wealth(10), s.random.ChooseBet(round.BetView{Wealth: 10}))
}

func (s *StrategySuite) TestRandomActionOffersDoubleDownOnFirstTurn() {
	s.mockRandom.QueueIntn(2)

	action := s.random.ChooseAction(round.TurnView{TurnIndex: 1, Bet: 5, Wealth: 5})
	s.Equal(model.ActionDoubleDown, action)
}

func (s *StrategySuite) TestRandomActionSkipsIllegalDoubleDown() {
	s.mockRandom.QueueIntn(1)

	action := s.random.ChooseAction(round.TurnView{TurnIndex: 2, Bet: 5, Wealth: 5})
	s.Equal(model.ActionStand, action)

	s.mockRandom.QueueIntn(0)
	action = s.random.ChooseAction(round.TurnView{TurnIndex: 1, Bet: 5, Wealth: 4})
	s.Equal(model.ActionHit, action)
}

func (s *StrategySuite) TestThresholdBet() {
	s.Equal(model.Wealth(1), s.threshold.ChooseBet(round.BetView{Wealth: 10}))
	s.Equal(model.Wealth(1), s.threshold.ChooseBet(round.BetView{Wealth: 3}))
	s.Equal(model.Wealth(25), s.threshold.ChooseBet(round.BetView{Wealth: 250}))
}

func (s *StrategySuite) TestThresholdActions() {
	s.Equal(model.ActionDoubleDown, s.threshold.ChooseAction(round.TurnView{PlayerScore: 11, TurnIndex: 1, Bet: 1, Wealth: 9}))
	s.Equal(model.ActionHit, s.threshold.ChooseAction(round.TurnView{PlayerScore: 11, TurnIndex: 2, Bet: 1, Wealth: 9}))
	s.Equal(model.ActionHit, s.threshold.ChooseAction(round.TurnView{PlayerScore: 16, TurnIndex: 1, Bet: 1, Wealth: 9}))
	s.Equal(model.ActionStand, s.threshold.ChooseAction(round.TurnView{PlayerScore: 17, TurnIndex: 1, Bet: 1, Wealth: 9}))
}
