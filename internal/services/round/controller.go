package round

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/blackjack/internal/dependencies/clock"
	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/dealer"
	"github.com/mcoot/blackjack/internal/services/deck"
	"github.com/mcoot/blackjack/internal/services/ledger"
	"github.com/mcoot/blackjack/internal/services/scoring"
)

// Session bundles the collaborators of one run of rounds
type Session struct {
	Input     Input
	Presenter Presenter

	// MaxRounds stops the run after this many rounds. Zero plays until the
	// player is bankrupt or at the wealth limit.
	MaxRounds int
}

// Controller runs the round state machine
type Controller struct {
	deckService    deck.ServiceInterface
	scoringService scoring.ServiceInterface
	ledgerService  ledger.ServiceInterface
	policy         dealer.Policy
	clock          clock.Clock
	logger         *slog.Logger
}

// NewController creates a new RoundController
func NewController(
	deckService deck.ServiceInterface,
	scoringService scoring.ServiceInterface,
	ledgerService ledger.ServiceInterface,
	policy dealer.Policy,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		deckService:    deckService,
		scoringService: scoringService,
		ledgerService:  ledgerService,
		policy:         policy,
		clock:          clock,
		logger:         logger.With(slog.String("component", "round-controller")),
	}
}

// Play runs rounds for player with a freshly shuffled deck until the ledger
// reaches a terminal state or the session's round limit. The ledger is saved
// at the start of every round and once more when the run ends. Any error is
// fatal to the run and is returned without a final save.
func (c *Controller) Play(ctx context.Context, player *model.Player, session Session) (*Summary, error) {
	summary := &Summary{}
	d := c.deckService.NewShuffledDeck()
	c.emit(session.Presenter, "", model.EventShuffled, nil)

	for player.CanPlay() {
		if session.MaxRounds > 0 && summary.Rounds >= session.MaxRounds {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rc := NewRoundContext(uuid.NewString(), player, d)
		result, err := c.PlayRound(ctx, rc, session)
		if err != nil {
			return nil, err
		}
		summary.record(result.Outcome)
	}

	switch {
	case player.IsBankrupt():
		c.emit(session.Presenter, "", model.EventBankrupt, ledgerPayload(player))
	case player.IsAtLimit():
		c.emit(session.Presenter, "", model.EventWealthLimit, ledgerPayload(player))
	}

	if err := c.ledgerService.Save(ctx, player); err != nil {
		return nil, err
	}
	c.emit(session.Presenter, "", model.EventSaved, ledgerPayload(player))

	summary.Player = *player
	c.logger.Info("session finished",
		slog.String("name", player.Name),
		slog.Int("rounds", summary.Rounds),
		slog.Int("wealth", int(player.Wealth)),
	)
	return summary, nil
}

// PlayRound runs one round from the bet to the payout
func (c *Controller) PlayRound(ctx context.Context, rc *RoundContext, session Session) (*model.RoundResolvedPayload, error) {
	out := session.Presenter

	// Bet
	if err := c.ledgerService.Save(ctx, rc.Player); err != nil {
		return nil, err
	}
	c.emit(out, rc.ID, model.EventSaved, ledgerPayload(rc.Player))

	bet, err := c.readBet(ctx, rc, session)
	if err != nil {
		return nil, err
	}
	rc.Player.Debit(bet)
	rc.Bet = bet
	c.emit(out, rc.ID, model.EventBetPlaced, model.BetPlacedPayload{Bet: bet, Wealth: rc.Player.Wealth})
	c.logger.Info("bet placed",
		slog.String("round_id", rc.ID),
		slog.Int("bet", int(bet)),
		slog.Int("wealth", int(rc.Player.Wealth)),
	)

	// Reshuffle check
	if c.deckService.EnsureFresh(rc.Deck) {
		c.emit(out, rc.ID, model.EventShuffled, nil)
		c.logger.Info("deck reshuffled", slog.String("round_id", rc.ID))
	}

	// Initial deal
	if err := c.deal(rc, out, false, 2); err != nil {
		return nil, err
	}
	if err := c.deal(rc, out, true, 2); err != nil {
		return nil, err
	}

	// Natural check
	playerNatural := c.scoringService.IsNatural(rc.PlayerHand)
	dealerNatural := c.scoringService.IsNatural(rc.DealerHand)
	if outcome, reason, ok := CheckNaturals(playerNatural, dealerNatural); ok {
		c.emitHands(out, rc, true)
		return c.resolve(rc, out, outcome, reason), nil
	}

	// Player turn
	if err := c.playerTurn(ctx, rc, session); err != nil {
		return nil, err
	}

	// Dealer turn, skipped when the player is bust
	if !c.scoringService.IsBust(rc.PlayerHand) {
		if err := c.dealerTurn(rc, out); err != nil {
			return nil, err
		}
	}

	// Resolution
	outcome, reason := CompareScores(
		c.scoringService.ScoreHand(rc.PlayerHand),
		c.scoringService.ScoreHand(rc.DealerHand),
	)
	return c.resolve(rc, out, outcome, reason), nil
}

// readBet prompts until an acceptable bet is entered
func (c *Controller) readBet(ctx context.Context, rc *RoundContext, session Session) (model.Wealth, error) {
	for {
		c.emit(session.Presenter, rc.ID, model.EventBetRequested, model.BetRequestedPayload{Wealth: rc.Player.Wealth})

		raw, err := session.Input.ReadBet(ctx, BetView{Wealth: rc.Player.Wealth})
		if err != nil {
			return 0, err
		}

		bet, err := ParseBet(raw, rc.Player.Wealth)
		if err != nil {
			c.logger.Debug("bet rejected", slog.String("round_id", rc.ID), slog.String("error", err.Error()))
			c.notice(session.Presenter, rc.ID, betRejection(err), model.NoticeShort)
			continue
		}
		return bet, nil
	}
}

// readAction prompts until a legal action is entered
func (c *Controller) readAction(ctx context.Context, rc *RoundContext, session Session) (model.Action, error) {
	for {
		raw, err := session.Input.ReadAction(ctx, c.turnView(rc))
		if err != nil {
			return 0, err
		}

		action, err := ParseActionInput(raw)
		if err == nil && action == model.ActionDoubleDown {
			err = c.checkDoubleDown(rc)
		}
		if err != nil {
			c.logger.Debug("action rejected", slog.String("round_id", rc.ID), slog.String("error", err.Error()))
			c.notice(session.Presenter, rc.ID, actionRejection(err), model.NoticeShort)
			continue
		}
		return action, nil
	}
}

func (c *Controller) checkDoubleDown(rc *RoundContext) error {
	if !rc.Player.CanAfford(rc.Bet) {
		return model.ErrInsufficientFunds
	}
	if rc.TurnIndex > 1 {
		return model.ErrDoubleDownNotAllowed
	}
	return nil
}

func actionRejection(err error) string {
	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		return "You don't have enough money to double down"
	case errors.Is(err, model.ErrDoubleDownNotAllowed):
		return "You can't double down after hitting"
	default:
		return "Input a number between 1 and 3"
	}
}

func (c *Controller) playerTurn(ctx context.Context, rc *RoundContext, session Session) error {
	out := session.Presenter
	c.emit(out, rc.ID, model.EventTurnStarted, model.TurnStartedPayload{Bet: rc.Bet})
	c.emitHands(out, rc, false)

	rc.TurnIndex = 1
	for c.scoringService.ScoreHand(rc.PlayerHand) <= scoring.Blackjack {
		action, err := c.readAction(ctx, rc, session)
		if err != nil {
			return err
		}
		c.logger.Debug("player action",
			slog.String("round_id", rc.ID),
			slog.String("action", action.String()),
			slog.Int("turn", rc.TurnIndex),
		)

		switch action {
		case model.ActionHit:
			if err := c.deal(rc, out, false, 1); err != nil {
				return err
			}
			c.emitHands(out, rc, false)
			rc.TurnIndex++
		case model.ActionStand:
			return nil
		case model.ActionDoubleDown:
			rc.Player.Debit(rc.Bet)
			rc.Bet *= 2
			c.emit(out, rc.ID, model.EventBetPlaced, model.BetPlacedPayload{Bet: rc.Bet, Wealth: rc.Player.Wealth})
			if err := c.deal(rc, out, false, 1); err != nil {
				return err
			}
			c.emitHands(out, rc, false)
			return nil
		}
	}
	return nil
}

func (c *Controller) dealerTurn(rc *RoundContext, out Presenter) error {
	c.emit(out, rc.ID, model.EventDealerTurn, model.TurnStartedPayload{Bet: rc.Bet})
	c.emitHands(out, rc, true)

	playerScore := c.scoringService.ScoreHand(rc.PlayerHand)
	for c.policy.ShouldHit(c.scoringService.ScoreHand(rc.DealerHand), playerScore) {
		if err := c.deal(rc, out, true, 1); err != nil {
			return err
		}
		c.emitHands(out, rc, true)
	}
	return nil
}

func (c *Controller) deal(rc *RoundContext, out Presenter, toDealer bool, n int) error {
	hand := rc.PlayerHand
	if toDealer {
		hand = rc.DealerHand
	}
	before := hand.Len()
	if err := c.deckService.Deal(rc.Deck, hand, n); err != nil {
		return fmt.Errorf("round %s: %w", rc.ID, err)
	}

	dealt := make([]model.Card, n)
	copy(dealt, hand.Cards[before:])
	c.emit(out, rc.ID, model.EventCardsDealt, model.CardsDealtPayload{ToDealer: toDealer, Cards: dealt})
	return nil
}

func (c *Controller) resolve(rc *RoundContext, out Presenter, outcome model.Outcome, reason model.Reason) *model.RoundResolvedPayload {
	payout := Payout(outcome, rc.Bet)
	rc.Player.Credit(payout)

	result := &model.RoundResolvedPayload{
		Outcome:     outcome,
		Reason:      reason,
		Bet:         rc.Bet,
		Payout:      payout,
		PlayerScore: c.scoringService.ScoreHand(rc.PlayerHand),
		DealerScore: c.scoringService.ScoreHand(rc.DealerHand),
		Wealth:      rc.Player.Wealth,
	}
	c.emit(out, rc.ID, model.EventRoundResolved, *result)

	c.logger.Info("round resolved",
		slog.String("round_id", rc.ID),
		slog.String("outcome", string(outcome)),
		slog.String("reason", string(reason)),
		slog.Int("bet", int(rc.Bet)),
		slog.Int("payout", int(payout)),
		slog.Int("wealth", int(rc.Player.Wealth)),
	)
	return result
}

func (c *Controller) turnView(rc *RoundContext) TurnView {
	view := TurnView{
		PlayerHand:  rc.PlayerHand.Snapshot(),
		PlayerScore: c.scoringService.ScoreHand(rc.PlayerHand),
		Bet:         rc.Bet,
		Wealth:      rc.Player.Wealth,
		TurnIndex:   rc.TurnIndex,
	}
	if rc.DealerHand.Len() > 0 {
		view.DealerUpCard = rc.DealerHand.Cards[0]
	}
	return view
}

func (c *Controller) emitHands(out Presenter, rc *RoundContext, reveal bool) {
	c.emit(out, rc.ID, model.EventHandsUpdated, model.HandsPayload{
		PlayerHand:   rc.PlayerHand.Snapshot(),
		DealerHand:   rc.DealerHand.Snapshot(),
		PlayerScore:  c.scoringService.ScoreHand(rc.PlayerHand),
		DealerScore:  c.scoringService.ScoreHand(rc.DealerHand),
		PlayerSoft:   c.scoringService.IsSoft(rc.PlayerHand),
		DealerSoft:   c.scoringService.IsSoft(rc.DealerHand),
		RevealDealer: reveal,
		Bet:          rc.Bet,
	})
}

func (c *Controller) notice(out Presenter, roundID, msg string, d model.NoticeDuration) {
	c.emit(out, roundID, model.EventNotice, model.NoticePayload{Message: msg, Duration: d})
}

func (c *Controller) emit(out Presenter, roundID string, eventType model.EventType, payload any) {
	if out == nil {
		return
	}
	out.Present(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		RoundID:   roundID,
		Payload:   payload,
	})
}

func ledgerPayload(p *model.Player) model.LedgerPayload {
	return model.LedgerPayload{Name: p.Name, Wealth: p.Wealth}
}
