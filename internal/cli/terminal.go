package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"

	"github.com/mcoot/blackjack/internal/dependencies/clock"
	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/round"
)

const (
	clearScreen = "\x1B[2J\x1B[1;1H"
	eraseLine   = "\x1B[A\r\x1B[K"
	dealPause   = 400 * time.Millisecond
	title       = "Blackjack"
)

// TerminalPresenter renders round events as text for a terminal
type TerminalPresenter struct {
	out     io.Writer
	clock   clock.Clock
	noDelay bool

	win  *color.Color
	loss *color.Color
	push *color.Color

	// inTurn is set once the player's turn has started, so a second
	// bet_placed event in the same round is shown as a double down
	inTurn bool
}

// Ensure TerminalPresenter implements round.Presenter
var _ round.Presenter = (*TerminalPresenter)(nil)

// NewTerminalPresenter creates a presenter writing to out. Pauses go through
// clk and are skipped entirely when noDelay is set.
func NewTerminalPresenter(out io.Writer, clk clock.Clock, noDelay bool) *TerminalPresenter {
	return &TerminalPresenter{
		out:     out,
		clock:   clk,
		noDelay: noDelay,
		win:     color.New(color.FgGreen, color.Bold),
		loss:    color.New(color.FgRed, color.Bold),
		push:    color.New(color.FgYellow, color.Bold),
	}
}

// DisableColor turns off ANSI colours for the outcome banners
func (p *TerminalPresenter) DisableColor() {
	p.win.DisableColor()
	p.loss.DisableColor()
	p.push.DisableColor()
}

// Title prints the FIGlet title
func (p *TerminalPresenter) Title() {
	big := figure.NewFigure(title, "", true).String()
	if strings.TrimSpace(big) == "" {
		big = title + "\n"
	}
	fmt.Fprint(p.out, big)
	p.pause(time.Second)
}

// Menu prints the main menu
func (p *TerminalPresenter) Menu() {
	fmt.Fprintln(p.out, "---")
	fmt.Fprintln(p.out, "Main menu")
	fmt.Fprintln(p.out, "1. New game")
	fmt.Fprintln(p.out, "2. Continue")
	fmt.Fprintln(p.out, "3. Exit")
}

// Message prints a line, holds it on screen for d and then erases it.
// With pauses disabled the line stays.
func (p *TerminalPresenter) Message(msg string, d model.NoticeDuration) {
	fmt.Fprintln(p.out, msg)
	if p.noDelay {
		return
	}
	p.clock.Sleep(d.AsDuration())
	fmt.Fprint(p.out, eraseLine)
}

// Present renders a single round event
func (p *TerminalPresenter) Present(ev model.Event) {
	switch ev.Type {
	case model.EventClearScreen:
		fmt.Fprint(p.out, clearScreen)
	case model.EventNotice:
		n := ev.Payload.(model.NoticePayload)
		p.Message(n.Message, n.Duration)
	case model.EventSaved:
		fmt.Fprintln(p.out, "Saved")
	case model.EventBetRequested:
		p.inTurn = false
	case model.EventBetPlaced:
		b := ev.Payload.(model.BetPlacedPayload)
		if p.inTurn {
			fmt.Fprintf(p.out, "You doubled down. You are betting $%d\n", b.Bet)
		} else {
			fmt.Fprintf(p.out, "You are betting $%d\n", b.Bet)
		}
	case model.EventShuffled:
		p.Message("Shuffling...", model.NoticeShort)
	case model.EventCardsDealt:
		p.pause(dealPause)
	case model.EventTurnStarted:
		t := ev.Payload.(model.TurnStartedPayload)
		p.inTurn = true
		fmt.Fprintf(p.out, "\n--- YOUR TURN | BET: $%d ---\n", t.Bet)
	case model.EventHandsUpdated:
		p.renderHands(ev.Payload.(model.HandsPayload))
	case model.EventDealerTurn:
		t := ev.Payload.(model.TurnStartedPayload)
		fmt.Fprintf(p.out, "\n--- DEALER'S TURN | BET: $%d ---\n", t.Bet)
	case model.EventRoundResolved:
		p.renderResult(ev.Payload.(model.RoundResolvedPayload))
	case model.EventBankrupt:
		p.Message("You ran out of money. Returning to main menu...", model.NoticeLong)
	case model.EventWealthLimit:
		p.Message("You have too much money. The casino can't provide for further wins. Returning to main menu...", model.NoticeLong)
	}
}

func (p *TerminalPresenter) renderHands(h model.HandsPayload) {
	dealer := formatCards(h.DealerHand)
	dealerScore := formatScore(h.DealerScore, h.DealerSoft)
	if !h.RevealDealer && len(h.DealerHand) > 0 {
		dealer = fmt.Sprintf("[%s, ??]", h.DealerHand[0])
		dealerScore = "??"
	}
	fmt.Fprintf(p.out, "Your cards: %s (%s)\tDealer's cards: %s (%s)\n",
		formatCards(h.PlayerHand), formatScore(h.PlayerScore, h.PlayerSoft), dealer, dealerScore)
}

func formatScore(score uint8, soft bool) string {
	if soft {
		return fmt.Sprintf("soft %d", score)
	}
	return strconv.Itoa(int(score))
}

func (p *TerminalPresenter) renderResult(r model.RoundResolvedPayload) {
	switch r.Outcome {
	case model.OutcomeWin:
		p.win.Fprintln(p.out, "\n--- YOU WON ---")
	case model.OutcomeLoss:
		p.loss.Fprintln(p.out, "\n--- YOU LOST ---")
	default:
		p.push.Fprintln(p.out, "\n--- DRAW ---")
	}
	fmt.Fprintln(p.out, resultMessage(r))
	p.pause(model.NoticeLong.AsDuration())
}

func resultMessage(r model.RoundResolvedPayload) string {
	switch r.Reason {
	case model.ReasonBothNatural:
		return fmt.Sprintf("You and dealer both got a blackjack. You get $%d back", r.Payout)
	case model.ReasonPlayerNatural:
		return fmt.Sprintf("You got a blackjack. Won $%d", r.Payout)
	case model.ReasonDealerNatural:
		return "Dealer got a blackjack"
	case model.ReasonPlayerBust:
		return "You busted"
	case model.ReasonDealerBust:
		return fmt.Sprintf("Dealer busted. You won $%d", r.Payout)
	case model.ReasonEqualScores:
		return fmt.Sprintf("You and dealer got hands of same value. You get $%d back", r.Payout)
	case model.ReasonPlayerHigher:
		return fmt.Sprintf("You were closer to 21. You won $%d", r.Payout)
	default:
		return "Dealer was closer to 21."
	}
}

func formatCards(cards []model.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (p *TerminalPresenter) pause(d time.Duration) {
	if p.noDelay {
		return
	}
	p.clock.Sleep(d)
}
