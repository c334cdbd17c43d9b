package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/ledger"
	"github.com/mcoot/blackjack/internal/services/round"
)

// Menu is the interactive main menu session
type Menu struct {
	ledger     ledger.ServiceInterface
	controller *round.Controller
	input      *LineInput
	presenter  *TerminalPresenter
	out        io.Writer
	playerName func() string
	logger     *slog.Logger
}

// NewMenu creates a new Menu
func NewMenu(
	ledgerService ledger.ServiceInterface,
	controller *round.Controller,
	input *LineInput,
	presenter *TerminalPresenter,
	out io.Writer,
	logger *slog.Logger,
) *Menu {
	return &Menu{
		ledger:     ledgerService,
		controller: controller,
		input:      input,
		presenter:  presenter,
		out:        out,
		playerName: lookupPlayerName,
		logger:     logger.With(slog.String("component", "menu")),
	}
}

// Run shows the title and loops over the main menu until the player exits,
// the input is closed or ctx is cancelled
func (m *Menu) Run(ctx context.Context) error {
	m.presenter.Title()

	for {
		m.presenter.Menu()
		raw, err := m.input.ReadLine(ctx)
		if m.isExit(err) {
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := round.ParseMenuInput(raw)
		if err != nil {
			m.presenter.Message("Input a number between 1 and 3", model.NoticeShort)
			continue
		}

		var player *model.Player
		switch choice {
		case model.MenuExit:
			return nil
		case model.MenuNewGame:
			player = m.newGame(ctx)
		case model.MenuContinue:
			player = m.load(ctx)
		}
		if player == nil {
			continue
		}

		if err := m.play(ctx, player); err != nil {
			if m.isExit(err) {
				return nil
			}
			return err
		}
	}
}

// isExit reports whether err ends the session the same way as choosing Exit.
// The ledger was saved at the start of the interrupted round.
func (m *Menu) isExit(err error) bool {
	switch {
	case errors.Is(err, model.ErrInputClosed):
		return true
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		m.logger.Info("interrupted", slog.String("error", err.Error()))
		return true
	}
	return false
}

func (m *Menu) newGame(ctx context.Context) *model.Player {
	player, err := m.ledger.NewGame(ctx, m.playerName())
	if err != nil {
		fmt.Fprintln(m.out, "An error occurred when saving")
		return nil
	}
	fmt.Fprintf(m.out, "Created new save as %s\n", player.Name)
	return player
}

func (m *Menu) load(ctx context.Context) *model.Player {
	player, err := m.ledger.Load(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "Loaded save file created by %s\n", player.Name)
		return player
	case errors.Is(err, model.ErrSaveNotFound):
		fmt.Fprintln(m.out, "Couldn't find save file. Make sure the save file and the app are in the same location")
	case errors.Is(err, model.ErrSaveCorrupted):
		fmt.Fprintln(m.out, "Save file is corrupted")
	default:
		fmt.Fprintln(m.out, "Failed to read save file")
	}
	return nil
}

// play runs rounds until the ledger is exhausted or an error ends the run.
// Persistence and deck failures are reported and return to the menu.
func (m *Menu) play(ctx context.Context, player *model.Player) error {
	m.presenter.Present(model.Event{Type: model.EventClearScreen})

	_, err := m.controller.Play(ctx, player, round.Session{
		Input:     m.input,
		Presenter: m.presenter,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrPersistence):
		m.logger.Error("round aborted", slog.String("error", err.Error()))
		fmt.Fprintln(m.out, "An error occurred when saving")
		return nil
	case errors.Is(err, model.ErrDeckExhausted):
		m.logger.Error("round aborted", slog.String("error", err.Error()))
		fmt.Fprintln(m.out, "The deck ran out of cards. Returning to main menu...")
		return nil
	default:
		return err
	}
}
