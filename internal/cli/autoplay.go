package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/bot"
	"github.com/mcoot/blackjack/internal/services/round"
)

func newAutoplayCmd() *cobra.Command {
	var (
		rounds   int
		strategy string
		fresh    bool
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "autoplay",
		Short: "Let a bot play rounds from the saved ledger",
		Long: `Play rounds automatically with a bot strategy, starting from the saved
ledger (or a new game if there is none). The ledger is saved before every
round and once more at the end, exactly as in interactive play.

Strategies:
  - threshold: stake a tenth of the wealth, hit below 17, double down on 10 or 11
  - random: random stake and random legal actions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var player *model.Player
			var err error
			if !fresh {
				player, err = app.LedgerService.Load(ctx)
			}
			if fresh || errors.Is(err, model.ErrSaveNotFound) {
				player, err = app.LedgerService.NewGame(ctx, lookupPlayerName())
				if err == nil {
					NewOutput(cfg.Output, cmd.ErrOrStderr()).PrintMessage(fmt.Sprintf("Created new save as %s", player.Name))
				}
			}
			if err != nil {
				return err
			}

			var presenter round.Presenter
			if watch {
				presenter = NewTerminalPresenter(cmd.OutOrStdout(), app.Clock, cfg.NoDelay)
			}

			summary, err := app.BotService.Autoplay(ctx, player, strategy, rounds, presenter)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(AutoplayResult{
				Strategy: strategy,
				Rounds:   summary.Rounds,
				Wins:     summary.Wins,
				Losses:   summary.Losses,
				Pushes:   summary.Pushes,
				Ledger:   ledgerView(&summary.Player),
			})
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 100, "Number of rounds to play")
	cmd.Flags().StringVar(&strategy, "strategy", bot.StrategyThreshold,
		fmt.Sprintf("Bot strategy: %s", strings.Join([]string{bot.StrategyThreshold, bot.StrategyRandom}, ", ")))
	cmd.Flags().BoolVar(&fresh, "new", false, "Start from a new game instead of the saved ledger")
	cmd.Flags().BoolVar(&watch, "watch", false, "Print every round as it is played")

	return cmd
}
