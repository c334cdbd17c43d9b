package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/blackjack/internal/factory"
	"github.com/mcoot/blackjack/internal/model"
)

func newLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect or reset the saved ledger",
	}

	cmd.AddCommand(newLedgerShowCmd())
	cmd.AddCommand(newLedgerResetCmd())

	return cmd
}

func newLedgerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.LedgerService.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(ledgerView(player))
			return nil
		},
	}
}

func newLedgerResetCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the saved ledger with a new game",
		Long: `Overwrite the save with a fresh ledger holding the starting wealth.

The player name defaults to the name of the current OS account.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = lookupPlayerName()
			}

			player, err := app.LedgerService.NewGame(cmd.Context(), name)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(ledgerView(player))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name for the new ledger")

	return cmd
}

func ledgerView(p *model.Player) Ledger {
	l := Ledger{
		Name:    p.Name,
		Wealth:  uint16(p.Wealth),
		Storage: cfg.Storage,
	}
	if cfg.Storage == factory.StorageTypeRedis || cfg.Storage == factory.StorageTypePostgres {
		l.Slot = cfg.Slot
	}
	return l
}
