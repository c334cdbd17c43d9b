package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/blackjack/internal/factory"
)

var (
	cfg    *Config
	app    *factory.App
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "blackjack",
		Short: "Single-player blackjack in the terminal",
		Long: `blackjack is a single-player game of blackjack against the house.

Your winnings are kept in a ledger that is saved before every round, so a game
can be continued later from the main menu. You start a new game with $10.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = cfg.Logger()

			var err error
			app, err = factory.New(cmd.Context(), cfg.FactoryConfig(logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			presenter := NewTerminalPresenter(cmd.OutOrStdout(), app.Clock, cfg.NoDelay)
			input := NewLineInput(cmd.InOrStdin(), cmd.OutOrStdout())
			menu := NewMenu(app.LedgerService, app.RoundController, input, presenter, cmd.OutOrStdout(), logger)
			return menu.Run(cmd.Context())
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.SaveFile, "save-file", cfg.SaveFile, "Save file path for file storage (env: BLACKJACK_SAVE_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: file, memory, redis, postgres (env: BLACKJACK_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: BLACKJACK_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.PostgresDSN, "postgres-dsn", cfg.PostgresDSN, "Postgres connection string (env: BLACKJACK_POSTGRES_DSN)")
	rootCmd.PersistentFlags().StringVar(&cfg.Slot, "slot", cfg.Slot, "Save slot for redis and postgres storage (env: BLACKJACK_SLOT)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json, debug")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoDelay, "no-delay", cfg.NoDelay, "Skip pauses between messages (env: BLACKJACK_NO_DELAY)")

	// Add subcommands
	rootCmd.AddCommand(newLedgerCmd())
	rootCmd.AddCommand(newAutoplayCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := LoadEnvFile(getEnvOrDefault("BLACKJACK_ENV_FILE", ".env")); err != nil {
		NewOutput(FormatText, nil).PrintError(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
