package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vytor/flashdeck/internal/app"
	"github.com/vytor/flashdeck/internal/config"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/services"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config config.Config
}

// NewRootCommand creates the root command for the flashdeck CLI. Flag
// defaults come from cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "flashdeck",
		Short: "Vocabulary flashcards in the terminal",
		Long:  "Study, import, export and list the cards of your flashcard deck.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Config.Storage = strings.ToLower(opts.Config.Storage)
			return opts.Config.Validate()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Config.Storage, "storage", cfg.Storage, "card store (sqlite|file|memory)")
	cmd.PersistentFlags().StringVar(&opts.Config.DBPath, "db", cfg.DBPath, "sqlite database path")
	cmd.PersistentFlags().StringVar(&opts.Config.DeckFile, "deck-file", cfg.DeckFile, "deck file used with --storage=file")
	cmd.PersistentFlags().StringVar(&opts.Config.LogLevel, "log-level", cfg.LogLevel, "log level (DEBUG|INFO|WARN|ERROR)")

	cmd.AddCommand(NewStudyCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// session is an open deck for one command run.
type session struct {
	ctx   context.Context
	deck  services.DeckService
	close func() error
}

// openSession opens the configured store and loads the deck. Logs go to w.
func openSession(ctx context.Context, opts *RootOptions, w io.Writer) (*session, error) {
	log := logger.New(
		logger.WithOutput(w),
		logger.WithLevel(logger.ParseLevel(opts.Config.LogLevel)),
		logger.WithColors(false),
	)
	ctx = logger.NewContext(ctx, log)

	store, closeFn, err := app.OpenStore(ctx, opts.Config)
	if err != nil {
		return nil, err
	}
	return &session{
		ctx:   ctx,
		deck:  services.NewDeckService(ctx, store, app.DeckOptions(opts.Config)...),
		close: closeFn,
	}, nil
}
