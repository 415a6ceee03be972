package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vytor/flashdeck/internal/app"
	"github.com/vytor/flashdeck/internal/tui"
)

// NewStudyCommand creates the study command.
func NewStudyCommand(rootOpts *RootOptions) *cobra.Command {
	var exportDir string

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Study the deck in a full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the UI, so logs are dropped.
			s, err := openSession(cmd.Context(), rootOpts, io.Discard)
			if err != nil {
				return err
			}
			defer s.close()

			if exportDir == "" {
				if exportDir, err = os.Getwd(); err != nil {
					return err
				}
			}
			return tui.Run(s.ctx, s.deck,
				tui.WithLabels(app.Labels(rootOpts.Config)),
				tui.WithExportDir(exportDir),
			)
		},
	}

	cmd.Flags().StringVar(&exportDir, "export-dir", "", "directory exports are written to (default: working directory)")
	return cmd
}
