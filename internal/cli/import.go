package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/vytor/flashdeck/internal/errors"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the deck with the cards of a JSON file",
		Long: `Replace the deck with the cards of a JSON file.

The file must hold a non-empty array of card objects. Cards missing any of
english, arabic or romanization are skipped. When no card is usable the
deck is left as it was.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			s, err := openSession(cmd.Context(), rootOpts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			n, err := s.deck.Import(s.ctx, data)
			if err != nil {
				if appErr, ok := errors.As(err); ok {
					return fmt.Errorf("%s", appErr.Message)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d cards!\n", n)
			return nil
		},
	}
	return cmd
}
