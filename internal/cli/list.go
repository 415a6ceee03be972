package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the cards of the deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			cards := s.deck.Cards(s.ctx)
			out := cmd.OutOrStdout()

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tPROMPT\tTARGET\tTRANSLITERATION")
			for _, c := range cards {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.PromptText, c.TargetText, c.Transliteration)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			saved := "never saved"
			if t, err := s.deck.LastSaved(s.ctx); err == nil && !t.IsZero() {
				saved = "saved " + humanize.Time(t)
			}
			fmt.Fprintf(out, "\n%s cards, %s\n", humanize.Comma(int64(len(cards))), saved)
			return nil
		},
	}
	return cmd
}
