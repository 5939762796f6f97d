package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riverfjs/mdplain"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [files...]",
		Short: "Show word count, length and reading time",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := getSettings(cmd)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SOURCE\tWORDS\tRUNES\tREADING\tTITLE")
			for _, in := range inputs {
				doc, err := mdplain.ProcessBytes(cmd.Context(), in.Data, settings.Options()...)
				if err != nil {
					return fmt.Errorf("%s: %w", in.Name, err)
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n",
					in.Name, doc.Words, doc.Runes, doc.ReadingTime, mdplain.Excerpt(doc.Title(), 40))
			}
			return tw.Flush()
		},
	}
}
