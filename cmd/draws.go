package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/maplecheck/internal/draws"
)

var drawsCmd = &cobra.Command{
	Use:   "draws",
	Short: "List the draw history used for comparison",
	Long: `Print the invitation rounds the results screen compares against.

The built-in set ships with the binary; pass --file (or set
MAPLECHECK_DRAWS) to load your own YAML file instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var history []draws.Draw
		var err error
		if path, _ := cmd.Flags().GetString("file"); path != "" {
			history, err = draws.Load(path)
		} else {
			history, err = resolveDraws(cmd)
		}
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-12s  %-36s  %-24s  %s\n", "DATE", "ROUND", "STREAM", "CUTOFF")
		fmt.Fprintln(w, strings.Repeat("─", 84))
		for _, d := range history {
			fmt.Fprintf(w, "%-12s  %-36s  %-24s  %d\n",
				d.Date, d.Label, draws.StreamDisplayName(d.Stream), d.Cutoff)
		}
		return nil
	},
}

func init() {
	drawsCmd.Flags().String("file", "", "Path to a YAML file with draw history")
}
