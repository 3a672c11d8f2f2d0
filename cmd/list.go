package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all transactions",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	s := loadLedger()
	out := cmd.OutOrStdout()

	if s.Len() == 0 {
		fmt.Fprintln(out, "  No transactions.")
		return nil
	}

	fmt.Fprint(out, cli.TransactionTable("", cli.AllMatches(s)))
	fmt.Fprintf(out, "  %s of %d\n", cli.FormatCount(s.Len(), "record"), s.Cap())
	return nil
}
