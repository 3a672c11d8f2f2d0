package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "All-time income, expense and savings",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s := loadLedger()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("SUMMARY  %s", cli.FormatCount(s.Len(), "record"))))
	fmt.Fprint(out, cli.SummaryTable(s.Summary()))
	return nil
}
