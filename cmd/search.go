package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search category|note|date <query>",
	Short: "Find transactions by category, note (substring, any case) or exact date",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	field, err := ledger.ParseField(args[0])
	if err != nil {
		return err
	}
	query := strings.Join(args[1:], " ")

	s := loadLedger()
	matches, err := s.Search(field, query)
	if err != nil {
		return err
	}
	return printMatches(cmd, matches, "No matches.")
}

func printMatches(cmd *cobra.Command, matches []ledger.Match, empty string) error {
	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintf(out, "  %s\n", empty)
		return nil
	}
	fmt.Fprint(out, cli.TransactionTable("", matches))
	fmt.Fprintf(out, "  %s\n", cli.FormatCount(len(matches), "match"))
	return nil
}
