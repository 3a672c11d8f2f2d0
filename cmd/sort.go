package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/ledger"

	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:       "sort date|amount",
	Short:     "Sort the ledger by date (ascending) or amount (descending)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"date", "amount"},
	RunE:      runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	key, err := ledger.ParseSortKey(args[0])
	if err != nil {
		return err
	}

	s, err := loadLedgerForUpdate()
	if err != nil {
		return err
	}
	if s.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "  No transactions to sort.")
		return nil
	}
	s.Sort(key)
	fmt.Fprintf(cmd.OutOrStdout(), "  Sorted by %s.\n", key)
	return saveLedger(cmd, s)
}
