package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var overCmd = &cobra.Command{
	Use:   "over <threshold>",
	Short: "Show expenses above a threshold",
	Args:  cobra.ExactArgs(1),
	RunE:  runOver,
}

func init() {
	rootCmd.AddCommand(overCmd)
}

func runOver(cmd *cobra.Command, args []string) error {
	threshold, err := decimal.NewFromString(strings.TrimSpace(args[0]))
	if err != nil || threshold.IsNegative() {
		return fmt.Errorf("threshold %q must be a number >= 0", args[0])
	}

	s := loadLedger()
	return printMatches(cmd, s.FilterExpensesAbove(threshold), "No expenses above that amount.")
}
