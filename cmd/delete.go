package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <index>",
	Aliases: []string{"rm"},
	Short:   "Delete a transaction by index",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("index %q is not an integer", args[0])
	}

	s, err := loadLedgerForUpdate()
	if err != nil {
		return err
	}
	if err := s.Delete(idx); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Deleted. Remaining = %d\n", s.Len())
	return saveLedger(cmd, s)
}
