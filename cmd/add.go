package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagAddDate        string
	flagAddKind        string
	flagAddCategory    string
	flagAddAmount      string
	flagAddNote        string
	flagAddInteractive bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction",
	Long: "Add an income or expense. Without --date and --amount on a terminal, " +
		"an interactive form asks for the fields.",
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Date as YYYY-MM-DD, or \"today\"")
	addCmd.Flags().StringVarP(&flagAddKind, "kind", "k", "expense", "income or expense")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category (default Salary/Misc)")
	addCmd.Flags().StringVarP(&flagAddAmount, "amount", "a", "", "Positive amount")
	addCmd.Flags().StringVarP(&flagAddNote, "note", "n", "", "Optional note")
	addCmd.Flags().BoolVarP(&flagAddInteractive, "interactive", "i", false, "Use the interactive form")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	s, err := loadLedgerForUpdate()
	if err != nil {
		return err
	}

	vals := tui.AddValues{
		Date:     flagAddDate,
		Kind:     flagAddKind,
		Category: flagAddCategory,
		Amount:   flagAddAmount,
		Note:     flagAddNote,
	}
	if strings.EqualFold(vals.Date, "today") {
		vals.Date = time.Now().Format("2006-01-02")
	}

	missing := vals.Date == "" || vals.Amount == ""
	interactive := flagAddInteractive || (missing && isatty.IsTerminal(os.Stdin.Fd()))
	if missing && !interactive {
		return errors.New("--date and --amount are required when not on a terminal")
	}

	var txn model.Transaction
	if interactive {
		if s.Len() >= s.Cap() {
			return fmt.Errorf("%w (%d records)", ledger.ErrCapacityExceeded, s.Cap())
		}
		txn, err = tui.RunAddForm(&vals)
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Cancelled.")
			return nil
		}
	} else {
		txn, err = vals.Transaction()
	}
	if err != nil {
		return err
	}

	idx, err := s.Add(txn)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Transaction added at index %d. Total = %d\n", idx, s.Len())
	return saveLedger(cmd, s)
}
