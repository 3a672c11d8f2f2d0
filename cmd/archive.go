package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/store"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <db>",
	Short: "Snapshot the ledger into a SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchive,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <db>",
	Short: "Replace the ledger with a SQLite snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(restoreCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	s, err := loadLedgerForUpdate()
	if err != nil {
		return err
	}

	a, err := store.Open(args[0])
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.SaveAll(s.Records()); err != nil {
		return fmt.Errorf("archiving: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Archived %s to %s\n", cli.FormatCount(s.Len(), "record"), args[0])
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	a, err := store.Open(args[0])
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.Count()
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("archive %s holds no records", args[0])
	}
	savedAt, err := a.LastSaved()
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}

	records, err := a.LoadAll()
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}

	s, err := loadLedgerForUpdate()
	if err != nil {
		return err
	}
	s.Replace(records)
	out := cmd.OutOrStdout()
	if dropped := len(records) - s.Len(); dropped > 0 {
		fmt.Fprintf(out, "  Ledger holds %d records; %s beyond capacity were dropped\n", s.Cap(), cli.FormatCount(dropped, "record"))
	}
	fmt.Fprintf(out, "  Restored %s from %s", cli.FormatCount(s.Len(), "record"), args[0])
	if !savedAt.IsZero() {
		fmt.Fprintf(out, " (snapshot of %s)", savedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out)
	return saveLedger(cmd, s)
}
