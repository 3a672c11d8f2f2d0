package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagFile     string
	flagConfig   string
	flagCapacity int
	flagVerbose  bool
	flagQuiet    bool
)

// cfg is the effective configuration, loaded before every command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:               "fintrack",
	Short:             "Personal finance ledger",
	Long:              "Record income and expenses, query them, and chart monthly spending.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runList,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Ledger data file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().IntVar(&flagCapacity, "capacity", 0, "Maximum number of records (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	switch {
	case flagVerbose:
		level = slog.LevelDebug
	case flagQuiet:
		level = slog.LevelError
	}
	logging.Setup(logging.Config{
		Level: level,
		JSON:  strings.EqualFold(strings.TrimSpace(cfg.Log.Format), "json"),
	})
	return nil
}

func dataFile() string {
	if flagFile != "" {
		return flagFile
	}
	return cfg.General.DataFile
}

func capacity() int {
	if flagCapacity > 0 {
		return flagCapacity
	}
	return cfg.General.Capacity
}

// openLedger loads the data file. A missing file is not an error and
// yields an empty store; any other failure is returned with the store left
// empty.
func openLedger() (*ledger.Store, error) {
	s := ledger.New(capacity())
	path := dataFile()

	err := s.LoadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("no ledger file yet", "path", path)
		return s, nil
	case err != nil:
		return s, err
	}
	slog.Debug("ledger loaded", "path", path, "records", s.Len())
	return s, nil
}

// loadLedger is the loading path for read-only commands: a file that
// cannot be read is reported and the command carries on with no records.
func loadLedger() *ledger.Store {
	s, err := openLedger()
	if err != nil {
		slog.Warn("could not read ledger, showing no records", "path", dataFile(), "err", err)
	}
	return s
}

// loadLedgerForUpdate is the loading path for commands that save. It
// fails when an existing file could not be read, so the file is never
// overwritten with an empty ledger.
func loadLedgerForUpdate() (*ledger.Store, error) {
	s, err := openLedger()
	if err != nil {
		return nil, fmt.Errorf("not modifying %s: %w", dataFile(), err)
	}
	return s, nil
}

func saveLedger(cmd *cobra.Command, s *ledger.Store) error {
	path := dataFile()
	if err := s.SaveFile(path); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	slog.Debug("ledger saved", "path", path, "records", s.Len())
	fmt.Fprintf(cmd.OutOrStdout(), "  Saved to '%s'.\n", path)
	return nil
}
