package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse transactions in an interactive table",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, _ []string) error {
	th := tui.ThemeByName(cfg.Appearance.Theme)

	// The hex palette needs TrueColor; the terminal theme sticks to ANSI.
	if th.Name == tui.Terminal.Name {
		lipgloss.SetColorProfile(termenv.ANSI)
	} else {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	s := loadLedger()
	p := tea.NewProgram(tui.NewBrowser(s.Records(), th), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
