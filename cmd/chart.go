package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/theirongolddev/fintrack/internal/chart"
	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagChartPNG   string
	flagChartWidth int
)

var chartCmd = &cobra.Command{
	Use:   "chart [year]",
	Short: "Monthly expense bar chart (default: current year)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVar(&flagChartPNG, "png", "", "Also write the chart as a PNG image to this path")
	chartCmd.Flags().IntVarP(&flagChartWidth, "width", "w", 0, "Longest bar in characters (default from config)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	year := time.Now().Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil || y < model.MinYear || y > model.MaxYear {
			return fmt.Errorf("year %q must be an integer in [%d..%d]", args[0], model.MinYear, model.MaxYear)
		}
		year = y
	}
	width := flagChartWidth
	if width <= 0 {
		width = cfg.Chart.Width
	}

	s := loadLedger()
	totals := s.MonthlyExpenseTotals(year)
	out := cmd.OutOrStdout()
	fmt.Fprint(out, cli.MonthlyChart(year, totals, width))

	if flagChartPNG == "" {
		return nil
	}
	f, err := os.Create(flagChartPNG)
	if err != nil {
		return fmt.Errorf("creating chart image: %w", err)
	}
	err = chart.RenderMonthlyPNG(f, year, totals)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, chart.ErrNoData) {
		_ = os.Remove(flagChartPNG)
		return nil
	}
	if err != nil {
		return fmt.Errorf("rendering chart image: %w", err)
	}
	fmt.Fprintf(out, "  Chart image written to %s\n", flagChartPNG)
	return nil
}
