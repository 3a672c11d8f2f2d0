package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
)

// DefaultChartWidth is the bar length of the largest month.
const DefaultChartWidth = 50

var monthAbbrev = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthAbbrev returns the three-letter name of month m (1-12).
func MonthAbbrev(m int) string {
	if m < 1 || m > 12 {
		return "???"
	}
	return monthAbbrev[m-1]
}

// TransactionTable renders matches as an indexed table.
func TransactionTable(title string, matches []ledger.Match) string {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		tx := m.Transaction
		rows = append(rows, []string{
			strconv.Itoa(m.Index),
			tx.Date.String(),
			kindLabel(tx.Kind),
			tx.Category,
			FormatAmount(tx.Amount),
			tx.Note,
		})
	}
	return RenderTable(Table{
		Title:      title,
		Headers:    []string{"Idx", "Date", "Type", "Category", "Amount", "Note"},
		Rows:       rows,
		RightAlign: []bool{true, false, false, false, true, false},
	})
}

// AllMatches lists every record of s with its index.
func AllMatches(s *ledger.Store) []ledger.Match {
	out := make([]ledger.Match, 0, s.Len())
	for i, tx := range s.All() {
		out = append(out, ledger.Match{Index: i, Transaction: tx})
	}
	return out
}

func kindLabel(k model.Kind) string {
	if k == model.Expense {
		return expenseStyle.Render(k.String())
	}
	return incomeStyle.Render(k.String())
}

// SummaryTable renders all-time totals.
func SummaryTable(sum ledger.Summary) string {
	return RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Income", FormatAmount(sum.Income)},
			{"Expense", FormatAmount(sum.Expense)},
			{"---"},
			{"Savings", FormatSignedAmount(sum.Net)},
		},
	})
}

// BarLength scales value against peak to at most width characters.
func BarLength(value, peak float64, width int) int {
	if peak <= 0 || value <= 0 {
		return 0
	}
	n := int(math.Round(value / peak * float64(width)))
	return max(0, min(n, width))
}

// MonthlyChart renders an ASCII bar per month of year. When the year has no
// expenses it returns a single explanatory line instead.
func MonthlyChart(year int, totals [12]decimal.Decimal, width int) string {
	if width <= 0 {
		width = DefaultChartWidth
	}
	peak := ledger.MaxTotal(totals)
	if !peak.IsPositive() {
		return fmt.Sprintf("No expenses recorded for %d.\n", year)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Monthly Expense Chart for %d", year)))
	b.WriteString(mutedStyle.Render(" (each # ~ scaled)"))
	b.WriteString("\n")

	total := decimal.Zero
	peakF := peak.InexactFloat64()
	for i, sum := range totals {
		total = total.Add(sum)
		bar := BarLength(sum.InexactFloat64(), peakF, width)
		fmt.Fprintf(&b, "%3s | %s  %s\n",
			monthAbbrev[i],
			barStyle.Render(strings.Repeat("#", bar)),
			valueStyle.Render(FormatAmount(sum)),
		)
	}
	fmt.Fprintf(&b, "\nTotal expenses in %d: %s\n", year, FormatAmount(total))
	return b.String()
}
