package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
)

const (
	browseChrome     = 6 // title, blank, status bar and table borders
	minBrowseHeight  = 5
	defaultRowHeight = 15
)

// Browser is a read-only Bubble Tea view over a copy of the ledger.
type Browser struct {
	view    *ledger.Store
	table   table.Model
	theme   Theme
	sortKey ledger.SortKey
	sorted  bool

	width  int
	height int
}

// NewBrowser returns a browser over records. The records are copied, so
// sorting in the browser does not touch the caller's store.
func NewBrowser(records []model.Transaction, th Theme) Browser {
	view := ledger.New(max(len(records), 1))
	view.Replace(records)

	t := table.New(
		table.WithColumns(browseColumns()),
		table.WithFocused(true),
		table.WithHeight(defaultRowHeight),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(th.Accent)
	st.Selected = st.Selected.
		Foreground(th.TextPrimary).
		Background(th.Surface).
		Bold(false)
	t.SetStyles(st)

	b := Browser{view: view, table: t, theme: th}
	b.refreshRows()
	return b
}

func browseColumns() []table.Column {
	return []table.Column{
		{Title: "Idx", Width: 5},
		{Title: "Date", Width: 10},
		{Title: "Type", Width: 7},
		{Title: "Category", Width: 20},
		{Title: "Amount", Width: 12},
		{Title: "Note", Width: 30},
	}
}

func (b *Browser) refreshRows() {
	rows := make([]table.Row, 0, b.view.Len())
	for i, tx := range b.view.All() {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			tx.Date.String(),
			tx.Kind.String(),
			tx.Category,
			cli.FormatAmount(tx.Amount),
			tx.Note,
		})
	}
	b.table.SetRows(rows)
}

// Rows returns the rows currently shown, in display order.
func (b Browser) Rows() []table.Row { return b.table.Rows() }

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.table.SetHeight(max(minBrowseHeight, msg.Height-browseChrome))
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "s":
			// First press sorts by date, then alternate.
			if b.sorted && b.sortKey == ledger.ByDateAscending {
				b.sortKey = ledger.ByAmountDescending
			} else {
				b.sortKey = ledger.ByDateAscending
			}
			b.sorted = true
			b.view.Sort(b.sortKey)
			b.refreshRows()
			b.table.GotoTop()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b Browser) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(b.theme.Accent).Bold(true)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("  Ledger  %s", cli.FormatCount(b.view.Len(), "record"))))
	sb.WriteString("\n\n")
	if b.view.Len() == 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(b.theme.TextMuted).Render("  No transactions."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(b.table.View())
		sb.WriteString("\n")
	}
	sb.WriteString(b.statusBar())
	return sb.String()
}

func (b Browser) statusBar() string {
	sum := b.view.Summary()
	left := " [j/k]move  [s]ort  [q]uit"
	if b.sorted {
		left += "  sorted by " + b.sortKey.String()
	}

	netStyle := lipgloss.NewStyle().Foreground(b.theme.Green)
	if sum.Net.IsNegative() {
		netStyle = netStyle.Foreground(b.theme.Red)
	}
	right := fmt.Sprintf("in %s  out %s  net %s ",
		cli.FormatAmount(sum.Income), cli.FormatAmount(sum.Expense),
		netStyle.Render(cli.FormatSignedAmount(sum.Net)))

	padding := max(1, b.width-lipgloss.Width(left)-lipgloss.Width(right))
	return lipgloss.NewStyle().Foreground(b.theme.TextMuted).Render(left) +
		strings.Repeat(" ", padding) + right
}
