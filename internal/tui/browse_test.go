package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

func sampleRecords() []model.Transaction {
	return []model.Transaction{
		model.NewTransaction(model.NewDate(2025, 3, 1), model.Expense, "Rent", decimal.NewFromInt(700), ""),
		model.NewTransaction(model.NewDate(2025, 1, 5), model.Income, "Salary", decimal.NewFromInt(3000), "jan"),
		model.NewTransaction(model.NewDate(2025, 2, 9), model.Expense, "Food", decimal.NewFromInt(40), ""),
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowserQuits(t *testing.T) {
	b := NewBrowser(sampleRecords(), FlexokiDark)
	_, cmd := b.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("q returned nil command, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q command produced %T, want tea.QuitMsg", cmd())
	}
}

func TestBrowserSortCycles(t *testing.T) {
	records := sampleRecords()
	b := NewBrowser(records, Terminal)

	m, _ := b.Update(keyRune('s'))
	b = m.(Browser)
	if got := b.Rows()[0][1]; got != "2025-01-05" {
		t.Fatalf("first row after date sort = %s, want 2025-01-05", got)
	}

	m, _ = b.Update(keyRune('s'))
	b = m.(Browser)
	if got := b.Rows()[0][3]; got != "Salary" {
		t.Fatalf("first row after amount sort = %s, want Salary", got)
	}

	// The caller's slice keeps its order.
	if records[0].Category != "Rent" {
		t.Fatalf("caller records reordered: first = %s", records[0].Category)
	}
}

func TestBrowserViewShowsTotals(t *testing.T) {
	b := NewBrowser(sampleRecords(), FlexokiDark)
	m, _ := b.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	view := m.View()
	for _, want := range []string{"3 records", "Rent", "3,000.00", "+2,260.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBrowserEmpty(t *testing.T) {
	b := NewBrowser(nil, FlexokiDark)
	if !strings.Contains(b.View(), "No transactions.") {
		t.Fatalf("empty view = %q", b.View())
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("terminal").Name != "terminal" {
		t.Fatal("ThemeByName(terminal) did not return Terminal")
	}
	if ThemeByName("nope").Name != FlexokiDark.Name {
		t.Fatal("unknown theme should fall back to flexoki-dark")
	}
}
