package model

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewTransactionDefaultsCategory(t *testing.T) {
	d := NewDate(2025, 1, 1)
	in := NewTransaction(d, Income, "  ", decimal.NewFromInt(10), "")
	if in.Category != "Salary" {
		t.Fatalf("income category = %q, want Salary", in.Category)
	}
	out := NewTransaction(d, Expense, "", decimal.NewFromInt(10), "")
	if out.Category != "Misc" {
		t.Fatalf("expense category = %q, want Misc", out.Category)
	}
}

func TestNewTransactionReplacesDelimiter(t *testing.T) {
	tx := NewTransaction(NewDate(2025, 1, 1), Expense, "Food|Drink", decimal.NewFromInt(3), "a|b|c")
	if tx.Category != "Food/Drink" {
		t.Fatalf("category = %q, want Food/Drink", tx.Category)
	}
	if tx.Note != "a/b/c" {
		t.Fatalf("note = %q, want a/b/c", tx.Note)
	}
}

func TestSanitizeTextTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 40) // 80 bytes
	got := SanitizeText(long, MaxCategoryLen)
	if len(got) > MaxCategoryLen {
		t.Fatalf("len = %d, want <= %d", len(got), MaxCategoryLen)
	}
	if len(got) != 62 {
		t.Fatalf("len = %d, want 62 (31 whole runes)", len(got))
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"income": Income, "EXPENSE": Expense, "0": Income, "1": Expense} {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseKind("transfer"); err == nil {
		t.Fatal("ParseKind(transfer) succeeded, want error")
	}
	if KindFromFlag(7) != Income {
		t.Fatal("KindFromFlag(7) should fall back to Income")
	}
}
