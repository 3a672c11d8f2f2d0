package tui

import (
	"testing"

	"github.com/theirongolddev/fintrack/internal/model"
)

func TestAddValuesTransaction(t *testing.T) {
	v := AddValues{Date: "2025-01-15", Kind: "expense", Category: "", Amount: "12.30", Note: "a|b"}
	tx, err := v.Transaction()
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	if tx.Kind != model.Expense || tx.Category != "Misc" || tx.Note != "a/b" {
		t.Fatalf("Transaction = %+v", tx)
	}
	if tx.Amount.StringFixed(2) != "12.30" {
		t.Fatalf("Amount = %s, want 12.30", tx.Amount)
	}
}

func TestAddValuesRejects(t *testing.T) {
	cases := []AddValues{
		{Date: "2025-02-30", Kind: "expense", Amount: "1"},
		{Date: "2025-01-01", Kind: "gift", Amount: "1"},
		{Date: "2025-01-01", Kind: "income", Amount: "0"},
		{Date: "2025-01-01", Kind: "income", Amount: "ten"},
	}
	for _, v := range cases {
		if _, err := v.Transaction(); err == nil {
			t.Errorf("Transaction(%+v) succeeded, want error", v)
		}
	}
}

func TestValidators(t *testing.T) {
	if validateText("rent|march") == nil {
		t.Fatal("validateText accepted delimiter")
	}
	if validateText("rent march") != nil {
		t.Fatal("validateText rejected plain text")
	}
	if validateAmount("-1") == nil {
		t.Fatal("validateAmount accepted negative")
	}
	if validateDate("2024-02-29") != nil {
		t.Fatal("validateDate rejected a leap day")
	}
}

func TestNewAddFormDefaultsKind(t *testing.T) {
	v := &AddValues{}
	if NewAddForm(v) == nil {
		t.Fatal("NewAddForm returned nil")
	}
	if v.Kind != "expense" {
		t.Fatalf("Kind = %q, want expense", v.Kind)
	}
}
