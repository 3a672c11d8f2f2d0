package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

func tx(t *testing.T, date string, kind model.Kind, category, amount, note string) model.Transaction {
	t.Helper()
	d, err := model.ParseDate(date)
	if err != nil {
		t.Fatal(err)
	}
	return model.Transaction{
		Date:     d,
		Kind:     kind,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Note:     note,
	}
}

func mustAdd(t *testing.T, s *Store, records ...model.Transaction) {
	t.Helper()
	for _, r := range records {
		if _, err := s.Add(r); err != nil {
			t.Fatalf("Add(%+v): %v", r, err)
		}
	}
}
