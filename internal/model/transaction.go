package model

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Delimiter separates fields in the ledger file. It never appears in text fields.
const Delimiter = '|'

// delimiterSubstitute replaces Delimiter in category and note text.
const delimiterSubstitute = "/"

// Maximum byte lengths of the text fields.
const (
	MaxCategoryLen = 63
	MaxNoteLen     = 127
)

// Kind classifies a transaction as income or expense.
type Kind int

const (
	// Income is money received. Its file flag is 0.
	Income Kind = iota
	// Expense is money spent. Its file flag is 1.
	Expense
)

func (k Kind) String() string {
	if k == Expense {
		return "EXPENSE"
	}
	return "INCOME"
}

// Flag returns the integer stored in the ledger file.
func (k Kind) Flag() int { return int(k) }

// KindFromFlag maps a stored flag to a Kind. Only 1 means Expense.
func KindFromFlag(flag int) Kind {
	if flag == 1 {
		return Expense
	}
	return Income
}

// ParseKind accepts income/expense in any case, or the flags 0/1.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in", "0":
		return Income, nil
	case "expense", "out", "1":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (want income or expense)", s)
	}
}

// DefaultCategory is used when a transaction is created with a blank category.
func (k Kind) DefaultCategory() string {
	if k == Expense {
		return "Misc"
	}
	return "Salary"
}

// Transaction is one dated income or expense entry.
type Transaction struct {
	Date     Date
	Kind     Kind
	Category string
	Amount   decimal.Decimal
	Note     string
}

// NewTransaction builds a transaction with a defaulted category and
// sanitized text fields. It does not validate date or amount.
func NewTransaction(date Date, kind Kind, category string, amount decimal.Decimal, note string) Transaction {
	category = strings.TrimSpace(category)
	if category == "" {
		category = kind.DefaultCategory()
	}
	return Transaction{
		Date:     date,
		Kind:     kind,
		Category: SanitizeText(category, MaxCategoryLen),
		Amount:   amount,
		Note:     SanitizeText(note, MaxNoteLen),
	}
}

// SanitizeText replaces the field delimiter, drops line breaks and cuts s
// to at most maxLen bytes on a rune boundary.
func SanitizeText(s string, maxLen int) string {
	s = strings.ReplaceAll(s, string(Delimiter), delimiterSubstitute)
	s = strings.NewReplacer("\r", "", "\n", " ").Replace(s)
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Equal reports field equality, comparing amounts numerically.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Kind == o.Kind &&
		t.Category == o.Category &&
		t.Amount.Equal(o.Amount) &&
		t.Note == o.Note
}
