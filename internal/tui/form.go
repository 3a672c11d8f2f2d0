// Package tui holds the interactive pieces of fintrack: the add-transaction
// form and the Bubble Tea browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
)

// AddValues carries the raw form fields. Fields already set are used as
// the form's initial values.
type AddValues struct {
	Date     string
	Kind     string
	Category string
	Amount   string
	Note     string
}

// Transaction parses the fields into a transaction with defaults applied.
func (v AddValues) Transaction() (model.Transaction, error) {
	d, err := model.ParseDate(v.Date)
	if err != nil {
		return model.Transaction{}, err
	}
	kind, err := model.ParseKind(v.Kind)
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := parsePositive(v.Amount)
	if err != nil {
		return model.Transaction{}, err
	}
	return model.NewTransaction(d, kind, v.Category, amount, v.Note), nil
}

func parsePositive(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ledger.ErrInvalidAmount, s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be positive", ledger.ErrInvalidAmount)
	}
	return amount, nil
}

func validateDate(s string) error {
	_, err := model.ParseDate(s)
	return err
}

func validateAmount(s string) error {
	_, err := parsePositive(s)
	return err
}

func validateText(s string) error {
	if strings.ContainsRune(s, model.Delimiter) {
		return fmt.Errorf("%q is not allowed", string(model.Delimiter))
	}
	return nil
}

// NewAddForm builds the add-transaction form bound to v.
func NewAddForm(v *AddValues) *huh.Form {
	if v.Kind == "" {
		v.Kind = "expense"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&v.Date).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", "expense"),
					huh.NewOption("Income", "income"),
				).
				Value(&v.Kind),
			huh.NewInput().
				Title("Category").
				Description("Blank means Salary for income, Misc for expense").
				CharLimit(model.MaxCategoryLen).
				Value(&v.Category).
				Validate(validateText),
			huh.NewInput().
				Title("Amount").
				Value(&v.Amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Note").
				Description("Optional").
				CharLimit(model.MaxNoteLen).
				Value(&v.Note).
				Validate(validateText),
		),
	)
}

// RunAddForm shows the form on the terminal and returns the entered
// transaction. It returns huh.ErrUserAborted when the user cancels.
func RunAddForm(v *AddValues) (model.Transaction, error) {
	if err := NewAddForm(v).Run(); err != nil {
		return model.Transaction{}, err
	}
	return v.Transaction()
}
