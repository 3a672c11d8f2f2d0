// Package ledger holds the bounded in-memory transaction store, its queries,
// and the line-oriented file format it is persisted in.
package ledger

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

// DefaultCapacity is the record limit used when none is configured.
const DefaultCapacity = 2000

// Store is an ordered, capacity-bounded collection of transactions.
// It is not safe for concurrent use.
type Store struct {
	records  []model.Transaction
	capacity int
}

// New returns an empty store holding at most capacity records.
// A non-positive capacity selects DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Cap returns the maximum number of records.
func (s *Store) Cap() int { return s.capacity }

// At returns the record at index i.
func (s *Store) At(i int) (model.Transaction, error) {
	if i < 0 || i >= len(s.records) {
		return model.Transaction{}, fmt.Errorf("%w: %d not in [0..%d)", ErrIndexOutOfRange, i, len(s.records))
	}
	return s.records[i], nil
}

// Add appends tx and returns its index.
func (s *Store) Add(tx model.Transaction) (int, error) {
	if len(s.records) >= s.capacity {
		return -1, fmt.Errorf("%w (%d records)", ErrCapacityExceeded, s.capacity)
	}
	if !tx.Amount.IsPositive() {
		return -1, fmt.Errorf("%w: got %s", ErrInvalidAmount, tx.Amount.StringFixed(2))
	}
	if !tx.Date.Valid() {
		return -1, fmt.Errorf("%w: %s", ErrInvalidDate, tx.Date)
	}
	s.records = append(s.records, tx)
	return len(s.records) - 1, nil
}

// Delete removes the record at index i. Later records move down by one.
func (s *Store) Delete(i int) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("%w: %d not in [0..%d)", ErrIndexOutOfRange, i, len(s.records))
	}
	s.records = slices.Delete(s.records, i, i+1)
	return nil
}

// All yields every record with its index, in store order.
func (s *Store) All() iter.Seq2[int, model.Transaction] {
	return func(yield func(int, model.Transaction) bool) {
		for i, tx := range s.records {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Records returns a copy of the records in store order.
func (s *Store) Records() []model.Transaction {
	return slices.Clone(s.records)
}

// Replace discards the current content and keeps at most Cap of records.
func (s *Store) Replace(records []model.Transaction) {
	if len(records) > s.capacity {
		records = records[:s.capacity]
	}
	s.records = slices.Clone(records)
}

// SortKey selects the ordering applied by Sort.
type SortKey int

const (
	ByDateAscending SortKey = iota
	ByAmountDescending
)

func (k SortKey) String() string {
	if k == ByAmountDescending {
		return "amount"
	}
	return "date"
}

// ParseSortKey accepts "date" or "amount".
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return ByDateAscending, nil
	case "amount":
		return ByAmountDescending, nil
	default:
		return 0, fmt.Errorf("unknown sort key %q (want date or amount)", s)
	}
}

func compareDate(a, b model.Transaction) int { return a.Date.Compare(b.Date) }

func compareAmountDesc(a, b model.Transaction) int { return b.Amount.Cmp(a.Amount) }

// Sort reorders the store. Equal keys keep their relative order.
// Indices reported before the call no longer apply.
func (s *Store) Sort(key SortKey) {
	cmpFn := compareDate
	if key == ByAmountDescending {
		cmpFn = compareAmountDesc
	}
	slices.SortStableFunc(s.records, cmpFn)
}

// Field selects what Search matches against.
type Field int

const (
	FieldCategory Field = iota
	FieldNote
	FieldDate
)

// ParseField accepts "category", "note" or "date".
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "category", "cat":
		return FieldCategory, nil
	case "note":
		return FieldNote, nil
	case "date":
		return FieldDate, nil
	default:
		return 0, fmt.Errorf("unknown search field %q (want category, note or date)", s)
	}
}

// Match is a record together with its current index.
type Match struct {
	Index       int
	Transaction model.Transaction
}

// Search dispatches to SearchText or, for FieldDate, parses query as
// YYYY-MM-DD and calls SearchDate.
func (s *Store) Search(field Field, query string) ([]Match, error) {
	if field != FieldDate {
		return s.SearchText(field, query), nil
	}
	d, err := model.ParseDate(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return s.SearchDate(d)
}

// SearchText returns records whose category or note contains text,
// ignoring case.
func (s *Store) SearchText(field Field, text string) []Match {
	needle := strings.ToLower(text)
	return s.filter(func(tx model.Transaction) bool {
		hay := tx.Category
		if field == FieldNote {
			hay = tx.Note
		}
		return strings.Contains(strings.ToLower(hay), needle)
	})
}

// SearchDate returns records dated exactly d.
func (s *Store) SearchDate(d model.Date) ([]Match, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, d)
	}
	return s.filter(func(tx model.Transaction) bool { return tx.Date == d }), nil
}

// FilterExpensesAbove returns expenses strictly greater than threshold.
func (s *Store) FilterExpensesAbove(threshold decimal.Decimal) []Match {
	return s.filter(func(tx model.Transaction) bool {
		return tx.Kind == model.Expense && tx.Amount.GreaterThan(threshold)
	})
}

func (s *Store) filter(keep func(model.Transaction) bool) []Match {
	var out []Match
	for i, tx := range s.records {
		if keep(tx) {
			out = append(out, Match{Index: i, Transaction: tx})
		}
	}
	return out
}

// Summary holds all-time totals.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Summary totals income and expense over the whole store.
func (s *Store) Summary() Summary {
	var sum Summary
	for _, tx := range s.records {
		if tx.Kind == model.Income {
			sum.Income = sum.Income.Add(tx.Amount)
		} else {
			sum.Expense = sum.Expense.Add(tx.Amount)
		}
	}
	sum.Net = sum.Income.Sub(sum.Expense)
	return sum
}

// MonthlyExpenseTotals sums expenses per month of year; index 0 is January.
func (s *Store) MonthlyExpenseTotals(year int) [12]decimal.Decimal {
	var totals [12]decimal.Decimal
	for _, tx := range s.records {
		if tx.Kind != model.Expense || tx.Date.Year != year {
			continue
		}
		if m := tx.Date.Month; m >= 1 && m <= 12 {
			totals[m-1] = totals[m-1].Add(tx.Amount)
		}
	}
	return totals
}

// MaxTotal returns the largest of totals.
func MaxTotal(totals [12]decimal.Decimal) decimal.Decimal {
	peak := decimal.Zero
	for _, t := range totals {
		peak = decimal.Max(peak, t)
	}
	return peak
}
