// Package store provides a SQLite archive of the ledger.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Archive is a SQLite database holding one snapshot of the ledger.
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveAll replaces the archived records with records, keeping their order.
func (a *Archive) SaveAll(records []model.Transaction) error {
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO transactions
		(position, year, month, day, kind, category, amount, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		_, err := stmt.Exec(i, r.Date.Year, r.Date.Month, r.Date.Day, r.Kind.Flag(),
			r.Category, r.Amount.String(), r.Note)
		if err != nil {
			return fmt.Errorf("archiving record %d: %w", i, err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec("INSERT INTO snapshots (saved_at, records) VALUES (?, ?)", now, len(records)); err != nil {
		return err
	}

	return tx.Commit()
}

// LoadAll reads the archived records in their saved order. Text fields are
// sanitized like the text format does, and rows with an empty category,
// an invalid date or a negative amount are skipped.
func (a *Archive) LoadAll() ([]model.Transaction, error) {
	rows, err := a.db.Query(`SELECT year, month, day, kind, category, amount, note
		FROM transactions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var (
			r         model.Transaction
			kind      int
			amountStr string
		)
		if err := rows.Scan(&r.Date.Year, &r.Date.Month, &r.Date.Day, &kind,
			&r.Category, &amountStr, &r.Note); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil || amount.IsNegative() || !r.Date.Valid() || r.Category == "" {
			continue
		}
		r.Category = model.SanitizeText(r.Category, model.MaxCategoryLen)
		r.Note = model.SanitizeText(r.Note, model.MaxNoteLen)
		r.Kind = model.KindFromFlag(kind)
		r.Amount = amount
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of archived records.
func (a *Archive) Count() (int, error) {
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}

// LastSaved returns when the archive was last written, or the zero time.
func (a *Archive) LastSaved() (time.Time, error) {
	var savedAt string
	err := a.db.QueryRow("SELECT saved_at FROM snapshots ORDER BY id DESC LIMIT 1").Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, savedAt)
}
