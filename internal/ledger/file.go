package ledger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFile replaces the store content with the records in path. When the
// file cannot be read the store is left empty and the returned error wraps
// ErrIO and the underlying cause, so errors.Is(err, fs.ErrNotExist) works.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		s.Replace(nil)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	records, err := Decode(bytes.NewReader(data), s.capacity)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}
	s.Replace(records)
	return nil
}

// SaveFile writes every record to path in one pass.
func (s *Store) SaveFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: creating data dir: %w", ErrIO, err)
		}
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s.records); err != nil {
		return fmt.Errorf("%w: encoding: %w", ErrIO, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
