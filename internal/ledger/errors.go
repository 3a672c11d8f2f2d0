package ledger

import "errors"

// Errors returned by the store. Check them with errors.Is.
var (
	ErrCapacityExceeded = errors.New("ledger is full")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidDate      = errors.New("invalid date")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrIO               = errors.New("ledger file i/o failed")
)
