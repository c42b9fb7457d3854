package domain

import "errors"

// Failure kinds the core can report. Services wrap these with context via
// fmt.Errorf("...: %w", ...); callers match with errors.Is.
var (
	// ErrNotFound means a referenced book, loan, reservation or member id
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable means a borrow was attempted with no copies left.
	ErrUnavailable = errors.New("no copies available")

	// ErrInvalidState means the operation is illegal for the record's
	// current status, e.g. returning an already-returned loan.
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrOverdue means a renewal was blocked because the due date has passed.
	ErrOverdue = errors.New("loan is overdue")

	// ErrCopyCount means a copy-count mutation would have pushed
	// available_copies past total_copies. The increment is clamped and the
	// violation surfaced instead of silently absorbed.
	ErrCopyCount = errors.New("available copies exceed total copies")
)
