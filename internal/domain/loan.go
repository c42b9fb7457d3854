package domain

import "time"

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "ACTIVE"
	LoanStatusReturned LoanStatus = "RETURNED"
)

// Loan records one member borrowing one copy of a book for a bounded
// period. Return date and late fee are set only when the loan transitions to
// RETURNED; the due date only moves via renewal while the loan is active
// and not yet overdue.
type Loan struct {
	ID           int32      `json:"id"`
	MemberID     int32      `json:"member_id"`
	BookID       int32      `json:"book_id"`
	BorrowDate   time.Time  `json:"borrow_date"`
	DueDate      time.Time  `json:"due_date"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	Status       LoanStatus `json:"status"`
	LateFeeCents int32      `json:"late_fee_cents"`
	CreatedOn    time.Time  `json:"created_on"`
	UpdatedOn    time.Time  `json:"updated_on"`
}

// IsOverdue reports whether the loan is active and past due at the given
// instant. Overdue is derived state, never stored.
func (l *Loan) IsOverdue(now time.Time) bool {
	return l.Status == LoanStatusActive && now.After(l.DueDate)
}
