package repository

import (
	"context"
	"time"

	"openshelf-backend/internal/domain"
)

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	List(ctx context.Context) ([]domain.Book, error)
	Search(ctx context.Context, query string, filters domain.BookFilters) ([]domain.Book, error)
	ListGenres(ctx context.Context) ([]string, error)
	ListAuthors(ctx context.Context) ([]string, error)

	// Copy-count bookkeeping. DecrementAvailable is the authoritative
	// availability gate: it fails with domain.ErrUnavailable when no copies
	// are left. IncrementAvailable clamps at total_copies and reports
	// domain.ErrCopyCount when the clamp fired.
	DecrementAvailable(ctx context.Context, id int32) error
	IncrementAvailable(ctx context.Context, id int32) error
}

type LoanRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	ListActiveByMember(ctx context.Context, memberID int32) ([]domain.Loan, error)
	ListByMember(ctx context.Context, memberID int32) ([]domain.Loan, error)
	ListOverdueByMember(ctx context.Context, memberID int32, now time.Time) ([]domain.Loan, error)
	ListAllOverdue(ctx context.Context, now time.Time) ([]domain.Loan, error)
	EarliestActiveDueDate(ctx context.Context, bookID int32) (*time.Time, error)

	// Borrow atomically gates on available copies, decrements the count and
	// inserts the loan in one transaction. Return atomically marks the loan
	// returned and gives the copy back. Renew extends the due date.
	Borrow(ctx context.Context, loan *domain.Loan) error
	Return(ctx context.Context, loan *domain.Loan) error
	Renew(ctx context.Context, loan *domain.Loan) error

	// Loan aggregates for the profile page.
	MemberLoanStats(ctx context.Context, memberID int32) (active, total, finesOwedCents int32, err error)
}

type ReservationRepository interface {
	// Create counts the book's active reservations and inserts the new
	// entry at position count+1 inside a single transaction.
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	ListActiveByMember(ctx context.Context, memberID int32) ([]domain.Reservation, error)
	CountActiveByBook(ctx context.Context, bookID int32) (int32, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id int32) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
}
