package service

import (
	"context"
	"time"

	"openshelf-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, address, password string) (*domain.Member, string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type CatalogService interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id int32) (*domain.Book, error)
	SearchBooks(ctx context.Context, query string, filters domain.BookFilters) ([]domain.Book, error)
	ListGenres(ctx context.Context) ([]string, error)
	ListAuthors(ctx context.Context) ([]string, error)
	AddBook(ctx context.Context, book *domain.Book) error
	UpdateBook(ctx context.Context, book *domain.Book) error

	// Copy-count bookkeeping, exposed for callers that manage loans
	// externally. The loan service composes these same mutations
	// transactionally instead of calling them.
	BorrowCopy(ctx context.Context, id int32) (*domain.Book, error)
	ReturnCopy(ctx context.Context, id int32) (*domain.Book, error)
}

type LoanService interface {
	BorrowBook(ctx context.Context, bookID, memberID int32) (*domain.Loan, error)
	ReturnBook(ctx context.Context, loanID int32) (*domain.Loan, error)
	RenewLoan(ctx context.Context, loanID int32) (*domain.Loan, error)
	GetCurrentLoans(ctx context.Context, memberID int32) ([]domain.Loan, error)
	GetLoanHistory(ctx context.Context, memberID int32) ([]domain.Loan, error)
	GetOverdueLoans(ctx context.Context, memberID int32) ([]domain.Loan, error)
}

type ReservationService interface {
	ReserveBook(ctx context.Context, bookID, memberID int32) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int32) (*domain.Reservation, error)
	GetReservationQueue(ctx context.Context, memberID int32) ([]domain.Reservation, error)
	EstimateAvailability(ctx context.Context, bookID int32) (time.Time, error)
}

type MemberService interface {
	GetProfile(ctx context.Context, memberID int32) (*domain.MemberProfile, error)
	UpdateProfile(ctx context.Context, memberID int32, name, phone, address string) (*domain.Member, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email, name, bookTitle string, dueDate time.Time, lateFeeCents int32) error
}
