package service

import (
	"context"
	"fmt"
	"time"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/repository"
	"openshelf-backend/internal/utils"
)

type loanService struct {
	loanRepo   repository.LoanRepository
	memberRepo repository.MemberRepository
	now        func() time.Time
}

func NewLoanService(loanRepo repository.LoanRepository, memberRepo repository.MemberRepository) LoanService {
	return &loanService{
		loanRepo:   loanRepo,
		memberRepo: memberRepo,
		now:        time.Now,
	}
}

// BorrowBook opens a 14-day loan. The copy decrement and the loan insert
// happen in one repository transaction; if the book has no available
// copies the gate fails with domain.ErrUnavailable and nothing is written.
func (s *loanService) BorrowBook(ctx context.Context, bookID, memberID int32) (*domain.Loan, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, fmt.Errorf("member %d: %w", memberID, err)
	}

	now := s.now()
	loan := &domain.Loan{
		MemberID:     memberID,
		BookID:       bookID,
		BorrowDate:   now,
		DueDate:      now.AddDate(0, 0, utils.LoanPeriodDays),
		Status:       domain.LoanStatusActive,
		LateFeeCents: 0,
	}

	if err := s.loanRepo.Borrow(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// ReturnBook closes the loan. The late fee is a pure function of the due
// date and the return instant: 50 cents per whole day late, zero when the
// return is not strictly after the due date. Returning twice is rejected.
func (s *loanService) ReturnBook(ctx context.Context, loanID int32) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.LoanStatusActive {
		return nil, fmt.Errorf("loan %d already returned: %w", loanID, domain.ErrInvalidState)
	}

	returnDate := s.now()
	loan.ReturnDate = &returnDate
	loan.Status = domain.LoanStatusReturned
	loan.LateFeeCents = utils.LateFeeCents(loan.DueDate, returnDate)

	if err := s.loanRepo.Return(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// RenewLoan pushes the due date out by another loan period. Renewal is
// open-ended: any number of renewals is allowed as long as each one
// happens while the loan is active and not yet overdue.
func (s *loanService) RenewLoan(ctx context.Context, loanID int32) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.LoanStatusActive {
		return nil, fmt.Errorf("loan %d is not active: %w", loanID, domain.ErrInvalidState)
	}
	if s.now().After(loan.DueDate) {
		return nil, fmt.Errorf("loan %d: %w", loanID, domain.ErrOverdue)
	}

	loan.DueDate = loan.DueDate.AddDate(0, 0, utils.LoanPeriodDays)
	if err := s.loanRepo.Renew(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

func (s *loanService) GetCurrentLoans(ctx context.Context, memberID int32) ([]domain.Loan, error) {
	return s.loanRepo.ListActiveByMember(ctx, memberID)
}

func (s *loanService) GetLoanHistory(ctx context.Context, memberID int32) ([]domain.Loan, error) {
	return s.loanRepo.ListByMember(ctx, memberID)
}

func (s *loanService) GetOverdueLoans(ctx context.Context, memberID int32) ([]domain.Loan, error) {
	return s.loanRepo.ListOverdueByMember(ctx, memberID, s.now())
}
