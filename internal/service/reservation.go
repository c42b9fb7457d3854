package service

import (
	"context"
	"fmt"
	"time"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/repository"
	"openshelf-backend/internal/utils"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	loanRepo        repository.LoanRepository
	bookRepo        repository.BookRepository
	now             func() time.Time
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	loanRepo repository.LoanRepository,
	bookRepo repository.BookRepository,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		loanRepo:        loanRepo,
		bookRepo:        bookRepo,
		now:             time.Now,
	}
}

// ReserveBook appends the member to the book's waitlist. The estimate
// written on the reservation is the position×7-days heuristic, not the
// due-date-based one EstimateAvailability computes; the two are separate
// estimators and must stay that way.
func (s *reservationService) ReserveBook(ctx context.Context, bookID, memberID int32) (*domain.Reservation, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, fmt.Errorf("book %d: %w", bookID, err)
	}

	res := &domain.Reservation{
		MemberID:        memberID,
		BookID:          bookID,
		ReservationDate: s.now(),
		Status:          domain.ReservationStatusActive,
	}

	// Position and the position-derived estimate are assigned inside the
	// repository transaction together with the insert.
	if err := s.reservationRepo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// CancelReservation marks the entry cancelled. Later positions are NOT
// shifted up; the gap stays. Compacting the queue on cancellation is an
// open product question and deliberately not done here.
func (s *reservationService) CancelReservation(ctx context.Context, reservationID int32) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusActive {
		return nil, fmt.Errorf("reservation %d already cancelled: %w", reservationID, domain.ErrInvalidState)
	}

	res.Status = domain.ReservationStatusCancelled
	if err := s.reservationRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *reservationService) GetReservationQueue(ctx context.Context, memberID int32) ([]domain.Reservation, error) {
	return s.reservationRepo.ListActiveByMember(ctx, memberID)
}

// EstimateAvailability is the display-side estimator: earliest active due
// date (at least one day out) plus a week per queued reservation, one week
// flat when no copy is out. It never writes back to stored reservations.
func (s *reservationService) EstimateAvailability(ctx context.Context, bookID int32) (time.Time, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return time.Time{}, fmt.Errorf("book %d: %w", bookID, err)
	}

	earliestDue, err := s.loanRepo.EarliestActiveDueDate(ctx, bookID)
	if err != nil {
		return time.Time{}, err
	}
	queueLen, err := s.reservationRepo.CountActiveByBook(ctx, bookID)
	if err != nil {
		return time.Time{}, err
	}

	return utils.AvailabilityEstimate(s.now(), earliestDue, queueLen), nil
}
