package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"openshelf-backend/internal/domain"
)

func newReservationServiceForTest(resRepo *MockReservationRepo, loanRepo *MockLoanRepo, bookRepo *MockBookRepo) *reservationService {
	return &reservationService{
		reservationRepo: resRepo,
		loanRepo:        loanRepo,
		bookRepo:        bookRepo,
		now:             func() time.Time { return fixedNow },
	}
}

func TestReservationService_ReserveBook(t *testing.T) {
	ctx := context.Background()
	bookID := int32(42)
	memberID := int32(7)
	book := &domain.Book{ID: bookID, Title: "Dune", AvailableCopies: 0, TotalCopies: 2}

	t.Run("Success", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		bookRepo := new(MockBookRepo)
		svc := newReservationServiceForTest(resRepo, new(MockLoanRepo), bookRepo)

		bookRepo.On("GetByID", ctx, bookID).Return(book, nil)
		resRepo.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).
			Run(func(args mock.Arguments) {
				// The repository assigns position and estimate inside its
				// transaction; emulate that here.
				r := args.Get(1).(*domain.Reservation)
				r.ID = 1
				r.Position = 3
				r.EstimatedAvailability = r.ReservationDate.AddDate(0, 0, 21)
			}).
			Return(nil)

		res, err := svc.ReserveBook(ctx, bookID, memberID)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusActive, res.Status)
		assert.Equal(t, fixedNow, res.ReservationDate)
		assert.Equal(t, int32(3), res.Position)
		assert.Equal(t, fixedNow.AddDate(0, 0, 21), res.EstimatedAvailability)
	})

	t.Run("Unknown Book", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		bookRepo := new(MockBookRepo)
		svc := newReservationServiceForTest(resRepo, new(MockLoanRepo), bookRepo)

		bookRepo.On("GetByID", ctx, bookID).Return(nil, domain.ErrNotFound)

		res, err := svc.ReserveBook(ctx, bookID, memberID)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		resRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReservationService_CancelReservation(t *testing.T) {
	ctx := context.Background()
	resID := int32(9)

	t.Run("Success Keeps Position", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		svc := newReservationServiceForTest(resRepo, new(MockLoanRepo), new(MockBookRepo))

		resRepo.On("GetByID", ctx, resID).Return(&domain.Reservation{
			ID: resID, BookID: 42, Position: 2, Status: domain.ReservationStatusActive,
		}, nil)
		resRepo.On("Update", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		res, err := svc.CancelReservation(ctx, resID)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusCancelled, res.Status)
		// Positions behind the cancelled entry are left alone
		assert.Equal(t, int32(2), res.Position)
	})

	t.Run("Already Cancelled", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		svc := newReservationServiceForTest(resRepo, new(MockLoanRepo), new(MockBookRepo))

		resRepo.On("GetByID", ctx, resID).Return(&domain.Reservation{
			ID: resID, Status: domain.ReservationStatusCancelled,
		}, nil)

		res, err := svc.CancelReservation(ctx, resID)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		resRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestReservationService_EstimateAvailability(t *testing.T) {
	ctx := context.Background()
	bookID := int32(42)
	book := &domain.Book{ID: bookID, Title: "Dune"}

	t.Run("No Active Loans", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		loanRepo := new(MockLoanRepo)
		bookRepo := new(MockBookRepo)
		svc := newReservationServiceForTest(resRepo, loanRepo, bookRepo)

		bookRepo.On("GetByID", ctx, bookID).Return(book, nil)
		loanRepo.On("EarliestActiveDueDate", ctx, bookID).Return(nil, nil)
		resRepo.On("CountActiveByBook", ctx, bookID).Return(int32(0), nil)

		est, err := svc.EstimateAvailability(ctx, bookID)
		assert.NoError(t, err)
		assert.Equal(t, fixedNow.AddDate(0, 0, 7), est)
	})

	t.Run("Due Date Plus Queue", func(t *testing.T) {
		resRepo := new(MockReservationRepo)
		loanRepo := new(MockLoanRepo)
		bookRepo := new(MockBookRepo)
		svc := newReservationServiceForTest(resRepo, loanRepo, bookRepo)

		due := fixedNow.AddDate(0, 0, 5)
		bookRepo.On("GetByID", ctx, bookID).Return(book, nil)
		loanRepo.On("EarliestActiveDueDate", ctx, bookID).Return(&due, nil)
		resRepo.On("CountActiveByBook", ctx, bookID).Return(int32(2), nil)

		est, err := svc.EstimateAvailability(ctx, bookID)
		assert.NoError(t, err)
		assert.Equal(t, fixedNow.AddDate(0, 0, 19), est)
	})

	t.Run("Differs From Stored Reservation Estimate", func(t *testing.T) {
		// A reservation stored at position 1 carries now+7d, while the
		// display estimate follows the actual due date. Both answers are
		// correct for their surface.
		resRepo := new(MockReservationRepo)
		loanRepo := new(MockLoanRepo)
		bookRepo := new(MockBookRepo)
		svc := newReservationServiceForTest(resRepo, loanRepo, bookRepo)

		due := fixedNow.AddDate(0, 0, 2)
		bookRepo.On("GetByID", ctx, bookID).Return(book, nil)
		loanRepo.On("EarliestActiveDueDate", ctx, bookID).Return(&due, nil)
		resRepo.On("CountActiveByBook", ctx, bookID).Return(int32(0), nil)

		est, err := svc.EstimateAvailability(ctx, bookID)
		assert.NoError(t, err)
		assert.Equal(t, fixedNow.AddDate(0, 0, 2), est)
		assert.NotEqual(t, fixedNow.AddDate(0, 0, 7), est)
	})
}
