package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"openshelf-backend/internal/domain"
)

func TestCatalogService_SearchBooks(t *testing.T) {
	ctx := context.Background()
	bookRepo := new(MockBookRepo)
	svc := NewCatalogService(bookRepo)

	filters := domain.BookFilters{Genre: "Sci-Fi", Availability: domain.BookAvailable}
	results := []domain.Book{{ID: 1, Title: "Dune", Genre: "Sci-Fi", AvailableCopies: 2}}

	// Whitespace around the query is stripped before it reaches the repo
	bookRepo.On("Search", ctx, "dune", filters).Return(results, nil)

	books, err := svc.SearchBooks(ctx, "  dune  ", filters)
	assert.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestCatalogService_AddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults Available To Total", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewCatalogService(bookRepo)

		bookRepo.On("Create", ctx, mock.AnythingOfType("*domain.Book")).Return(nil)

		book := &domain.Book{Title: "Dune", TotalCopies: 4}
		err := svc.AddBook(ctx, book)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), book.AvailableCopies)
	})

	t.Run("Rejects Available Above Total", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewCatalogService(bookRepo)

		err := svc.AddBook(ctx, &domain.Book{Title: "Dune", TotalCopies: 2, AvailableCopies: 5})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects Negative Total", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewCatalogService(bookRepo)

		err := svc.AddBook(ctx, &domain.Book{Title: "Dune", TotalCopies: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestCatalogService_BorrowCopy(t *testing.T) {
	ctx := context.Background()
	bookID := int32(1)

	t.Run("Success", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewCatalogService(bookRepo)

		bookRepo.On("DecrementAvailable", ctx, bookID).Return(nil)
		bookRepo.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, AvailableCopies: 1, TotalCopies: 2}, nil)

		book, err := svc.BorrowCopy(ctx, bookID)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), book.AvailableCopies)
	})

	t.Run("No Copies Left", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewCatalogService(bookRepo)

		bookRepo.On("DecrementAvailable", ctx, bookID).Return(domain.ErrUnavailable)

		book, err := svc.BorrowCopy(ctx, bookID)
		assert.Nil(t, book)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestCatalogService_ReturnCopy(t *testing.T) {
	ctx := context.Background()
	bookID := int32(1)

	t.Run("Clamp Violation Surfaces", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewCatalogService(bookRepo)

		bookRepo.On("IncrementAvailable", ctx, bookID).Return(domain.ErrCopyCount)

		book, err := svc.ReturnCopy(ctx, bookID)
		assert.Nil(t, book)
		assert.ErrorIs(t, err, domain.ErrCopyCount)
		bookRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
