package service

import (
	"context"
	"fmt"
	"strings"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/logger"
	"openshelf-backend/internal/repository"
)

type catalogService struct {
	bookRepo repository.BookRepository
}

func NewCatalogService(bookRepo repository.BookRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo}
}

func (s *catalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.bookRepo.List(ctx)
}

func (s *catalogService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *catalogService) SearchBooks(ctx context.Context, query string, filters domain.BookFilters) ([]domain.Book, error) {
	return s.bookRepo.Search(ctx, strings.TrimSpace(query), filters)
}

func (s *catalogService) ListGenres(ctx context.Context) ([]string, error) {
	return s.bookRepo.ListGenres(ctx)
}

func (s *catalogService) ListAuthors(ctx context.Context) ([]string, error) {
	return s.bookRepo.ListAuthors(ctx)
}

func (s *catalogService) AddBook(ctx context.Context, book *domain.Book) error {
	if book.TotalCopies < 0 {
		return fmt.Errorf("%w: total copies must not be negative", domain.ErrInvalidState)
	}
	if book.AvailableCopies == 0 {
		book.AvailableCopies = book.TotalCopies
	}
	if book.AvailableCopies > book.TotalCopies {
		return fmt.Errorf("%w: available copies exceed total", domain.ErrInvalidState)
	}
	return s.bookRepo.Create(ctx, book)
}

func (s *catalogService) UpdateBook(ctx context.Context, book *domain.Book) error {
	if book.AvailableCopies < 0 || book.AvailableCopies > book.TotalCopies {
		return fmt.Errorf("%w: available copies out of range", domain.ErrInvalidState)
	}
	return s.bookRepo.Update(ctx, book)
}

func (s *catalogService) BorrowCopy(ctx context.Context, id int32) (*domain.Book, error) {
	if err := s.bookRepo.DecrementAvailable(ctx, id); err != nil {
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, id)
}

func (s *catalogService) ReturnCopy(ctx context.Context, id int32) (*domain.Book, error) {
	if err := s.bookRepo.IncrementAvailable(ctx, id); err != nil {
		// A clamped increment means some copy was returned that was never
		// checked out; surface it, the counts need operator attention.
		logger.ErrorContext(ctx, "Copy count invariant violated on return", "book_id", id, "error", err)
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, id)
}
