package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

const bookColumns = `id, isbn, title, author, genre, publication_year, COALESCE(cover_url, ''), total_copies, available_copies, COALESCE(description, ''), created_on, updated_on`

func scanBook(row interface{ Scan(...any) error }, b *domain.Book) error {
	return row.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Genre, &b.PublicationYear, &b.CoverURL, &b.TotalCopies, &b.AvailableCopies, &b.Description, &b.CreatedOn, &b.UpdatedOn)
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (isbn, title, author, genre, publication_year, cover_url, total_copies, available_copies, description, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.ISBN, b.Title, b.Author, b.Genre, b.PublicationYear, b.CoverURL, b.TotalCopies, b.AvailableCopies, b.Description, time.Now(), time.Now()).Scan(&b.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	err := scanBook(r.db.QueryRowContext(ctx, query, id), b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET isbn=$1, title=$2, author=$3, genre=$4, publication_year=$5, cover_url=$6, total_copies=$7, available_copies=$8, description=$9, updated_on=$10 WHERE id=$11`
	result, err := r.db.ExecContext(ctx, query, b.ISBN, b.Title, b.Author, b.Genre, b.PublicationYear, b.CoverURL, b.TotalCopies, b.AvailableCopies, b.Description, time.Now(), b.ID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *bookRepository) Search(ctx context.Context, query string, filters domain.BookFilters) ([]domain.Book, error) {
	sqlQuery := `SELECT ` + bookColumns + ` FROM books WHERE 1=1`

	var args []interface{}
	argIdx := 1

	// Free-text query: case-insensitive substring over title, author and
	// genre, OR semantics across the three fields.
	if query != "" {
		sqlQuery += fmt.Sprintf(" AND (title ILIKE $%d OR author ILIKE $%d OR genre ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+query+"%")
		argIdx++
	}

	// Filters AND with the query match.
	if filters.Genre != "" {
		sqlQuery += fmt.Sprintf(" AND genre = $%d", argIdx)
		args = append(args, filters.Genre)
		argIdx++
	}
	if filters.Author != "" {
		sqlQuery += fmt.Sprintf(" AND author = $%d", argIdx)
		args = append(args, filters.Author)
		argIdx++
	}
	switch filters.Availability {
	case domain.BookAvailable:
		sqlQuery += " AND available_copies > 0"
	case domain.BookUnavailable:
		sqlQuery += " AND available_copies = 0"
	}

	sqlQuery += " ORDER BY title"

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *bookRepository) ListGenres(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, `SELECT DISTINCT genre FROM books ORDER BY genre`)
}

func (r *bookRepository) ListAuthors(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, `SELECT DISTINCT author FROM books ORDER BY author`)
}

func (r *bookRepository) listDistinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// DecrementAvailable is the availability gate: the WHERE clause refuses to
// take the last-plus-one copy, so zero affected rows means either an
// unknown book or none left.
func (r *bookRepository) DecrementAvailable(ctx context.Context, id int32) error {
	query := `UPDATE books SET available_copies = available_copies - 1, updated_on = $1 WHERE id = $2 AND available_copies > 0`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrUnavailable
	}
	return nil
}

// IncrementAvailable gives a copy back. The WHERE clause clamps at
// total_copies; a clamped increment means the copy counts drifted and is
// surfaced as domain.ErrCopyCount rather than silently absorbed.
func (r *bookRepository) IncrementAvailable(ctx context.Context, id int32) error {
	query := `UPDATE books SET available_copies = available_copies + 1, updated_on = $1 WHERE id = $2 AND available_copies < total_copies`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrCopyCount
	}
	return nil
}
