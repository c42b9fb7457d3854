package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/repository"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `id, member_id, book_id, borrow_date, due_date, return_date, status, late_fee_cents, created_on, updated_on`

func scanLoan(row interface{ Scan(...any) error }, l *domain.Loan) error {
	return row.Scan(&l.ID, &l.MemberID, &l.BookID, &l.BorrowDate, &l.DueDate, &l.ReturnDate, &l.Status, &l.LateFeeCents, &l.CreatedOn, &l.UpdatedOn)
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	l := &domain.Loan{}
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	err := scanLoan(r.db.QueryRowContext(ctx, query, id), l)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Borrow creates the loan and takes the copy in one transaction. The copy
// decrement is the authoritative availability gate: if it does not fire,
// no loan is created.
func (r *loanRepository) Borrow(ctx context.Context, loan *domain.Loan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	gate := `UPDATE books SET available_copies = available_copies - 1, updated_on = $1 WHERE id = $2 AND available_copies > 0`
	result, err := tx.ExecContext(ctx, gate, time.Now(), loan.BookID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, loan.BookID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrUnavailable
	}

	insert := `INSERT INTO loans (member_id, book_id, borrow_date, due_date, status, late_fee_cents, created_on, updated_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := tx.QueryRowContext(ctx, insert, loan.MemberID, loan.BookID, loan.BorrowDate, loan.DueDate, loan.Status, loan.LateFeeCents, time.Now(), time.Now()).Scan(&loan.ID); err != nil {
		return err
	}

	return tx.Commit()
}

// Return persists the returned loan and gives the copy back in one
// transaction. The increment is gated on available_copies < total_copies;
// if the gate does not fire the copy counts have drifted, the whole
// return is rolled back and domain.ErrCopyCount surfaces to the caller.
func (r *loanRepository) Return(ctx context.Context, loan *domain.Loan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	update := `UPDATE loans SET status = $1, return_date = $2, late_fee_cents = $3, updated_on = $4 WHERE id = $5`
	if _, err := tx.ExecContext(ctx, update, loan.Status, loan.ReturnDate, loan.LateFeeCents, time.Now(), loan.ID); err != nil {
		return err
	}

	give := `UPDATE books SET available_copies = available_copies + 1, updated_on = $1 WHERE id = $2 AND available_copies < total_copies`
	result, err := tx.ExecContext(ctx, give, time.Now(), loan.BookID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCopyCount
	}

	return tx.Commit()
}

func (r *loanRepository) Renew(ctx context.Context, loan *domain.Loan) error {
	query := `UPDATE loans SET due_date = $1, updated_on = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, loan.DueDate, time.Now(), loan.ID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *loanRepository) ListActiveByMember(ctx context.Context, memberID int32) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE member_id = $1 AND status = $2 ORDER BY due_date`
	return r.list(ctx, query, memberID, domain.LoanStatusActive)
}

func (r *loanRepository) ListByMember(ctx context.Context, memberID int32) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE member_id = $1 ORDER BY borrow_date DESC`
	return r.list(ctx, query, memberID)
}

func (r *loanRepository) ListOverdueByMember(ctx context.Context, memberID int32, now time.Time) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE member_id = $1 AND status = $2 AND due_date < $3 ORDER BY due_date`
	return r.list(ctx, query, memberID, domain.LoanStatusActive, now)
}

func (r *loanRepository) ListAllOverdue(ctx context.Context, now time.Time) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE status = $1 AND due_date < $2 ORDER BY due_date`
	return r.list(ctx, query, domain.LoanStatusActive, now)
}

func (r *loanRepository) EarliestActiveDueDate(ctx context.Context, bookID int32) (*time.Time, error) {
	query := `SELECT MIN(due_date) FROM loans WHERE book_id = $1 AND status = $2`
	var due sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, bookID, domain.LoanStatusActive).Scan(&due); err != nil {
		return nil, err
	}
	if !due.Valid {
		return nil, nil
	}
	return &due.Time, nil
}

func (r *loanRepository) MemberLoanStats(ctx context.Context, memberID int32) (active, total, finesOwedCents int32, err error) {
	query := `SELECT
	            COUNT(*) FILTER (WHERE status = 'ACTIVE'),
	            COUNT(*),
	            COALESCE(SUM(late_fee_cents), 0)
	          FROM loans WHERE member_id = $1`
	err = r.db.QueryRowContext(ctx, query, memberID).Scan(&active, &total, &finesOwedCents)
	return active, total, finesOwedCents, err
}

func (r *loanRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		if err := scanLoan(rows, &l); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
