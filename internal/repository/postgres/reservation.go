package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/repository"
	"openshelf-backend/internal/utils"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, member_id, book_id, reservation_date, queue_position, estimated_availability, status, created_on, updated_on`

func scanReservation(row interface{ Scan(...any) error }, res *domain.Reservation) error {
	return row.Scan(&res.ID, &res.MemberID, &res.BookID, &res.ReservationDate, &res.Position, &res.EstimatedAvailability, &res.Status, &res.CreatedOn, &res.UpdatedOn)
}

// Create assigns position = active count + 1 and inserts in one
// transaction, so two concurrent reservations for the same book cannot
// claim the same slot. Positions of existing entries are never touched.
func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	count := `SELECT COUNT(*) FROM reservations WHERE book_id = $1 AND status = $2`
	var active int32
	if err := tx.QueryRowContext(ctx, count, res.BookID, domain.ReservationStatusActive).Scan(&active); err != nil {
		return err
	}
	res.Position = active + 1

	// The stored estimate is the linear heuristic tied to the assigned
	// position, so it is settled here alongside the position itself.
	if res.EstimatedAvailability.IsZero() {
		res.EstimatedAvailability = utils.QueueEstimate(res.ReservationDate, res.Position)
	}

	insert := `INSERT INTO reservations (member_id, book_id, reservation_date, queue_position, estimated_availability, status, created_on, updated_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := tx.QueryRowContext(ctx, insert, res.MemberID, res.BookID, res.ReservationDate, res.Position, res.EstimatedAvailability, res.Status, time.Now(), time.Now()).Scan(&res.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := scanReservation(r.db.QueryRowContext(ctx, query, id), res)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations SET status = $1, updated_on = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, res.Status, time.Now(), res.ID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reservationRepository) ListActiveByMember(ctx context.Context, memberID int32) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE member_id = $1 AND status = $2 ORDER BY reservation_date`
	rows, err := r.db.QueryContext(ctx, query, memberID, domain.ReservationStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) CountActiveByBook(ctx context.Context, bookID int32) (int32, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE book_id = $1 AND status = $2`
	var count int32
	err := r.db.QueryRowContext(ctx, query, bookID, domain.ReservationStatusActive).Scan(&count)
	return count, err
}
