package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, name, email, COALESCE(phone_number, ''), COALESCE(address, ''), password_hash, member_since, created_on, updated_on`

func scanMember(row interface{ Scan(...any) error }, m *domain.Member) error {
	return row.Scan(&m.ID, &m.Name, &m.Email, &m.PhoneNumber, &m.Address, &m.PasswordHash, &m.MemberSince, &m.CreatedOn, &m.UpdatedOn)
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (name, email, phone_number, address, password_hash, member_since, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.Name, m.Email, m.PhoneNumber, m.Address, m.PasswordHash, m.MemberSince, time.Now(), time.Now()).Scan(&m.ID)
}

func (r *memberRepository) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	m := &domain.Member{}
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	err := scanMember(r.db.QueryRowContext(ctx, query, id), m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	m := &domain.Member{}
	query := `SELECT ` + memberColumns + ` FROM members WHERE email = $1`
	err := scanMember(r.db.QueryRowContext(ctx, query, email), m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members SET name=$1, phone_number=$2, address=$3, updated_on=$4 WHERE id=$5`
	result, err := r.db.ExecContext(ctx, query, m.Name, m.PhoneNumber, m.Address, time.Now(), m.ID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
