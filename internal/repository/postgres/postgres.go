package postgres

import (
	"database/sql"

	"openshelf-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookRepository
	repository.LoanRepository
	repository.ReservationRepository
	repository.MemberRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		BookRepository:        NewBookRepository(db),
		LoanRepository:        NewLoanRepository(db),
		ReservationRepository: NewReservationRepository(db),
		MemberRepository:      NewMemberRepository(db),
	}
}
