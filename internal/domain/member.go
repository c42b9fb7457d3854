package domain

import "time"

type Member struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	MemberSince  time.Time `json:"member_since"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// MemberProfile is the member record plus the loan aggregates the profile
// page shows. FinesOwedCents sums late fees across the member's returned
// loans.
type MemberProfile struct {
	Member         Member `json:"member"`
	ActiveLoans    int32  `json:"active_loans"`
	TotalLoans     int32  `json:"total_loans"`
	FinesOwedCents int32  `json:"fines_owed_cents"`
}
