package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation is one entry in a book's waitlist. Position is assigned once
// at creation time (active count + 1) and never renumbered afterwards, so
// cancellations leave gaps in the sequence.
type Reservation struct {
	ID                    int32             `json:"id"`
	MemberID              int32             `json:"member_id"`
	BookID                int32             `json:"book_id"`
	ReservationDate       time.Time         `json:"reservation_date"`
	Position              int32             `json:"position"`
	EstimatedAvailability time.Time         `json:"estimated_availability"`
	Status                ReservationStatus `json:"status"`
	CreatedOn             time.Time         `json:"created_on"`
	UpdatedOn             time.Time         `json:"updated_on"`
}
