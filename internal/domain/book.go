package domain

import "time"

type BookAvailability string

const (
	BookAvailable   BookAvailability = "available"
	BookUnavailable BookAvailability = "unavailable"
)

type Book struct {
	ID              int32     `json:"id"`
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Genre           string    `json:"genre"`
	PublicationYear int32     `json:"publication_year"`
	CoverURL        string    `json:"cover_url"`
	TotalCopies     int32     `json:"total_copies"`
	AvailableCopies int32     `json:"available_copies"`
	Description     string    `json:"description"`
	CreatedOn       time.Time `json:"created_on"`
	UpdatedOn       time.Time `json:"updated_on"`
}

// BookFilters narrows a catalog search. Zero values mean "no filter".
// Availability matches the copy count: available means > 0, unavailable
// means exactly 0.
type BookFilters struct {
	Genre        string
	Author       string
	Availability BookAvailability
}
