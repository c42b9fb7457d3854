package http

import (
	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *AuthHandler
	Catalog     *CatalogHandler
	Loan        *LoanHandler
	Reservation *ReservationHandler
	Member      *MemberHandler
}

// NewRouter wires all routes under /api/v1. Catalog reads are public;
// everything that acts on behalf of a member sits behind the auth
// middleware.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")

	api.HandleFunc("/books", h.Catalog.ListBooks).Methods("GET")
	api.HandleFunc("/books/search", h.Catalog.SearchBooks).Methods("GET")
	api.HandleFunc("/books/genres", h.Catalog.ListGenres).Methods("GET")
	api.HandleFunc("/books/authors", h.Catalog.ListAuthors).Methods("GET")
	api.HandleFunc("/books/{id:[0-9]+}", h.Catalog.GetBook).Methods("GET")
	api.HandleFunc("/books/{id:[0-9]+}/availability", h.Reservation.EstimateAvailability).Methods("GET")

	// Authenticated routes
	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Middleware)

	protected.HandleFunc("/books", h.Catalog.AddBook).Methods("POST")
	protected.HandleFunc("/books/{id:[0-9]+}", h.Catalog.UpdateBook).Methods("PUT")

	protected.HandleFunc("/loans", h.Loan.BorrowBook).Methods("POST")
	protected.HandleFunc("/loans", h.Loan.GetCurrentLoans).Methods("GET")
	protected.HandleFunc("/loans/history", h.Loan.GetLoanHistory).Methods("GET")
	protected.HandleFunc("/loans/overdue", h.Loan.GetOverdueLoans).Methods("GET")
	protected.HandleFunc("/loans/{id:[0-9]+}/return", h.Loan.ReturnBook).Methods("POST")
	protected.HandleFunc("/loans/{id:[0-9]+}/renew", h.Loan.RenewLoan).Methods("POST")

	protected.HandleFunc("/reservations", h.Reservation.ReserveBook).Methods("POST")
	protected.HandleFunc("/reservations", h.Reservation.GetReservationQueue).Methods("GET")
	protected.HandleFunc("/reservations/{id:[0-9]+}", h.Reservation.CancelReservation).Methods("DELETE")

	protected.HandleFunc("/profile", h.Member.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", h.Member.UpdateProfile).Methods("PUT")

	return router
}
