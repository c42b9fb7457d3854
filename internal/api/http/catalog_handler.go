package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}

func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalogSvc.ListBooks(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, books)
}

func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondValidationError(w, err)
		return
	}
	book, err := h.catalogSvc.GetBook(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}

func (h *CatalogHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.BookFilters{
		Genre:        q.Get("genre"),
		Author:       q.Get("author"),
		Availability: domain.BookAvailability(q.Get("availability")),
	}
	if filters.Availability != "" && filters.Availability != domain.BookAvailable && filters.Availability != domain.BookUnavailable {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "availability must be 'available' or 'unavailable'"})
		return
	}

	books, err := h.catalogSvc.SearchBooks(r.Context(), q.Get("q"), filters)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, books)
}

func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalogSvc.ListGenres(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, genres)
}

func (h *CatalogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.catalogSvc.ListAuthors(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, authors)
}

type bookRequest struct {
	ISBN            string `json:"isbn" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	Genre           string `json:"genre" validate:"required"`
	PublicationYear int32  `json:"publication_year"`
	CoverURL        string `json:"cover_url"`
	TotalCopies     int32  `json:"total_copies" validate:"gte=0"`
	AvailableCopies int32  `json:"available_copies" validate:"gte=0"`
	Description     string `json:"description"`
}

func (h *CatalogHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	book := &domain.Book{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		PublicationYear: req.PublicationYear,
		CoverURL:        req.CoverURL,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
		Description:     req.Description,
	}
	if err := h.catalogSvc.AddBook(r.Context(), book); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, book)
}

func (h *CatalogHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondValidationError(w, err)
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	book := &domain.Book{
		ID:              id,
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		PublicationYear: req.PublicationYear,
		CoverURL:        req.CoverURL,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
		Description:     req.Description,
	}
	if err := h.catalogSvc.UpdateBook(r.Context(), book); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}
