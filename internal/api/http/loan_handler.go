package http

import (
	"encoding/json"
	"net/http"

	"openshelf-backend/internal/service"
)

type LoanHandler struct {
	loanSvc service.LoanService
}

func NewLoanHandler(loanSvc service.LoanService) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc}
}

type borrowRequest struct {
	BookID int32 `json:"book_id" validate:"required,gt=0"`
}

func (h *LoanHandler) BorrowBook(w http.ResponseWriter, r *http.Request) {
	var req borrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	loan, err := h.loanSvc.BorrowBook(r.Context(), req.BookID, memberIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, loan)
}

func (h *LoanHandler) ReturnBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondValidationError(w, err)
		return
	}
	loan, err := h.loanSvc.ReturnBook(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) RenewLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondValidationError(w, err)
		return
	}
	loan, err := h.loanSvc.RenewLoan(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) GetCurrentLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanSvc.GetCurrentLoans(r.Context(), memberIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) GetLoanHistory(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanSvc.GetLoanHistory(r.Context(), memberIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) GetOverdueLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanSvc.GetOverdueLoans(r.Context(), memberIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loans)
}
