package http

import (
	"encoding/json"
	"net/http"
	"time"

	"openshelf-backend/internal/service"
)

type ReservationHandler struct {
	reservationSvc service.ReservationService
}

func NewReservationHandler(reservationSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

type reserveRequest struct {
	BookID int32 `json:"book_id" validate:"required,gt=0"`
}

func (h *ReservationHandler) ReserveBook(w http.ResponseWriter, r *http.Request) {
	var req reserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	res, err := h.reservationSvc.ReserveBook(r.Context(), req.BookID, memberIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondValidationError(w, err)
		return
	}
	res, err := h.reservationSvc.CancelReservation(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) GetReservationQueue(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservationSvc.GetReservationQueue(r.Context(), memberIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}

type availabilityResponse struct {
	BookID                int32     `json:"book_id"`
	EstimatedAvailability time.Time `json:"estimated_availability"`
}

func (h *ReservationHandler) EstimateAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondValidationError(w, err)
		return
	}
	estimate, err := h.reservationSvc.EstimateAvailability(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, availabilityResponse{BookID: id, EstimatedAvailability: estimate})
}
