package handlers

import (
	"net/http"

	"hotelbooking/internal/models"
	"hotelbooking/internal/service"
)

func (h *Handlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.BookingService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, bookings, http.StatusOK)
}

func (h *Handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgBookingAbsent, http.StatusNotFound)
		return
	}

	booking, err := h.BookingService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, booking, http.StatusOK)
}

func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.Booking
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.BookingService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, booking, http.StatusCreated)
}

// UpdateBooking replaces the whole booking; fields missing from the body are cleared.
func (h *Handlers) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgBookingAbsent, http.StatusNotFound)
		return
	}

	var req models.Booking
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.BookingService.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, booking, http.StatusOK)
}

func (h *Handlers) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgBookingAbsent, http.StatusNotFound)
		return
	}

	if err := h.BookingService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, DeleteResponse{ID: id}, http.StatusOK)
}
