package handlers

import (
	"net/http"

	"github.com/dom/staybook/internal/api/middleware"
	"github.com/dom/staybook/internal/domain"
	"github.com/dom/staybook/internal/service"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRequest is the body of POST /bookings. It has no user field on
// purpose: the booking always belongs to the caller.
type BookingRequest struct {
	Place          string   `json:"place" validate:"required"`
	CheckIn        flexTime `json:"checkIn" validate:"required"`
	CheckOut       flexTime `json:"checkOut" validate:"required"`
	NumberOfGuests flexInt  `json:"numberOfGuests" validate:"min=0"`
	Name           string   `json:"name" validate:"required"`
	Phone          string   `json:"phone" validate:"required"`
	Price          flexInt  `json:"price" validate:"min=0"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req BookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	placeID, err := uuid.Parse(req.Place)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid place id")
		return
	}

	booking, err := h.bookingService.Create(r.Context(), userID, domain.BookingInput{
		PlaceID:        placeID,
		CheckIn:        req.CheckIn.Time,
		CheckOut:       req.CheckOut.Time,
		NumberOfGuests: int(req.NumberOfGuests),
		Name:           req.Name,
		Phone:          req.Phone,
		Price:          int(req.Price),
	})
	if err != nil {
		writeServiceError(w, r, "booking.Create", err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookings, err := h.bookingService.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "booking.List", err)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}

	writeJSON(w, http.StatusOK, bookings)
}
