package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/staybook/internal/api/middleware"
	"github.com/dom/staybook/internal/domain"
	"github.com/dom/staybook/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PlaceHandler struct {
	placeService *service.PlaceService
}

func NewPlaceHandler(placeService *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{placeService: placeService}
}

// PlaceRequest is the body of POST and PUT /places. Any owner field the
// client sends is ignored.
type PlaceRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	AddedPhotos []string `json:"addedPhotos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     flexInt  `json:"checkIn" validate:"min=0"`
	CheckOut    flexInt  `json:"checkOut" validate:"min=0"`
	MaxGuests   flexInt  `json:"maxGuests" validate:"min=0"`
	Price       flexInt  `json:"price" validate:"min=0"`
}

func (req PlaceRequest) input() domain.PlaceInput {
	return domain.PlaceInput{
		Title:       req.Title,
		Address:     req.Address,
		Photos:      req.AddedPhotos,
		Description: req.Description,
		Perks:       req.Perks,
		ExtraInfo:   req.ExtraInfo,
		CheckIn:     int(req.CheckIn),
		CheckOut:    int(req.CheckOut),
		MaxGuests:   int(req.MaxGuests),
		Price:       int(req.Price),
	}
}

func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req PlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	place, err := h.placeService.Create(r.Context(), userID, req.input())
	if err != nil {
		writeServiceError(w, r, "place.Create", err)
		return
	}

	writeJSON(w, http.StatusOK, place)
}

func (h *PlaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req PlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	placeID, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid place id")
		return
	}

	if _, err := h.placeService.Update(r.Context(), userID, placeID, req.input()); err != nil {
		writeServiceError(w, r, "place.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, "ok")
}

func (h *PlaceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	places, err := h.placeService.ListByOwner(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "place.ListMine", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNilPlaces(places))
}

// Get answers null for unknown or malformed ids rather than 404.
func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	placeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	place, err := h.placeService.GetByID(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, domain.ErrPlaceNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeServiceError(w, r, "place.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, place)
}

func (h *PlaceHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	places, err := h.placeService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, "place.ListAll", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNilPlaces(places))
}

func nonNilPlaces(places []*domain.Place) []*domain.Place {
	if places == nil {
		return []*domain.Place{}
	}
	return places
}
