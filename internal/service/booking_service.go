package service

import (
	"context"
	"time"

	"github.com/dom/staybook/internal/domain"
	"github.com/dom/staybook/internal/repository"
	"github.com/google/uuid"
)

type BookingService struct {
	bookingRepo repository.BookingRepository
	placeRepo   repository.PlaceRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, placeRepo repository.PlaceRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		placeRepo:   placeRepo,
	}
}

// Create books a place for userID. The caller is always recorded as the
// booking's user. Dates and guest counts are stored as given.
func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, input domain.BookingInput) (*domain.Booking, error) {
	if _, err := s.placeRepo.GetByID(ctx, input.PlaceID); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:             uuid.New(),
		PlaceID:        input.PlaceID,
		UserID:         userID,
		CheckIn:        input.CheckIn,
		CheckOut:       input.CheckOut,
		NumberOfGuests: input.NumberOfGuests,
		Name:           input.Name,
		Phone:          input.Phone,
		Price:          input.Price,
		CreatedAt:      time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
