package repository

import (
	"context"

	"github.com/dom/staybook/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	Update(ctx context.Context, place *domain.Place) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)
	ListAll(ctx context.Context) ([]*domain.Place, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	// ListByUser returns the user's bookings with Place preloaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
}

type Repositories struct {
	User    UserRepository
	Place   PlaceRepository
	Booking BookingRepository
}
