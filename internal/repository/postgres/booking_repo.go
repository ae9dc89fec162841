package postgres

import (
	"context"
	"errors"

	"github.com/dom/staybook/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *bookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.WithContext(ctx).Omit("Place", "User").Create(booking).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrPlaceNotFound
	}
	return err
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Place").
		Where("user_id = ?", userID).
		Order("check_in ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
