package service

import (
	"context"
	"time"

	"github.com/dom/staybook/internal/domain"
	"github.com/dom/staybook/internal/repository"
	"github.com/google/uuid"
)

// PlaceService is the listing store. Only a place's owner may change it.
type PlaceService struct {
	placeRepo repository.PlaceRepository
}

func NewPlaceService(placeRepo repository.PlaceRepository) *PlaceService {
	return &PlaceService{placeRepo: placeRepo}
}

func (s *PlaceService) Create(ctx context.Context, ownerID uuid.UUID, input domain.PlaceInput) (*domain.Place, error) {
	now := time.Now()
	place := &domain.Place{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(place)

	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *PlaceService) Update(ctx context.Context, requesterID, placeID uuid.UUID, input domain.PlaceInput) (*domain.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if place.OwnerID != requesterID {
		return nil, domain.ErrNotPlaceOwner
	}

	input.Apply(place)
	place.UpdatedAt = time.Now()

	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *PlaceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return s.placeRepo.GetByID(ctx, id)
}

func (s *PlaceService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	return s.placeRepo.ListByOwner(ctx, ownerID)
}

func (s *PlaceService) ListAll(ctx context.Context) ([]*domain.Place, error) {
	return s.placeRepo.ListAll(ctx)
}
