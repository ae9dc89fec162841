package postgres

import (
	"context"

	"github.com/dom/staybook/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *placeRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *domain.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	var place domain.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, domain.ErrPlaceNotFound)
	}
	return &place, nil
}

// Update writes every column except the owner and creation time.
func (r *placeRepository) Update(ctx context.Context, place *domain.Place) error {
	res := r.db.WithContext(ctx).
		Model(place).
		Select("*").
		Omit("id", "owner_id", "created_at").
		Updates(place)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

func (r *placeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	var places []*domain.Place
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListAll(ctx context.Context) ([]*domain.Place, error) {
	var places []*domain.Place
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
