package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shs/smart-home-system/internal/core/domain"
)

type HouseRepository struct {
	db *gorm.DB
}

func NewHouseRepository(db *gorm.DB) *HouseRepository {
	return &HouseRepository{db: db}
}

func (r *HouseRepository) Create(ctx context.Context, h *domain.House) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HouseRepository) FindByID(ctx context.Context, id string) (*domain.House, error) {
	var h domain.House
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHouseNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *HouseRepository) Update(ctx context.Context, h *domain.House) error {
	return r.db.WithContext(ctx).Save(h).Error
}

// Delete removes exactly one house row. Rooms and devices referencing the
// house keep their foreign ids; nothing cascades.
func (r *HouseRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.House{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrHouseNotFound
	}
	return nil
}
