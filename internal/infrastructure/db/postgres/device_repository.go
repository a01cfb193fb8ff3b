package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shs/smart-home-system/internal/core/domain"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) Create(ctx context.Context, d *domain.Device) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DeviceRepository) FindByID(ctx context.Context, id string) (*domain.Device, error) {
	var d domain.Device
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDeviceNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DeviceRepository) ListByRoom(ctx context.Context, roomID string) ([]*domain.Device, error) {
	var devices []*domain.Device
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&devices).Error
	return devices, err
}

func (r *DeviceRepository) Update(ctx context.Context, d *domain.Device) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DeviceRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Device{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDeviceNotFound
	}
	return nil
}
