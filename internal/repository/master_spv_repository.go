package repository

import (
	"context"

	"sales-performance-backend/internal/model"

	"gorm.io/gorm"
)

type MasterSPVRepository interface {
	List(ctx context.Context) ([]model.MasterSPV, error)
	Create(ctx context.Context, spv *model.MasterSPV) error
	Exists(ctx context.Context, nama string) (bool, error)
}

type masterSPVRepository struct {
	db *gorm.DB
}

func NewMasterSPVRepository(db *gorm.DB) MasterSPVRepository {
	return &masterSPVRepository{db}
}

func (r *masterSPVRepository) List(ctx context.Context) ([]model.MasterSPV, error) {
	var list []model.MasterSPV
	err := r.db.WithContext(ctx).Order("nama_spv asc").Find(&list).Error
	return list, err
}

func (r *masterSPVRepository) Create(ctx context.Context, spv *model.MasterSPV) error {
	return r.db.WithContext(ctx).Create(spv).Error
}

func (r *masterSPVRepository) Exists(ctx context.Context, nama string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MasterSPV{}).Where("nama_spv = ?", nama).Count(&count).Error
	return count > 0, err
}
