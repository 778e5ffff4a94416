package repository

import (
	"context"

	"sales-performance-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TargetRepository interface {
	Get(ctx context.Context, salesman string, bulan, tahun int) (*model.Target, error)
	Upsert(ctx context.Context, target *model.Target) error
	UpdateMany(ctx context.Context, targets []model.Target) error
	List(ctx context.Context) ([]model.Target, error)
}

type targetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) TargetRepository {
	return &targetRepository{db}
}

// Get mengembalikan (nil, nil) bila target periode tersebut belum diisi.
func (r *targetRepository) Get(ctx context.Context, salesman string, bulan, tahun int) (*model.Target, error) {
	var target model.Target
	// Find + Limit(1) agar GORM tidak mencetak log "record not found"
	err := r.db.WithContext(ctx).
		Where("salesman_nama = ? AND bulan = ? AND tahun = ?", salesman, bulan, tahun).
		Limit(1).Find(&target).Error
	if err != nil {
		return nil, err
	}
	if target.ID == 0 {
		return nil, nil
	}
	return &target, nil
}

func (r *targetRepository) Upsert(ctx context.Context, target *model.Target) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "salesman_nama"}, {Name: "bulan"}, {Name: "tahun"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_qty", "target_tagihan", "updated_at"}),
	}).Create(target).Error
}

// UpdateMany menyimpan hasil editor tabel target (update qty & tagihan per ID) dalam satu transaksi.
func (r *targetRepository) UpdateMany(ctx context.Context, targets []model.Target) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range targets {
			err := tx.Model(&model.Target{}).Where("id = ?", t.ID).Updates(map[string]interface{}{
				"target_qty":     t.TargetQty,
				"target_tagihan": t.TargetTagihan,
			}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *targetRepository) List(ctx context.Context) ([]model.Target, error) {
	var targets []model.Target
	err := r.db.WithContext(ctx).
		Order("tahun desc").Order("bulan desc").Order("salesman_nama asc").
		Find(&targets).Error
	return targets, err
}
