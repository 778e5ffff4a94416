package repository

import (
	"context"
	"strings"

	"sales-performance-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	ListBySalesman(ctx context.Context, salesman string) ([]model.Customer, error)
	Search(ctx context.Context, text string) ([]model.Customer, error)
	FindByID(ctx context.Context, custID string) (*model.Customer, error)
	UpdateMapping(ctx context.Context, custID, salesman string) error
	AssignIfUnassigned(ctx context.Context, custID, salesman string) (bool, error)
	Upsert(ctx context.Context, customers []model.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db}
}

func (r *customerRepository) ListBySalesman(ctx context.Context, salesman string) ([]model.Customer, error) {
	var list []model.Customer
	err := r.db.WithContext(ctx).Where("salesman_pengampu = ?", salesman).Order("cust_id asc").Find(&list).Error
	return list, err
}

// Search mencari berdasarkan nama, alamat, atau ID tanpa membedakan huruf besar/kecil.
func (r *customerRepository) Search(ctx context.Context, text string) ([]model.Customer, error) {
	var list []model.Customer
	query := r.db.WithContext(ctx).Order("cust_id asc")

	if text = strings.TrimSpace(text); text != "" {
		pattern := "%" + strings.ToLower(text) + "%"
		query = query.Where("LOWER(nama_cst) LIKE ? OR LOWER(alamat) LIKE ? OR LOWER(cust_id) LIKE ?", pattern, pattern, pattern)
	}

	err := query.Find(&list).Error
	return list, err
}

func (r *customerRepository) FindByID(ctx context.Context, custID string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).Where("cust_id = ?", custID).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateMapping mengganti salesman pengampu. salesman kosong berarti melepas mapping.
func (r *customerRepository) UpdateMapping(ctx context.Context, custID, salesman string) error {
	var value interface{}
	if salesman != "" {
		value = salesman
	}
	res := r.db.WithContext(ctx).Model(&model.Customer{}).Where("cust_id = ?", custID).Update("salesman_pengampu", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL tidak menghitung baris yang nilainya sama, jadi cek keberadaan dulu sebelum menyatakan not found
		if _, err := r.FindByID(ctx, custID); err != nil {
			return err
		}
	}
	return nil
}

func (r *customerRepository) AssignIfUnassigned(ctx context.Context, custID, salesman string) (bool, error) {
	return assignIfUnassigned(r.db.WithContext(ctx), custID, salesman)
}

func (r *customerRepository) Upsert(ctx context.Context, customers []model.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	return upsertCustomers(r.db.WithContext(ctx), customers)
}

// upsertCustomers: insert baru lengkap dengan pengampu, bila cust_id sudah ada hanya nama & alamat yang diperbarui.
func upsertCustomers(db *gorm.DB, customers []model.Customer) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cust_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"nama_cst", "alamat", "updated_at"}),
	}).Create(&customers).Error
}

func assignIfUnassigned(db *gorm.DB, custID, salesman string) (bool, error) {
	if salesman == "" {
		return false, nil
	}
	res := db.Model(&model.Customer{}).
		Where("cust_id = ? AND (salesman_pengampu IS NULL OR salesman_pengampu = '')", custID).
		Update("salesman_pengampu", salesman)
	return res.RowsAffected > 0, res.Error
}
