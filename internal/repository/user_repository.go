package repository

import (
	"context"

	"sales-performance-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ListTeamMembers(ctx context.Context, namaSPV string) ([]string, error)
	ListAllSalesmen(ctx context.Context) ([]string, error)
	ListByRole(ctx context.Context, role string) ([]model.User, error)
	ExistsSalesman(ctx context.Context, realName string) (bool, error)
	Create(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListTeamMembers mengembalikan real_name semua user yang atasannya (nama_spv) adalah namaSPV.
func (r *userRepository) ListTeamMembers(ctx context.Context, namaSPV string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("nama_spv = ?", namaSPV).
		Order("real_name asc").
		Pluck("real_name", &names).Error
	return names, err
}

func (r *userRepository) ListAllSalesmen(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Distinct().
		Where("role = ?", model.RoleSalesman).
		Order("real_name asc").
		Pluck("real_name", &names).Error
	return names, err
}

func (r *userRepository) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("real_name asc").Find(&users).Error
	return users, err
}

func (r *userRepository) ExistsSalesman(ctx context.Context, realName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ? AND real_name = ?", model.RoleSalesman, realName).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}
