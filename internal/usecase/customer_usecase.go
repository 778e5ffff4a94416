package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/repository"

	"gorm.io/gorm"
)

type CustomerUsecase struct {
	customers repository.CustomerRepository
	users     repository.UserRepository
}

func NewCustomerUsecase(customers repository.CustomerRepository, users repository.UserRepository) *CustomerUsecase {
	return &CustomerUsecase{customers: customers, users: users}
}

func (u *CustomerUsecase) Search(ctx context.Context, text string) ([]model.Customer, error) {
	return u.customers.Search(ctx, text)
}

// UpdateMapping mengganti salesman pengampu. salesman kosong melepas mapping.
func (u *CustomerUsecase) UpdateMapping(ctx context.Context, custID, salesman string) (*model.Customer, error) {
	custID, salesman = strings.TrimSpace(custID), strings.TrimSpace(salesman)

	if salesman != "" {
		exists, err := u.users.ExistsSalesman(ctx, salesman)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: salesman %s tidak terdaftar", ErrValidation, salesman)
		}
	}

	if err := u.customers.UpdateMapping(ctx, custID, salesman); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", ErrNotFound, custID)
		}
		return nil, err
	}
	return u.customers.FindByID(ctx, custID)
}
