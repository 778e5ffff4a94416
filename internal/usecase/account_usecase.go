package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultSalesmanPassword = "123456"

type SalesmanInput struct {
	RealName string `json:"real_name"`
	NamaSPV  string `json:"nama_spv"`
	Password string `json:"password"`
}

type SPVInput struct {
	RealName string `json:"real_name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type AccountUsecase struct {
	users repository.UserRepository
	spvs  repository.MasterSPVRepository
}

func NewAccountUsecase(users repository.UserRepository, spvs repository.MasterSPVRepository) *AccountUsecase {
	return &AccountUsecase{users: users, spvs: spvs}
}

// SalesmanUsername: nama lengkap huruf kecil tanpa spasi, mis. "Budi Santoso" -> "budisantoso".
func SalesmanUsername(realName string) string {
	return strings.ToLower(strings.Join(strings.Fields(realName), ""))
}

func (u *AccountUsecase) CreateSalesman(ctx context.Context, in SalesmanInput) (*model.User, error) {
	in.RealName = strings.TrimSpace(in.RealName)
	in.NamaSPV = strings.TrimSpace(in.NamaSPV)
	if in.RealName == "" {
		return nil, fmt.Errorf("%w: nama salesman wajib diisi", ErrValidation)
	}
	if in.NamaSPV == "" {
		return nil, fmt.Errorf("%w: atasan (SPV) wajib dipilih", ErrValidation)
	}
	if in.Password == "" {
		in.Password = DefaultSalesmanPassword
	}
	if err := u.requireMasterSPV(ctx, in.NamaSPV); err != nil {
		return nil, err
	}

	spv := in.NamaSPV
	return u.create(ctx, model.User{
		Username: SalesmanUsername(in.RealName),
		Role:     model.RoleSalesman,
		RealName: in.RealName,
		NamaSPV:  &spv,
	}, in.Password)
}

func (u *AccountUsecase) CreateSPV(ctx context.Context, in SPVInput) (*model.User, error) {
	in.RealName = strings.TrimSpace(in.RealName)
	in.Username = strings.TrimSpace(in.Username)
	if in.RealName == "" || in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: nama, username, dan password wajib diisi", ErrValidation)
	}
	if err := u.requireMasterSPV(ctx, in.RealName); err != nil {
		return nil, err
	}

	return u.create(ctx, model.User{
		Username: in.Username,
		Role:     model.RoleSPV,
		RealName: in.RealName,
	}, in.Password)
}

func (u *AccountUsecase) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	return u.users.ListByRole(ctx, role)
}

func (u *AccountUsecase) ListMasterSPV(ctx context.Context) ([]model.MasterSPV, error) {
	return u.spvs.List(ctx)
}

func (u *AccountUsecase) AddMasterSPV(ctx context.Context, nama string) (*model.MasterSPV, error) {
	nama = strings.TrimSpace(nama)
	if nama == "" {
		return nil, fmt.Errorf("%w: nama supervisor wajib diisi", ErrValidation)
	}
	exists, err := u.spvs.Exists(ctx, nama)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: supervisor %s", ErrConflict, nama)
	}

	spv := &model.MasterSPV{NamaSPV: nama}
	if err := u.spvs.Create(ctx, spv); err != nil {
		return nil, err
	}
	return spv, nil
}

func (u *AccountUsecase) requireMasterSPV(ctx context.Context, nama string) error {
	ok, err := u.spvs.Exists(ctx, nama)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: supervisor %s belum terdaftar di master SPV", ErrValidation, nama)
	}
	return nil
}

func (u *AccountUsecase) create(ctx context.Context, user model.User, password string) (*model.User, error) {
	_, err := u.users.FindByUsername(ctx, user.Username)
	if err == nil {
		return nil, fmt.Errorf("%w: username %s", ErrConflict, user.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := u.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
