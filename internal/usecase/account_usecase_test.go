package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/usecase"
)

func TestSalesmanUsername(t *testing.T) {
	if got := usecase.SalesmanUsername("  Budi  Santoso "); got != "budisantoso" {
		t.Errorf("username = %q", got)
	}
}

func TestCreateSalesman(t *testing.T) {
	store := newFixture()
	uc := usecase.NewAccountUsecase(store.Users(), store.MasterSPV())
	ctx := context.Background()

	user, err := uc.CreateSalesman(ctx, usecase.SalesmanInput{RealName: "Gita Putri", NamaSPV: "Budi"})
	if err != nil {
		t.Fatalf("CreateSalesman: %v", err)
	}
	if user.Username != "gitaputri" || user.Role != model.RoleSalesman || *user.NamaSPV != "Budi" {
		t.Errorf("user = %+v", user)
	}

	// password default bisa dipakai login, dan Gita langsung masuk tim Budi
	auth := usecase.NewAuthUsecase(store.Users(), "s", time.Hour)
	if _, _, err := auth.Login(ctx, "gitaputri", usecase.DefaultSalesmanPassword); err != nil {
		t.Errorf("login with default password: %v", err)
	}
	team, _ := store.Users().ListTeamMembers(ctx, "Budi")
	if len(team) != 3 {
		t.Errorf("team = %v", team)
	}

	if _, err := uc.CreateSalesman(ctx, usecase.SalesmanInput{RealName: "Gita Putri", NamaSPV: "Budi"}); !errors.Is(err, usecase.ErrConflict) {
		t.Errorf("duplicate username: expected ErrConflict, got %v", err)
	}
	if _, err := uc.CreateSalesman(ctx, usecase.SalesmanInput{RealName: "Hadi", NamaSPV: "Zaki"}); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("unknown spv: expected ErrValidation, got %v", err)
	}
	if _, err := uc.CreateSalesman(ctx, usecase.SalesmanInput{RealName: " ", NamaSPV: "Budi"}); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("empty name: expected ErrValidation, got %v", err)
	}
}

func TestCreateSPV(t *testing.T) {
	store := newFixture()
	uc := usecase.NewAccountUsecase(store.Users(), store.MasterSPV())
	ctx := context.Background()

	user, err := uc.CreateSPV(ctx, usecase.SPVInput{RealName: "Fajar", Username: "fajar", Password: "rahasia"})
	if err != nil {
		t.Fatalf("CreateSPV: %v", err)
	}
	if user.Role != model.RoleSPV || user.NamaSPV != nil {
		t.Errorf("user = %+v", user)
	}

	if _, err := uc.CreateSPV(ctx, usecase.SPVInput{RealName: "Tidak Ada", Username: "x", Password: "y"}); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("spv outside master: expected ErrValidation, got %v", err)
	}
	if _, err := uc.CreateSPV(ctx, usecase.SPVInput{RealName: "Fajar", Username: "fajar2"}); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("empty password: expected ErrValidation, got %v", err)
	}
}

func TestAddMasterSPV(t *testing.T) {
	store := newFixture()
	uc := usecase.NewAccountUsecase(store.Users(), store.MasterSPV())
	ctx := context.Background()

	if _, err := uc.AddMasterSPV(ctx, " Gilang "); err != nil {
		t.Fatalf("AddMasterSPV: %v", err)
	}
	if _, err := uc.AddMasterSPV(ctx, "Gilang"); !errors.Is(err, usecase.ErrConflict) {
		t.Errorf("duplicate: expected ErrConflict, got %v", err)
	}
	list, _ := uc.ListMasterSPV(ctx)
	if len(list) != 4 {
		t.Errorf("master spv = %+v", list)
	}
}
