package database

import (
	"fmt"
	"time"

	"sales-performance-backend/internal/logger"
	"sales-performance-backend/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	username, password, role, realName, namaSPV string
}

// SeedAll bersifat idempotent (FirstOrCreate), aman dijalankan berulang.
func SeedAll(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// 1. Seed Master SPV
		for _, nama := range []string{"Budi", "Sari"} {
			spv := model.MasterSPV{NamaSPV: nama}
			if err := tx.Where(model.MasterSPV{NamaSPV: nama}).FirstOrCreate(&spv).Error; err != nil {
				return fmt.Errorf("seed master spv: %w", err)
			}
		}

		// 2. Seed Akun
		users := []seedUser{
			{"admin", "admin123", model.RoleAdmin, "Administrator", ""},
			{"budi", "budi123", model.RoleSPV, "Budi", ""},
			{"sari", "sari123", model.RoleSPV, "Sari", ""},
			{"alice", "123456", model.RoleSalesman, "Alice", "Budi"},
			{"carol", "123456", model.RoleSalesman, "Carol", "Budi"},
			{"dimas", "123456", model.RoleSalesman, "Dimas", "Sari"},
		}
		for _, u := range users {
			if err := seedAccount(tx, u); err != nil {
				return err
			}
		}

		// 3. Seed Target bulan berjalan
		now := time.Now()
		for _, name := range []string{"Alice", "Carol", "Dimas"} {
			target := model.Target{
				SalesmanNama:  name,
				Bulan:         int(now.Month()),
				Tahun:         now.Year(),
				TargetQty:     decimal.NewFromInt(100),
				TargetTagihan: decimal.NewFromInt(5000000),
			}
			err := tx.Where(model.Target{SalesmanNama: name, Bulan: target.Bulan, Tahun: target.Tahun}).
				FirstOrCreate(&target).Error
			if err != nil {
				return fmt.Errorf("seed target %s: %w", name, err)
			}
		}

		logger.Log.Info().Int("users", len(users)).Msg("seed data siap")
		return nil
	})
}

func seedAccount(tx *gorm.DB, u seedUser) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Username: u.username,
		Password: string(hashed),
		Role:     u.role,
		RealName: u.realName,
	}
	if u.namaSPV != "" {
		spv := u.namaSPV
		user.NamaSPV = &spv
	}

	if err := tx.Where(model.User{Username: u.username}).FirstOrCreate(&user).Error; err != nil {
		return fmt.Errorf("seed user %s: %w", u.username, err)
	}
	return nil
}
