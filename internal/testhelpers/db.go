package testhelpers

import (
	"testing"

	"sales-performance-backend/config"
	"sales-performance-backend/internal/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// testConfig membaca .env di root repo lalu mengizinkan TEST_DB_NAME menimpa nama database
// agar test integrasi tidak menyentuh database aplikasi.
func testConfig() config.Config {
	_ = godotenv.Load("../../.env")
	cfg := config.Load()
	cfg.DBName = config.GetEnv("TEST_DB_NAME", cfg.DBName+"_test")
	return cfg
}

// SetupTestDB membuka koneksi ke database test, menjalankan migrasi, dan mengosongkan tabel.
func SetupTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	logger.Nop()

	db, err := config.ConnectDB(testConfig())
	if err != nil {
		tb.Fatalf("Failed to connect database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		tb.Fatalf("Failed to migrate: %v", err)
	}
	Truncate(tb, db)

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Truncate menghapus isi semua tabel aplikasi.
func Truncate(tb testing.TB, db *gorm.DB) {
	tb.Helper()
	for _, table := range []string{"transactions", "target_sales", "master_customer", "users", "master_spv"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			tb.Fatalf("Failed to clear %s: %v", table, err)
		}
	}
}

// SkipIfNoDatabase skip test bila database tidak bisa dihubungi.
func SkipIfNoDatabase(tb testing.TB) {
	tb.Helper()
	logger.Nop()

	db, err := config.ConnectDB(testConfig())
	if err != nil {
		tb.Skipf("Database not available: %v", err)
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Skipf("Database not available: %v", err)
		return
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		tb.Skipf("Database not available: %v", err)
	}
}
