package config

import (
	"os"
	"strconv"
)

// Config menampung seluruh pengaturan aplikasi yang dibaca dari environment.
type Config struct {
	AppPort         string
	AppEnv          string
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	TokenTTLHours   int
	LogLevel        string
	UploadBatchSize int
}

// Load membaca konfigurasi dari environment (setelah .env di-load oleh main).
func Load() Config {
	driver := GetEnv("DB_DRIVER", "mysql")
	defaultPort := "3306"
	if driver == "postgres" {
		defaultPort = "5432"
	}

	return Config{
		AppPort:         GetEnv("APP_PORT", "3000"),
		AppEnv:          GetEnv("APP_ENV", "development"),
		DBDriver:        driver,
		DBHost:          GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:          GetEnv("DB_PORT", defaultPort),
		DBUser:          GetEnv("DB_USER", "root"),
		DBPassword:      GetEnv("DB_PASSWORD", ""),
		DBName:          GetEnv("DB_NAME", "sales_dashboard"),
		JWTSecret:       GetEnv("JWT_SECRET", "rahasia-sales-dashboard"),
		TokenTTLHours:   GetEnvAsInt("TOKEN_TTL_HOURS", 24),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		UploadBatchSize: GetEnvAsInt("UPLOAD_BATCH_SIZE", 200),
	}
}

// IsDevelopment dipakai untuk memilih format log (console vs JSON).
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
