package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales-performance-backend/config"
	"sales-performance-backend/internal/logger"
	"sales-performance-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.IsDevelopment())
	if envErr != nil {
		logger.Log.Warn().Msg("File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	// qty & rupiah dikirim sebagai angka JSON, bukan string
	decimal.MarshalJSONWithoutQuotes = true

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("gagal koneksi ke database")
	}
	if err := config.Migrate(db); err != nil {
		logger.Log.Fatal().Err(err).Msg("gagal migrasi database")
	}

	app := fiber.New(fiber.Config{
		AppName:   "Sales Performance API",
		BodyLimit: 20 * 1024 * 1024, // file upload transaksi bisa besar
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code == fiber.StatusInternalServerError {
				logger.Log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
				return c.Status(code).JSON(fiber.Map{"error": "Terjadi kesalahan pada server", "code": "INTERNAL_ERROR"})
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(cors.New())        // Agar API bisa diakses dari domain/port lain
	app.Use(fiberlogger.New()) // Access log

	routes.SetupRoutes(app, db, cfg)

	go func() {
		logger.Log.Info().Str("port", cfg.AppPort).Msg("server siap menerima request")
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			logger.Log.Fatal().Err(err).Msg("gagal menjalankan server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("mematikan server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Log.Error().Err(err).Msg("shutdown tidak bersih")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Log.Info().Msg("server berhenti")
}
