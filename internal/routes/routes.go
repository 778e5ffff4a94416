package routes

import (
	"time"

	"sales-performance-backend/config"
	"sales-performance-backend/internal/middleware"
	"sales-performance-backend/internal/repository"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mendaftarkan seluruh endpoint aplikasi.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	SetupAuthRoutes(app, db, cfg)
	SetupDashboardRoutes(app, db, cfg)
	SetupReportRoutes(app, db, cfg)
	SetupTargetRoutes(app, db, cfg)
	SetupCustomerRoutes(app, db, cfg)
	SetupUploadRoutes(app, db, cfg)
	SetupUserRoutes(app, db, cfg)
}

func newAuthUsecase(db *gorm.DB, cfg config.Config) *usecase.AuthUsecase {
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	return usecase.NewAuthUsecase(repository.NewUserRepository(db), cfg.JWTSecret, ttl)
}

// authGuard: middleware JWT yang memasang session ke context.
func authGuard(db *gorm.DB, cfg config.Config) fiber.Handler {
	return middleware.Auth(newAuthUsecase(db, cfg))
}

// adminGroup: endpoint pengelolaan data, hanya admin & spv.
func adminGroup(app *fiber.App, db *gorm.DB, cfg config.Config, prefix string) fiber.Router {
	return app.Group("/api/admin"+prefix, authGuard(db, cfg), middleware.Permission(middleware.PermKelolaData))
}
