package routes

import (
	"sales-performance-backend/config"
	"sales-performance-backend/internal/handler"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	hdl := handler.NewAuthHandler(newAuthUsecase(db, cfg))

	// Auth Routes
	app.Post("/api/login", hdl.Login)

	// Profile Routes (Protected)
	app.Get("/api/profile", authGuard(db, cfg), hdl.GetProfile)
}
