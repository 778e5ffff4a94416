package routes

import (
	"sales-performance-backend/config"
	"sales-performance-backend/internal/handler"
	"sales-performance-backend/internal/repository"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTargetRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	targets := usecase.NewTargetUsecase(repository.NewTargetRepository(db), repository.NewUserRepository(db))
	hdl := handler.NewTargetHandler(targets)

	admin := adminGroup(app, db, cfg, "/targets")
	admin.Get("/", hdl.GetAll)
	admin.Post("/", hdl.Save)
	admin.Put("/", hdl.BulkUpdate)
}
