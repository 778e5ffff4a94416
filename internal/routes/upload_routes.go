package routes

import (
	"sales-performance-backend/config"
	"sales-performance-backend/internal/handler"
	"sales-performance-backend/internal/repository"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUploadRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	imports := usecase.NewImportUsecase(repository.NewUploadRepository(db), cfg.UploadBatchSize)
	hdl := handler.NewUploadHandler(imports)

	admin := adminGroup(app, db, cfg, "/upload")
	admin.Post("/customers", hdl.UploadCustomers)
	admin.Post("/transactions", hdl.UploadTransaksi)
}
