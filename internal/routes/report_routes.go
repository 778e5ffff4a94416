package routes

import (
	"sales-performance-backend/config"
	"sales-performance-backend/internal/handler"
	"sales-performance-backend/internal/repository"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	rekap := usecase.NewRekapUsecase(repository.NewUserRepository(db), repository.NewTransaksiRepository(db))
	hdl := handler.NewReportHandler(rekap)

	auth := authGuard(db, cfg)
	app.Get("/api/reports/rekap", auth, hdl.GetRekap)
	app.Get("/api/salesmen", auth, hdl.GetSalesmen)
}
