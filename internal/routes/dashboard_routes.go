package routes

import (
	"sales-performance-backend/config"
	"sales-performance-backend/internal/handler"
	"sales-performance-backend/internal/repository"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	perf := usecase.NewPerformanceUsecase(
		repository.NewUserRepository(db),
		repository.NewTargetRepository(db),
		repository.NewTransaksiRepository(db),
		repository.NewCustomerRepository(db),
	)
	hdl := handler.NewDashboardHandler(perf)

	// middleware dipasang per route: Group("/api", ...) akan ikut menjaga /api/login
	auth := authGuard(db, cfg)
	app.Get("/api/dashboard", auth, hdl.GetDashboard)
	app.Get("/api/periode", auth, hdl.GetPeriode)
}
