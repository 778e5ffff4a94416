package routes

import (
	"sales-performance-backend/config"
	"sales-performance-backend/internal/handler"
	"sales-performance-backend/internal/middleware"
	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/repository"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	accounts := usecase.NewAccountUsecase(repository.NewUserRepository(db), repository.NewMasterSPVRepository(db))
	hdl := handler.NewUserHandler(accounts)

	// Kelola User & Master SPV: menu admin dan spv
	guard := []fiber.Handler{authGuard(db, cfg), middleware.Role(model.RoleAdmin, model.RoleSPV)}

	users := app.Group("/api/admin/users", guard...)
	users.Get("/salesman", hdl.GetSalesmen)
	users.Post("/salesman", hdl.CreateSalesman)
	users.Get("/spv", hdl.GetSupervisors)
	users.Post("/spv", hdl.CreateSupervisor)

	spv := app.Group("/api/admin/master-spv", guard...)
	spv.Get("/", hdl.GetMasterSPV)
	spv.Post("/", hdl.CreateMasterSPV)
}
