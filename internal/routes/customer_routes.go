package routes

import (
	"sales-performance-backend/config"
	"sales-performance-backend/internal/handler"
	"sales-performance-backend/internal/repository"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCustomerRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	customers := usecase.NewCustomerUsecase(repository.NewCustomerRepository(db), repository.NewUserRepository(db))
	hdl := handler.NewCustomerHandler(customers)

	admin := adminGroup(app, db, cfg, "/customers")
	admin.Get("/", hdl.Search)
	admin.Put("/:cust_id/mapping", hdl.UpdateMapping)
}
