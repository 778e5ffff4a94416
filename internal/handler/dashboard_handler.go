package handler

import (
	"sales-performance-backend/internal/middleware"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	perf *usecase.PerformanceUsecase
}

func NewDashboardHandler(perf *usecase.PerformanceUsecase) *DashboardHandler {
	return &DashboardHandler{perf: perf}
}

// GetDashboard: ?bulan=Maret&tahun=2024 (keduanya opsional).
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return unauthorized(c)
	}

	period, err := usecase.ParsePeriod(c.Query("bulan"), c.Query("tahun"), h.perf.Now())
	if err != nil {
		return respondError(c, err)
	}

	dashboard, err := h.perf.Dashboard(c.UserContext(), session, period)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil dashboard " + period.String(),
		"data":    dashboard,
	})
}

func (h *DashboardHandler) GetPeriode(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": usecase.Options(h.perf.Now())})
}
