package handler

import (
	"time"

	"sales-performance-backend/internal/middleware"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	rekap *usecase.RekapUsecase
	now   func() time.Time
}

func NewReportHandler(rekap *usecase.RekapUsecase) *ReportHandler {
	return &ReportHandler{rekap: rekap, now: time.Now}
}

// GetRekap: ?dari=2024-03-01&sampai=2024-03-31&salesman=Alice. Tanpa salesman = seluruh tim.
func (h *ReportHandler) GetRekap(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return unauthorized(c)
	}

	dari, sampai, err := usecase.ParseDateRange(c.Query("dari"), c.Query("sampai"), h.now())
	if err != nil {
		return respondError(c, err)
	}

	rekap, err := h.rekap.Rekap(c.UserContext(), session, dari, sampai, c.Query("salesman"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil rekap",
		"data":    rekap,
	})
}

// GetSalesmen mengisi pilihan filter salesman pada laporan.
func (h *ReportHandler) GetSalesmen(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return unauthorized(c)
	}

	names, err := h.rekap.Salesmen(c.UserContext(), session)
	if err != nil {
		return respondError(c, err)
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(fiber.Map{"data": names})
}
