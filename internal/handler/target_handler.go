package handler

import (
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type TargetHandler struct {
	targets *usecase.TargetUsecase
}

func NewTargetHandler(targets *usecase.TargetUsecase) *TargetHandler {
	return &TargetHandler{targets: targets}
}

func (h *TargetHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.targets.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

// Save membuat atau menimpa target (salesman, bulan, tahun).
func (h *TargetHandler) Save(c *fiber.Ctx) error {
	var req usecase.TargetInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Format data salah")
	}

	target, err := h.targets.Save(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Target untuk " + target.SalesmanNama + " berhasil disimpan.",
		"data":    target,
	})
}

type bulkTargetRequest struct {
	Targets []usecase.TargetEdit `json:"targets"`
}

func (h *TargetHandler) BulkUpdate(c *fiber.Ctx) error {
	var req bulkTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Format data salah")
	}

	if err := h.targets.BulkUpdate(c.UserContext(), req.Targets); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Perubahan target berhasil disimpan"})
}
