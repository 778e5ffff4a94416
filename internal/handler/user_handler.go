package handler

import (
	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	accounts *usecase.AccountUsecase
}

func NewUserHandler(accounts *usecase.AccountUsecase) *UserHandler {
	return &UserHandler{accounts: accounts}
}

func (h *UserHandler) GetSalesmen(c *fiber.Ctx) error {
	return h.listByRole(c, model.RoleSalesman)
}

func (h *UserHandler) GetSupervisors(c *fiber.Ctx) error {
	return h.listByRole(c, model.RoleSPV)
}

func (h *UserHandler) listByRole(c *fiber.Ctx, role string) error {
	users, err := h.accounts.ListByRole(c.UserContext(), role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": users})
}

func (h *UserHandler) CreateSalesman(c *fiber.Ctx) error {
	var req usecase.SalesmanInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Format data salah")
	}

	user, err := h.accounts.CreateSalesman(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Dibuat: " + user.Username,
		"data":    user,
	})
}

func (h *UserHandler) CreateSupervisor(c *fiber.Ctx) error {
	var req usecase.SPVInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Format data salah")
	}

	user, err := h.accounts.CreateSPV(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Akun SPV Dibuat",
		"data":    user,
	})
}

func (h *UserHandler) GetMasterSPV(c *fiber.Ctx) error {
	list, err := h.accounts.ListMasterSPV(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

type masterSPVRequest struct {
	NamaSPV string `json:"nama_spv"`
}

func (h *UserHandler) CreateMasterSPV(c *fiber.Ctx) error {
	var req masterSPVRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Format data salah")
	}

	spv, err := h.accounts.AddMasterSPV(c.UserContext(), req.NamaSPV)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Berhasil",
		"data":    spv,
	})
}
