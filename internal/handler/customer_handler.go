package handler

import (
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	customers *usecase.CustomerUsecase
}

func NewCustomerHandler(customers *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Search: ?search= mencocokkan nama, alamat, atau kode customer.
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	list, err := h.customers.Search(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

type mappingRequest struct {
	SalesmanPengampu string `json:"salesman_pengampu"`
}

func (h *CustomerHandler) UpdateMapping(c *fiber.Ctx) error {
	var req mappingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Format data salah")
	}

	customer, err := h.customers.UpdateMapping(c.UserContext(), c.Params("cust_id"), req.SalesmanPengampu)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Mapping customer berhasil diperbarui",
		"data":    customer,
	})
}
