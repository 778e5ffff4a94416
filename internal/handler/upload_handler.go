package handler

import (
	"context"
	"io"

	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	imports *usecase.ImportUsecase
}

func NewUploadHandler(imports *usecase.ImportUsecase) *UploadHandler {
	return &UploadHandler{imports: imports}
}

type importFunc func(ctx context.Context, filename string, r io.Reader) (*usecase.ImportReport, error)

func (h *UploadHandler) UploadCustomers(c *fiber.Ctx) error {
	return h.handle(c, h.imports.ImportCustomers, "Selesai upload master customer")
}

func (h *UploadHandler) UploadTransaksi(c *fiber.Ctx) error {
	return h.handle(c, h.imports.ImportTransaksi, "Transaksi berhasil diupload")
}

func (h *UploadHandler) handle(c *fiber.Ctx, run importFunc, message string) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "File wajib diupload (field: file)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "Gagal membuka file")
	}
	defer file.Close()

	report, err := run(c.UserContext(), fileHeader.Filename, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": message,
		"data":    report,
	})
}
