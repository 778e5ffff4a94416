package middleware

import (
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const (
	// PermKelolaData: target, mapping customer, upload, akun
	PermKelolaData = "kelola_data"
	// PermLihatTim: ringkasan & ranking tim
	PermLihatTim = "lihat_tim"
)

// Permission mengecek kemampuan role (CanManage / TeamView), bukan nama role.
func Permission(requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil Role user dari Context (Diset di Auth middleware)
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		role, err := usecase.ParseRole(userRole)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		// 2. Cek kemampuan role
		isAllowed := false
		switch requiredPermission {
		case PermKelolaData:
			isAllowed = role.CanManage()
		case PermLihatTim:
			isAllowed = role.TeamView()
		}

		if !isAllowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Anda tidak memiliki izin " + requiredPermission})
		}

		return c.Next()
	}
}
