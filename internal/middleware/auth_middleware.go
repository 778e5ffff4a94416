package middleware

import (
	"strings"

	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// TokenParser memvalidasi token dan mengembalikan session pemiliknya.
type TokenParser interface {
	ParseToken(token string) (usecase.Session, error)
}

func Auth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari Header Authorization
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
		}

		// Format header biasanya: "Bearer <token>"
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		// 2. Parse dan Validasi Token
		session, err := parser.ParseToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
		}

		// 3. Simpan session ke Context agar bisa dipakai di Handler
		c.Locals(sessionKey, session)
		c.Locals("role", session.Role)
		c.Locals("real_name", session.RealName)

		return c.Next()
	}
}

// CurrentSession mengambil session yang diset oleh Auth.
func CurrentSession(c *fiber.Ctx) (usecase.Session, bool) {
	s, ok := c.Locals(sessionKey).(usecase.Session)
	return s, ok
}
