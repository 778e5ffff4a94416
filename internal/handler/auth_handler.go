package handler

import (
	"sales-performance-backend/internal/middleware"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *usecase.AuthUsecase
}

func NewAuthHandler(auth *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Format data salah")
	}

	token, session, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user":    session,
	})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(fiber.Map{"data": session})
}
