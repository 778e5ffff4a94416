package handler

import (
	"errors"

	"sales-performance-backend/internal/logger"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// AppError adalah bentuk error yang dikirim ke klien.
type AppError struct {
	Status  int
	Code    string
	Message string
}

func mapError(err error) AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return AppError{fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Username atau Password Salah"}
	case errors.Is(err, usecase.ErrInvalidToken):
		return AppError{fiber.StatusUnauthorized, "INVALID_TOKEN", "Token tidak valid atau kadaluwarsa"}
	case errors.Is(err, usecase.ErrForbidden):
		return AppError{fiber.StatusForbidden, "FORBIDDEN", err.Error()}
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return AppError{fiber.StatusBadRequest, "INVALID_PERIOD", err.Error()}
	case errors.Is(err, usecase.ErrValidation):
		return AppError{fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error()}
	case errors.Is(err, usecase.ErrNotFound):
		return AppError{fiber.StatusNotFound, "NOT_FOUND", err.Error()}
	case errors.Is(err, usecase.ErrConflict):
		return AppError{fiber.StatusConflict, "CONFLICT", err.Error()}
	}
	return AppError{fiber.StatusInternalServerError, "INTERNAL_ERROR", "Terjadi kesalahan pada server"}
}

// respondError menulis error ke response. Error tak dikenal dicatat di log, klien hanya menerima pesan umum.
func respondError(c *fiber.Ctx, err error) error {
	appErr := mapError(err)
	if appErr.Status == fiber.StatusInternalServerError {
		logger.Log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request gagal")
	}
	return c.Status(appErr.Status).JSON(fiber.Map{"error": appErr.Message, "code": appErr.Code})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg, "code": "BAD_REQUEST"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Sesi tidak ditemukan, silakan login ulang", "code": "UNAUTHORIZED"})
}
