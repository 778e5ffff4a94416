package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"sales-performance-backend/internal/middleware"
	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/testhelpers"
	"sales-performance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func newApp(auth *usecase.AuthUsecase, guards ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{middleware.Auth(auth)}, guards...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		s, ok := middleware.CurrentSession(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(s.RealName)
	})
	app.Get("/private", handlers...)
	return app
}

func token(t *testing.T, auth *usecase.AuthUsecase, role, name string) string {
	t.Helper()
	tok, err := auth.IssueToken(usecase.Session{Username: name, Role: role, RealName: name})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return tok
}

func get(t *testing.T, app *fiber.App, tok string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/private", nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp.StatusCode
}

func TestAuth(t *testing.T) {
	auth := usecase.NewAuthUsecase(testhelpers.NewStore().Users(), "secret", time.Hour)
	app := newApp(auth)

	if code := get(t, app, ""); code != fiber.StatusUnauthorized {
		t.Errorf("no token: status %d", code)
	}
	if code := get(t, app, "bukan.token.valid"); code != fiber.StatusUnauthorized {
		t.Errorf("bad token: status %d", code)
	}
	if code := get(t, app, token(t, auth, model.RoleSalesman, "Alice")); code != fiber.StatusOK {
		t.Errorf("valid token: status %d", code)
	}
}

func TestPermission(t *testing.T) {
	auth := usecase.NewAuthUsecase(testhelpers.NewStore().Users(), "secret", time.Hour)

	tests := []struct {
		perm string
		role string
		want int
	}{
		{middleware.PermKelolaData, model.RoleAdmin, fiber.StatusOK},
		{middleware.PermKelolaData, model.RoleSPV, fiber.StatusOK},
		{middleware.PermKelolaData, model.RoleSalesman, fiber.StatusForbidden},
		{middleware.PermLihatTim, model.RoleSPV, fiber.StatusOK},
		{middleware.PermLihatTim, model.RoleSalesman, fiber.StatusForbidden},
		{"tidak_ada", model.RoleAdmin, fiber.StatusForbidden},
	}
	for _, tt := range tests {
		app := newApp(auth, middleware.Permission(tt.perm))
		if code := get(t, app, token(t, auth, tt.role, "X")); code != tt.want {
			t.Errorf("%s as %s: status %d, want %d", tt.perm, tt.role, code, tt.want)
		}
	}
}

func TestRole(t *testing.T) {
	auth := usecase.NewAuthUsecase(testhelpers.NewStore().Users(), "secret", time.Hour)
	app := newApp(auth, middleware.Role(model.RoleAdmin))

	if code := get(t, app, token(t, auth, model.RoleAdmin, "Admin")); code != fiber.StatusOK {
		t.Errorf("admin: status %d", code)
	}
	if code := get(t, app, token(t, auth, model.RoleSPV, "Budi")); code != fiber.StatusForbidden {
		t.Errorf("spv: status %d", code)
	}
}
