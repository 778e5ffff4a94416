package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/usecase"
)

func TestLogin(t *testing.T) {
	store := newFixture()
	auth := usecase.NewAuthUsecase(store.Users(), "test-secret", time.Hour)
	ctx := context.Background()

	token, s, err := auth.Login(ctx, " alice ", "123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if s.Role != model.RoleSalesman || s.RealName != "Alice" || s.NamaSPV != "Budi" {
		t.Errorf("session = %+v", s)
	}

	parsed, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if parsed != s {
		t.Errorf("parsed session = %+v, want %+v", parsed, s)
	}
}

func TestLogin_Failures(t *testing.T) {
	store := newFixture()
	auth := usecase.NewAuthUsecase(store.Users(), "test-secret", time.Hour)

	for _, tc := range []struct{ user, pass string }{
		{"alice", "salah"},
		{"tidakada", "123456"},
		{"", ""},
	} {
		_, _, err := auth.Login(context.Background(), tc.user, tc.pass)
		if !errors.Is(err, usecase.ErrInvalidCredentials) {
			t.Errorf("Login(%q): expected ErrInvalidCredentials, got %v", tc.user, err)
		}
	}
}

func TestParseToken_Rejects(t *testing.T) {
	store := newFixture()
	auth := usecase.NewAuthUsecase(store.Users(), "test-secret", time.Hour)
	other := usecase.NewAuthUsecase(store.Users(), "other-secret", time.Hour)
	expired := usecase.NewAuthUsecase(store.Users(), "test-secret", -time.Minute)

	s := session("budi", model.RoleSPV, "Budi")
	foreign, _ := other.IssueToken(s)
	old, _ := expired.IssueToken(s)
	badRole, _ := auth.IssueToken(session("x", "manager", "X"))

	for name, token := range map[string]string{
		"garbage":      "abc.def.ghi",
		"other secret": foreign,
		"expired":      old,
		"unknown role": badRole,
	} {
		if _, err := auth.ParseToken(token); !errors.Is(err, usecase.ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
