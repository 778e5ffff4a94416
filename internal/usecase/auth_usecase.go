package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sales-performance-backend/internal/logger"
	"sales-performance-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidToken = errors.New("token tidak valid atau kadaluwarsa")

type AuthUsecase struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthUsecase(users repository.UserRepository, secret string, ttl time.Duration) *AuthUsecase {
	return &AuthUsecase{users: users, secret: []byte(secret), ttl: ttl}
}

// Login mencocokkan username & password. Pesan error sengaja sama untuk user tidak ada maupun password salah.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (string, Session, error) {
	username = strings.TrimSpace(username)

	// 1. Cari user berdasarkan username
	user, err := u.users.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", Session{}, err
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Debug().Str("username", username).Msg("password tidak cocok")
		return "", Session{}, ErrInvalidCredentials
	}

	s := Session{
		Username: user.Username,
		Role:     user.Role,
		RealName: user.RealName,
	}
	if user.NamaSPV != nil {
		s.NamaSPV = *user.NamaSPV
	}

	// 3. Jika benar, buat Token JWT
	token, err := u.IssueToken(s)
	if err != nil {
		return "", Session{}, err
	}
	return token, s, nil
}

func (u *AuthUsecase) IssueToken(s Session) (string, error) {
	claims := jwt.MapClaims{
		"username":  s.Username,
		"role":      s.Role,
		"real_name": s.RealName,
		"nama_spv":  s.NamaSPV,
		"exp":       time.Now().Add(u.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}

// ParseToken memvalidasi token dan membangun ulang Session dari claims.
func (u *AuthUsecase) ParseToken(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("signing method %v tidak diizinkan", token.Header["alg"])
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	s := Session{
		Username: claimString(claims, "username"),
		Role:     claimString(claims, "role"),
		RealName: claimString(claims, "real_name"),
		NamaSPV:  claimString(claims, "nama_spv"),
	}
	if _, err := ParseRole(s.Role); err != nil || s.Username == "" {
		return Session{}, ErrInvalidToken
	}
	return s, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
