package services

import (
	"errors"
	"time"

	"github.com/denmor86/solbanner/internal/config"
	"github.com/denmor86/solbanner/internal/logger"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type IdentityService interface {
	Authenticate(password string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

// Identity - доступ администратора к очереди заказов.
// Один пароль из конфигурации (bcrypt-хеш), токен JWT на сутки.
type Identity struct {
	JWTAuth      *jwtauth.JWTAuth
	PasswordHash string
}

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.Config) *Identity {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Admin.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, PasswordHash: cfg.Admin.PasswordHash}
}

// Аутентификация администратора
func (i *Identity) Authenticate(password string) (string, error) {
	if i.PasswordHash == "" {
		// хеш не задан - административный доступ выключен
		logger.Warn("Admin access is not configured")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(i.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Invalid admin password")
		return "", ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(TokenExpirationTime)
	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"role": "admin",
		"exp":  expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
