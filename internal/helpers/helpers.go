package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/solbanner/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetRole - извлекает роль из контекста JWT токена
func GetRole(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	role, ok := claims["role"].(string)
	if !ok {
		logger.Warn("Undefined role from token")
		return "", fmt.Errorf("undefined role")
	}
	return role, nil
}
