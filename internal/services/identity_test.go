package services

import (
	"errors"
	"testing"

	"github.com/denmor86/solbanner/internal/config"
	"github.com/denmor86/solbanner/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

func TestIdentity_Authenticate(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to generate hash: %v", err)
	}

	testCases := []struct {
		TestName      string
		PasswordHash  string
		Password      string
		ExpectedError error
	}{
		{
			TestName:      "Error. Admin access not configured #1",
			PasswordHash:  "",
			Password:      "correct-horse",
			ExpectedError: ErrInvalidCredentials,
		},
		{
			TestName:      "Error. Wrong password #2",
			PasswordHash:  string(hash),
			Password:      "battery-staple",
			ExpectedError: ErrInvalidCredentials,
		},
		{
			TestName:      "Success. Token issued #3",
			PasswordHash:  string(hash),
			Password:      "correct-horse",
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			cfg.Admin.PasswordHash = tc.PasswordHash
			identity := NewIdentity(cfg)

			token, err := identity.Authenticate(tc.Password)

			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && token == "" {
				t.Errorf("Expected non-empty token")
			}
		})
	}
}
