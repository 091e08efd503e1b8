package validators

import (
	"strings"
	"testing"

	"github.com/denmor86/solbanner/internal/models"
)

func TestCheckSignature(t *testing.T) {
	testCases := []struct {
		TestName  string
		Signature string
		Expected  bool
	}{
		{"Success. Typical signature #1", strings.Repeat("5VfYt", 16), true},
		{"Success. Minimal length #2", strings.Repeat("a", 64), true},
		{"Success. Maximal length #3", strings.Repeat("a", 90), true},
		{"Success. Surrounding spaces trimmed #4", "  " + strings.Repeat("5VfYt", 16) + "  ", true},
		{"Error. Empty signature #5", "", false},
		{"Error. Too short #6", strings.Repeat("a", 63), false},
		{"Error. Too long #7", strings.Repeat("a", 91), false},
		{"Error. Excluded base58 characters #8", strings.Repeat("O0Il", 20), false},
		{"Error. Non-alphanumeric characters #9", strings.Repeat("5VfYt", 15) + "-=!@#", false},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := CheckSignature(tc.Signature); got != tc.Expected {
				t.Errorf("Expected: '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}

func TestCheckTier(t *testing.T) {
	testCases := []struct {
		TestName string
		Tier     string
		Expected bool
	}{
		{"Success. Basic #1", models.TierBasic, true},
		{"Success. Premium #2", models.TierPremium, true},
		{"Error. Unknown tier #3", "golden", false},
		{"Error. Empty tier #4", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := CheckTier(tc.Tier); got != tc.Expected {
				t.Errorf("Expected: '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}

func TestCheckEmail(t *testing.T) {
	testCases := []struct {
		TestName string
		Email    string
		Expected bool
	}{
		{"Success. Typical address #1", "user@example.com", true},
		{"Error. Empty address #2", "", false},
		{"Error. Missing at sign #3", "user.example.com", false},
		{"Error. Missing local part #4", "@example.com", false},
		{"Error. Missing domain #5", "user@", false},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := CheckEmail(tc.Email); got != tc.Expected {
				t.Errorf("Expected: '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}
