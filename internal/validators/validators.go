package validators

import (
	"strings"

	"github.com/denmor86/solbanner/internal/models"
)

// Алфавит base58 (без 0, O, I, l)
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Подпись транзакции - 64 байта в base58
const (
	signatureMinLen = 64
	signatureMaxLen = 90
)

// CheckSignature проверяет формат подписи транзакции Solana
func CheckSignature(signature string) bool {
	signature = strings.TrimSpace(signature)

	if len(signature) < signatureMinLen || len(signature) > signatureMaxLen {
		return false
	}

	// Проверяем, что строка состоит только из символов base58
	for _, c := range signature {
		if !strings.ContainsRune(base58Alphabet, c) {
			return false
		}
	}
	return true
}

// CheckTier проверяет допустимость тарифа баннера
func CheckTier(tier string) bool {
	return tier == models.TierBasic || tier == models.TierPremium
}

// CheckEmail проверяет минимальную корректность адреса почты
func CheckEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
