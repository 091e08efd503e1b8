package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/solbanner/internal/logger"
	"github.com/denmor86/solbanner/internal/models"
	"github.com/denmor86/solbanner/internal/services"
	"go.uber.org/zap"
)

// VerifyTransactionHandler — проверка платежа до создания заказа.
// Чистый прогон верификатора: подпись не потребляется, заказ не меняется.
func VerifyTransactionHandler(verifier services.VerifierService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}
		if request.Signature == "" {
			http.Error(w, "Transaction signature is required", http.StatusBadRequest)
			return
		}

		result, err := verifier.Verify(r.Context(), "", request.Signature, request.BannerType)
		if err != nil {
			if errors.Is(err, services.ErrUnknownTier) {
				http.Error(w, "Unknown banner type", http.StatusBadRequest)
				return
			}
			logger.Error("Failed to verify transaction:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		switch result.Status {
		case models.VerificationPending:
			// транзиентный сбой леджера: клиенту стоит повторить запрос
			http.Error(w, "Ledger temporarily unavailable, retry later", http.StatusServiceUnavailable)
			return
		case models.VerificationRejected:
			if result.Reason == models.ReasonNotFound {
				http.Error(w, "Transaction not found", http.StatusNotFound)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(models.VerifyResponse{
			Success:  true,
			Verified: result.Status == models.VerificationAccepted,
			Reason:   result.Reason,
		})
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
