package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/solbanner/internal/logger"
	"github.com/denmor86/solbanner/internal/models"
	"github.com/denmor86/solbanner/internal/wallet"
	"go.uber.org/zap"
)

// SubmitPaymentHandler — отправка подписанной кошельком транзакции.
// Возвращает подпись после подтверждения; при любой ошибке платёж
// считается несостоявшимся и заказ не затрагивается.
func SubmitPaymentHandler(builder wallet.Builder) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}
		if request.Transaction == "" {
			http.Error(w, "Signed transaction is required", http.StatusBadRequest)
			return
		}

		signature, err := builder.SubmitAndConfirm(r.Context(), request.Transaction)
		if err != nil {
			switch {
			case errors.Is(err, wallet.ErrRejected):
				http.Error(w, "Transaction rejected by ledger", http.StatusBadRequest)
			case errors.Is(err, wallet.ErrConfirmTimeout):
				http.Error(w, "Transaction confirmation timeout, retry payment", http.StatusGatewayTimeout)
			case errors.Is(err, wallet.ErrSubmit):
				http.Error(w, "Failed to submit transaction, retry payment", http.StatusBadGateway)
			default:
				logger.Error("Failed to process payment:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.PaymentResponse{Signature: signature}); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
