package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/solbanner/internal/helpers"
	"github.com/denmor86/solbanner/internal/logger"
	"github.com/denmor86/solbanner/internal/models"
	"github.com/denmor86/solbanner/internal/services"
	"go.uber.org/zap"
)

// AdminLoginHandler — аутентификация администратора
func AdminLoginHandler(identity services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.AdminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}

		token, err := identity.Authenticate(request.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				http.Error(w, "Invalid credentials", http.StatusUnauthorized)
				return
			}
			logger.Error("Failed to authenticate admin:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.AdminLoginResponse{Token: token}); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// AdminOrdersHandler — очередь заказов для команды дизайна
func AdminOrdersHandler(orders services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := helpers.GetRole(r.Context())
		if err != nil || role != "admin" {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		status := r.URL.Query().Get("status")
		if status == "" {
			status = models.OrderStatusPaid
		}

		list, err := orders.GetOrdersByStatus(r.Context(), status)
		if err != nil {
			logger.Error("Failed to get orders:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(list) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.AdminOrderResponse
		for _, order := range list {
			response = append(response, models.AdminOrderResponse{
				ID:               order.ID,
				Tier:             order.Tier,
				Status:           order.Status,
				ContractAddress:  order.ContractAddress,
				BannerText:       order.BannerText,
				Email:            order.Email,
				Telegram:         order.Telegram,
				PaymentMode:      order.PaymentMode,
				PaymentSignature: order.PaymentSignature,
				LogoRef:          order.LogoRef,
				ScreenshotRefs:   order.ScreenshotRefs,
				CreatedAt:        order.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
