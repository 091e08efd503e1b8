package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/denmor86/solbanner/internal/logger"
	"github.com/denmor86/solbanner/internal/models"
	"github.com/denmor86/solbanner/internal/services"
	"github.com/denmor86/solbanner/internal/validators"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// максимальный размер формы с файлами
	maxUploadSize = 32 << 20
	// скриншоты принимаются только для premium, не более трёх
	maxScreenshots = 3
)

// SubmitBannerHandler — приём заявки на баннер (multipart-форма).
// Валидация полей и файлов выполняется здесь, до машины состояний:
// некорректная заявка не создаёт заказ.
func SubmitBannerHandler(orders services.OrdersService, assets services.AssetStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			logger.Warn("Invalid multipart form:", zap.Error(err))
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		request := models.SubmitOrderRequest{
			Tier:             strings.TrimSpace(r.FormValue("bannerType")),
			ContractAddress:  strings.TrimSpace(r.FormValue("contractAddress")),
			BannerText:       strings.TrimSpace(r.FormValue("bannerText")),
			Email:            strings.TrimSpace(r.FormValue("email")),
			Telegram:         strings.TrimSpace(r.FormValue("telegram")),
			PaymentSignature: strings.TrimSpace(r.FormValue("paymentSignature")),
		}
		if r.FormValue("manualPayment") == "true" {
			request.PaymentMode = models.PaymentModeManual
		} else {
			request.PaymentMode = models.PaymentModeWallet
		}

		if request.ContractAddress == "" {
			http.Error(w, "Contract address is required", http.StatusBadRequest)
			return
		}
		if !validators.CheckEmail(request.Email) {
			http.Error(w, "Valid email is required", http.StatusBadRequest)
			return
		}
		if !validators.CheckTier(request.Tier) {
			http.Error(w, "Unknown banner type", http.StatusBadRequest)
			return
		}
		if request.PaymentSignature != "" && !validators.CheckSignature(request.PaymentSignature) {
			http.Error(w, "Invalid payment signature format", http.StatusBadRequest)
			return
		}

		screenshots := screenshotHeaders(r)
		if len(screenshots) > 0 && request.Tier != models.TierPremium {
			http.Error(w, "Screenshots are accepted for premium banners only", http.StatusBadRequest)
			return
		}
		if len(screenshots) > maxScreenshots {
			http.Error(w, "Too many screenshots, maximum is 3", http.StatusBadRequest)
			return
		}

		// сохранение файлов, ссылки уходят в заказ
		if file, header, err := r.FormFile("logo"); err == nil {
			defer file.Close()
			ref, err := assets.Save(r.Context(), "logo", header.Filename, file)
			if err != nil {
				logger.Error("Failed to save logo:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
				return
			}
			request.LogoRef = ref
		}
		for _, header := range screenshots {
			file, err := header.Open()
			if err != nil {
				logger.Error("Failed to open screenshot:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
				return
			}
			ref, err := assets.Save(r.Context(), "screenshot", header.Filename, file)
			file.Close()
			if err != nil {
				logger.Error("Failed to save screenshot:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
				return
			}
			request.ScreenshotRefs = append(request.ScreenshotRefs, ref)
		}

		order, err := orders.SubmitOrder(r.Context(), request)
		if err != nil {
			logger.Error("Failed to submit order:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(models.SubmitOrderResponse{
			Success:   true,
			RequestID: order.ID,
			Status:    order.Status,
		})
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetOrderHandler — статус заказа для опроса клиентом
func GetOrderHandler(orders services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		order, err := orders.GetOrder(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get order:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.NewOrderResponse(order)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// AttachPaymentHandler — привязка подписи платежа к уже созданному заказу
// (кошелёк подтвердил перевод после отправки формы)
func AttachPaymentHandler(orders services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		var request models.VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}
		if !validators.CheckSignature(request.Signature) {
			http.Error(w, "Invalid payment signature format", http.StatusBadRequest)
			return
		}

		order, err := orders.AttachPayment(r.Context(), orderID, models.PaymentModeWallet, request.Signature)
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to attach payment:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.NewOrderResponse(order)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// screenshotHeaders - файлы screenshot_0..screenshot_N из формы
func screenshotHeaders(r *http.Request) []*multipart.FileHeader {
	var headers []*multipart.FileHeader
	if r.MultipartForm == nil {
		return headers
	}
	for name, files := range r.MultipartForm.File {
		if !strings.HasPrefix(name, "screenshot_") {
			continue
		}
		for _, file := range files {
			headers = append(headers, file)
		}
	}
	return headers
}
