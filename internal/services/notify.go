package services

import (
	"context"
	"net/http"
	"time"

	"github.com/denmor86/solbanner/internal/client"
	"github.com/denmor86/solbanner/internal/config"
	"github.com/denmor86/solbanner/internal/logger"
	"github.com/denmor86/solbanner/internal/models"
	"github.com/sethvargo/go-retry"
)

type NotifierService interface {
	NotifyPaid(ctx context.Context, order models.OrderData, lamports uint64) error
}

// orderNotification - сводка заказа для команды дизайна
type orderNotification struct {
	RequestID        string   `json:"requestId"`
	BannerType       string   `json:"bannerType"`
	ContractAddress  string   `json:"contractAddress"`
	BannerText       string   `json:"bannerText,omitempty"`
	Email            string   `json:"email"`
	Telegram         string   `json:"telegram,omitempty"`
	PaymentMode      string   `json:"paymentMode"`
	PaymentSignature string   `json:"paymentSignature"`
	PaidLamports     uint64   `json:"paidLamports"`
	LogoRef          string   `json:"logoRef,omitempty"`
	ScreenshotRefs   []string `json:"screenshotRefs,omitempty"`
}

// WebhookNotifier - отправка сводки заказа на вебхук с ограниченными
// повторами. Вызывается уже после перехода в PAID.
type WebhookNotifier struct {
	Webhook *client.WebhookClient
	Enabled bool
}

// Создание сервиса
func NewNotifier(cfg config.Config) NotifierService {
	return &WebhookNotifier{
		Webhook: client.NewWebhookClient(cfg.Notify.WebhookURL, &http.Client{Timeout: 10 * time.Second}),
		Enabled: cfg.Notify.WebhookURL != "",
	}
}

func (s *WebhookNotifier) NotifyPaid(ctx context.Context, order models.OrderData, lamports uint64) error {
	if !s.Enabled {
		logger.Info("Notification webhook not configured, skip order:", order.ID)
		return nil
	}

	message := orderNotification{
		RequestID:        order.ID,
		BannerType:       order.Tier,
		ContractAddress:  order.ContractAddress,
		BannerText:       order.BannerText,
		Email:            order.Email,
		Telegram:         order.Telegram,
		PaymentMode:      order.PaymentMode,
		PaymentSignature: order.PaymentSignature,
		PaidLamports:     lamports,
		LogoRef:          order.LogoRef,
		ScreenshotRefs:   order.ScreenshotRefs,
	}

	backoff := retry.WithMaxRetries(2, retry.NewConstant(500*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.Webhook.Post(ctx, message); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
