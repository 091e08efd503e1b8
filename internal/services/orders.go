package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/solbanner/internal/logger"
	"github.com/denmor86/solbanner/internal/models"
	"github.com/denmor86/solbanner/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderFinalized = errors.New("order already finalized")
)

type OrdersService interface {
	SubmitOrder(ctx context.Context, request models.SubmitOrderRequest) (*models.OrderData, error)
	AttachPayment(ctx context.Context, orderID string, mode string, signature string) (*models.OrderData, error)
	GetOrder(ctx context.Context, orderID string) (*models.OrderData, error)
	GetOrdersByStatus(ctx context.Context, status string) ([]models.OrderData, error)
	ClaimForVerification(ctx context.Context, count int) ([]models.OrderData, error)
	ProcessOrder(ctx context.Context, order models.OrderData) error
	RejectStalled(ctx context.Context) ([]string, error)
}

// Orders - машина состояний заказа. Единственный компонент, который
// переводит заказ между статусами.
type Orders struct {
	Storage     storage.OrdersStorage
	Verifier    VerifierService
	Notifier    NotifierService
	MaxAttempts int
}

// Создание сервиса
func NewOrders(store storage.OrdersStorage, verifier VerifierService, notifier NotifierService, maxAttempts int) *Orders {
	return &Orders{Storage: store, Verifier: verifier, Notifier: notifier, MaxAttempts: maxAttempts}
}

// SubmitOrder - создание заказа. Заказ появляется в AWAITING_PAYMENT;
// если в форме уже есть подпись платежа, он сразу уходит в проверку.
func (s *Orders) SubmitOrder(ctx context.Context, request models.SubmitOrderRequest) (*models.OrderData, error) {
	order := models.OrderData{
		ID:              uuid.NewString(),
		Tier:            request.Tier,
		ContractAddress: request.ContractAddress,
		BannerText:      request.BannerText,
		Email:           request.Email,
		Telegram:        request.Telegram,
		Status:          models.OrderStatusAwaitingPayment,
		LogoRef:         request.LogoRef,
		ScreenshotRefs:  request.ScreenshotRefs,
		CreatedAt:       time.Now(),
	}

	if err := s.Storage.AddOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	if request.PaymentSignature == "" {
		return &order, nil
	}
	return s.AttachPayment(ctx, order.ID, request.PaymentMode, request.PaymentSignature)
}

// AttachPayment - привязка подписи платежа к заказу, переход в VERIFYING.
// Повторный вызов (двойной клик, повтор формы) не меняет заказ: CAS в
// хранилище не проходит, клиенту возвращается уже записанное состояние.
func (s *Orders) AttachPayment(ctx context.Context, orderID string, mode string, signature string) (*models.OrderData, error) {
	attached, err := s.Storage.AttachPayment(ctx, orderID, mode, signature)
	if err != nil {
		return nil, fmt.Errorf("failed to attach payment: %w", err)
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !attached && order.Status == models.OrderStatusAwaitingPayment {
		// заказ не в том состоянии и не финализирован - неожиданный случай
		return nil, fmt.Errorf("failed to attach payment to order %s", orderID)
	}
	return order, nil
}

func (s *Orders) GetOrder(ctx context.Context, orderID string) (*models.OrderData, error) {
	order, err := s.Storage.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *Orders) GetOrdersByStatus(ctx context.Context, status string) ([]models.OrderData, error) {
	return s.Storage.GetOrdersByStatus(ctx, status)
}

// ClaimForVerification - захват пачки заказов на проверку.
// Счётчик попыток увеличивается при захвате, заказы с исчерпанным
// лимитом не выбираются.
func (s *Orders) ClaimForVerification(ctx context.Context, count int) ([]models.OrderData, error) {
	return s.Storage.ClaimForVerification(ctx, count, s.MaxAttempts)
}

// ProcessOrder - одна попытка проверки заказа в VERIFYING.
// Accepted завершается атомарным потреблением подписи (MarkPaid);
// уведомление уходит только из той попытки, что выиграла захват.
func (s *Orders) ProcessOrder(ctx context.Context, order models.OrderData) error {
	result, err := s.Verifier.Verify(ctx, order.ID, order.PaymentSignature, order.Tier)
	if err != nil {
		return fmt.Errorf("failed to verify order %s: %w", order.ID, err)
	}

	switch result.Status {
	case models.VerificationAccepted:
		claimed, err := s.Storage.MarkPaid(ctx, order.ID, order.PaymentSignature)
		if err != nil {
			if errors.Is(err, storage.ErrSignatureConsumed) {
				logger.Warn("Payment signature already consumed by another order:", order.ID)
				_, err = s.Storage.RejectOrder(ctx, order.ID, models.ReasonAlreadyConsumed)
				return err
			}
			return fmt.Errorf("failed to mark order %s paid: %w", order.ID, err)
		}
		if !claimed {
			// заказ финализирован конкурентной проверкой, результат уже записан
			return nil
		}
		s.notifyPaid(ctx, order, result)
	case models.VerificationRejected:
		if _, err := s.Storage.RejectOrder(ctx, order.ID, result.Reason); err != nil {
			return fmt.Errorf("failed to reject order %s: %w", order.ID, err)
		}
	case models.VerificationPending:
		// заказ остаётся в VERIFYING, лимит попыток контролирует воркер
		logger.Info("Order verification pending:", order.ID)
	}
	return nil
}

// RejectStalled - терминальный отказ заказам, исчерпавшим попытки проверки.
// Пользователю не оставляем вечное ожидание: причина VERIFICATION_TIMEOUT
// говорит обратиться в поддержку.
func (s *Orders) RejectStalled(ctx context.Context) ([]string, error) {
	return s.Storage.RejectStalled(ctx, s.MaxAttempts, models.ReasonVerificationTimeout)
}

// notifyPaid - уведомление после оплаты, строго вне критического пути:
// платёж уже экономически совершён, сбой отправки статус заказа не меняет.
func (s *Orders) notifyPaid(ctx context.Context, order models.OrderData, result *models.VerificationResult) {
	order.Status = models.OrderStatusPaid
	if err := s.Notifier.NotifyPaid(ctx, order, result.Lamports); err != nil {
		logger.Error("Failed to send paid notification:", order.ID, err.Error())
	}
}
