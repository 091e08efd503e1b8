package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/solbanner/internal/client"
	"github.com/denmor86/solbanner/internal/config"
	"github.com/denmor86/solbanner/internal/logger"
	"github.com/denmor86/solbanner/internal/models"
	"github.com/denmor86/solbanner/internal/storage"
	"github.com/denmor86/solbanner/internal/validators"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
)

var ErrUnknownTier = errors.New("unknown banner tier")

type VerifierService interface {
	Verify(ctx context.Context, orderID string, signature string, tier string) (*models.VerificationResult, error)
}

// Verifier - проверка платежа по подписи транзакции.
// Только чтение леджера и запрос к хранилищу, никаких изменений состояния:
// переходы заказа выполняет Orders.
type Verifier struct {
	Ledger    client.LedgerService
	Limiter   *client.RateLimiter
	Storage   storage.OrdersStorage
	Recipient string
	Prices    map[string]uint64
	Timeout   time.Duration
}

// Создание сервиса
func NewVerifier(cfg config.Config, ledger client.LedgerService, store storage.OrdersStorage) *Verifier {
	return &Verifier{
		Ledger:    ledger,
		Limiter:   client.NewRateLimiter(),
		Storage:   store,
		Recipient: cfg.Solana.RecipientAddress,
		Prices:    LamportPrices(cfg.Pricing),
		Timeout:   cfg.Solana.RequestTimeout,
	}
}

// LamportPrices - перевод прайс-листа из SOL в лампорты
func LamportPrices(pricing config.PricingConfig) map[string]uint64 {
	lamports := decimal.NewFromInt(models.LamportsPerSOL)
	return map[string]uint64{
		models.TierBasic:   uint64(pricing.Basic.Mul(lamports).IntPart()),
		models.TierPremium: uint64(pricing.Premium.Mul(lamports).IntPart()),
	}
}

// Verify - проверки в фиксированном порядке, отказ на первой неуспешной:
// формат подписи, наличие и успешность транзакции, получатель, сумма,
// непотреблённость подписи. Транзиентные сбои узла дают Pending.
// orderID может быть пустым (проверка до создания заказа).
func (s *Verifier) Verify(ctx context.Context, orderID string, signature string, tier string) (*models.VerificationResult, error) {
	if !validators.CheckSignature(signature) {
		return models.Rejected(models.ReasonMalformed), nil
	}
	expected, ok := s.Prices[tier]
	if !ok {
		return nil, ErrUnknownTier
	}

	record, err := s.fetchTransaction(ctx, signature)
	if err != nil {
		if errors.Is(err, client.ErrTxNotFound) {
			// узел авторитетно не нашёл транзакцию на требуемом уровне финализации
			return models.Rejected(models.ReasonNotFound), nil
		}
		if transient(err) {
			logger.Warn("Ledger unavailable, verification pending:", err.Error())
			return models.Pending(), nil
		}
		return nil, err
	}

	if record.Failed {
		return models.Rejected(models.ReasonNotFinalized), nil
	}

	amount := record.LamportsTo(s.Recipient)
	if amount == 0 {
		return models.Rejected(models.ReasonWrongRecipient), nil
	}
	// переплата допустима, недоплата - нет
	if amount < expected {
		return models.Rejected(models.ReasonInsufficientAmount), nil
	}

	consumed, err := s.Storage.SignatureConsumed(ctx, signature, orderID)
	if err != nil {
		return nil, err
	}
	if consumed {
		return models.Rejected(models.ReasonAlreadyConsumed), nil
	}

	return models.Accepted(amount, record.Payer()), nil
}

// fetchTransaction - чтение транзакции с ограниченным числом повторов.
// Транзиентные ошибки узла и отсутствие транзакции (леджер может отставать
// от только что отправленного платежа) повторяются с нарастающей задержкой.
func (s *Verifier) fetchTransaction(ctx context.Context, signature string) (*client.TransactionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var record *client.TransactionRecord
	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		rec, err := s.Ledger.GetTransaction(ctx, signature)
		if err != nil {
			var rateErr *client.RateLimitError
			if errors.As(err, &rateErr) {
				logger.Warn("Too many requests to ledger node:", signature)
				s.Limiter.BlockFor(rateErr.RetryAfter)
				return err
			}
			if errors.Is(err, client.ErrLedgerUnavailable) || errors.Is(err, client.ErrTxNotFound) {
				return retry.RetryableError(err)
			}
			return err
		}
		record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func transient(err error) bool {
	var rateErr *client.RateLimitError
	return errors.Is(err, client.ErrLedgerUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.As(err, &rateErr)
}
