package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/solbanner/internal/client"
	"github.com/denmor86/solbanner/internal/config"
	"github.com/denmor86/solbanner/internal/logger"
)

var (
	// ErrSubmit - узел не принял транзакцию, платёж не состоялся
	ErrSubmit = errors.New("failed to submit transaction")
	// ErrRejected - транзакция попала в леджер, но завершилась с ошибкой
	ErrRejected = errors.New("transaction rejected by ledger")
	// ErrConfirmTimeout - подтверждение не дождались за отведённое время
	ErrConfirmTimeout = errors.New("transaction confirmation timeout")
)

type Builder interface {
	SubmitAndConfirm(ctx context.Context, signedTx string) (string, error)
}

// RPCBuilder - отправка подписанной кошельком транзакции и ожидание
// подтверждения. Ошибки различимы между собой: заказ при любой из них
// остаётся в AWAITING_PAYMENT, пользователь может повторить оплату или
// перейти на ручной режим без дубликата заказа.
type RPCBuilder struct {
	Ledger          client.LedgerService
	Commitment      string
	ConfirmTimeout  time.Duration
	ConfirmInterval time.Duration
}

// Создание адаптера
func NewRPCBuilder(cfg config.Config, ledger client.LedgerService) *RPCBuilder {
	return &RPCBuilder{
		Ledger:          ledger,
		Commitment:      cfg.Solana.Commitment,
		ConfirmTimeout:  cfg.Solana.ConfirmTimeout,
		ConfirmInterval: cfg.Solana.ConfirmInterval,
	}
}

// SubmitAndConfirm - двухшаговый контракт: отправить транзакцию,
// затем опрашивать статус до подтверждения или дедлайна.
func (b *RPCBuilder) SubmitAndConfirm(ctx context.Context, signedTx string) (string, error) {
	signature, err := b.Ledger.SendTransaction(ctx, signedTx)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSubmit, err.Error())
	}
	logger.Info("Transaction submitted:", signature)

	if err := b.awaitConfirmation(ctx, signature); err != nil {
		return "", err
	}
	return signature, nil
}

func (b *RPCBuilder) awaitConfirmation(parent context.Context, signature string) error {
	ctx, cancel := context.WithTimeout(parent, b.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(b.ConfirmInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// отмена вызывающей стороны - не таймаут подтверждения
			if parent.Err() != nil {
				return parent.Err()
			}
			return ErrConfirmTimeout
		case <-ticker.C:
			status, err := b.Ledger.GetSignatureStatus(ctx, signature)
			if err != nil {
				// транзиентная ошибка или транзакция ещё не видна - ждём дальше
				continue
			}
			if status.Failed {
				return ErrRejected
			}
			if confirmed(status.Confirmation, b.Commitment) {
				return nil
			}
		}
	}
}

// confirmed - достигнут ли требуемый уровень финализации
func confirmed(status string, required string) bool {
	if status == "finalized" {
		return true
	}
	return status == "confirmed" && required != "finalized"
}
