package client

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// LedgerService - чтение и отправка транзакций через RPC-узел
type LedgerService interface {
	GetTransaction(ctx context.Context, signature string) (*TransactionRecord, error)
	SendTransaction(ctx context.Context, signedTx string) (string, error)
	GetSignatureStatus(ctx context.Context, signature string) (*SignatureStatus, error)
}

// TransactionRecord - финализированная транзакция из леджера
type TransactionRecord struct {
	Slot        uint64
	BlockTime   int64
	Failed      bool
	AccountKeys []string
	PreLamports []uint64
	PosLamports []uint64
}

// LamportsTo - сколько лампортов получил адрес в этой транзакции.
// Считается по разнице балансов до и после, что покрывает обычный
// системный перевод (его и строит кошелёк плательщика).
func (t *TransactionRecord) LamportsTo(address string) uint64 {
	for i, key := range t.AccountKeys {
		if key != address || i >= len(t.PreLamports) || i >= len(t.PosLamports) {
			continue
		}
		if t.PosLamports[i] > t.PreLamports[i] {
			return t.PosLamports[i] - t.PreLamports[i]
		}
		return 0
	}
	return 0
}

// Payer - адрес плательщика (первый подписант транзакции)
func (t *TransactionRecord) Payer() string {
	if len(t.AccountKeys) == 0 {
		return ""
	}
	return t.AccountKeys[0]
}

// SignatureStatus - статус подтверждения отправленной транзакции
type SignatureStatus struct {
	Confirmation string
	Failed       bool
}

var (
	// ErrTxNotFound - узел авторитетно сообщил, что транзакции нет
	ErrTxNotFound = errors.New("transaction not found")
	// ErrLedgerUnavailable - транзиентная ошибка узла, допускается повтор
	ErrLedgerUnavailable = errors.New("ledger node unavailable")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
