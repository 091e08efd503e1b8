package storage

import (
	"context"
	"errors"

	"github.com/denmor86/solbanner/internal/models"
)

type OrdersStorage interface {
	AddOrder(ctx context.Context, order models.OrderData) error
	GetOrder(ctx context.Context, id string) (*models.OrderData, error)
	GetOrdersByStatus(ctx context.Context, status string) ([]models.OrderData, error)
	AttachPayment(ctx context.Context, id string, mode string, signature string) (bool, error)
	ClaimForVerification(ctx context.Context, count int, maxAttempts int) ([]models.OrderData, error)
	MarkPaid(ctx context.Context, id string, signature string) (bool, error)
	RejectOrder(ctx context.Context, id string, reason string) (bool, error)
	FailOrder(ctx context.Context, id string) error
	RejectStalled(ctx context.Context, maxAttempts int, reason string) ([]string, error)
	SignatureConsumed(ctx context.Context, signature string, excludeID string) (bool, error)
}

type Storage struct {
	Orders OrdersStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{Orders: NewOrdersStorage(db)}
}

var (
	ErrOrderNotFound = errors.New("order not found")

	ErrAlreadyExists = errors.New("already exists")

	// ErrSignatureConsumed - подпись уже привязана к другому оплаченному заказу
	ErrSignatureConsumed = errors.New("payment signature already consumed")
)
