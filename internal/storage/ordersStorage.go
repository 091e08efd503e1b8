package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/solbanner/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InsertOrder = `INSERT INTO ORDERS (id, tier, contract_address, banner_text, email, telegram,
						payment_mode, payment_signature, status, reject_reason, retry_count,
						logo_ref, screenshot_refs, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
					ON CONFLICT (id) DO NOTHING
					RETURNING id;`
	GetOrder = `SELECT id, tier, contract_address, banner_text, email, telegram,
					payment_mode, payment_signature, status, reject_reason, retry_count,
					logo_ref, screenshot_refs, created_at, verified_at
				FROM ORDERS WHERE id=$1;`
	GetOrdersByStatus = `SELECT id, tier, contract_address, banner_text, email, telegram,
							payment_mode, payment_signature, status, reject_reason, retry_count,
							logo_ref, screenshot_refs, created_at, verified_at
						 FROM ORDERS WHERE status=$1 ORDER BY created_at;`
	// Привязка платежа переводит заказ в проверку. CAS по статусу: повторная
	// отправка формы или второй клик не перезапишет уже идущую проверку.
	AttachPayment = `UPDATE ORDERS
					 SET payment_mode = $2,
					     payment_signature = $3,
					     status = 'VERIFYING',
					     updated_at = NOW()
					 WHERE id = $1 AND status = 'AWAITING_PAYMENT';`
	ClaimForVerification = `UPDATE ORDERS
							SET retry_count = retry_count + 1,
							    updated_at = NOW()
							WHERE id IN (
							    SELECT id FROM ORDERS
							    WHERE status = 'VERIFYING' AND retry_count < $2
							    ORDER BY created_at
							    LIMIT $1
							    FOR UPDATE SKIP LOCKED
							)
							RETURNING id, tier, contract_address, banner_text, email, telegram,
							    payment_mode, payment_signature, status, reject_reason, retry_count,
							    logo_ref, screenshot_refs, created_at, verified_at;`
	// Единственная точка перехода в PAID. Один оператор: CAS по статусу плюс
	// проверка, что подпись не потреблена другим оплаченным заказом.
	// Частичный уникальный индекс orders_paid_signature_uniq страхует от гонки
	// двух заказов с одной подписью на разных инстансах сервиса.
	MarkPaid = `UPDATE ORDERS
				SET status = 'PAID',
				    verified_at = NOW(),
				    updated_at = NOW()
				WHERE id = $1 AND status = 'VERIFYING'
				  AND NOT EXISTS (
				      SELECT 1 FROM ORDERS
				      WHERE payment_signature = $2 AND status = 'PAID' AND id <> $1
				  );`
	RejectOrder = `UPDATE ORDERS
				   SET status = 'REJECTED',
				       reject_reason = $2,
				       updated_at = NOW()
				   WHERE id = $1 AND status = 'VERIFYING';`
	FailOrder = `UPDATE ORDERS
				 SET status = 'FAILED',
				     updated_at = NOW()
				 WHERE id = $1 AND status NOT IN ('PAID', 'REJECTED', 'FAILED');`
	RejectStalled = `UPDATE ORDERS
					 SET status = 'REJECTED',
					     reject_reason = $2,
					     updated_at = NOW()
					 WHERE status = 'VERIFYING' AND retry_count >= $1
					 RETURNING id;`
	// excludeID может быть пустым (проверка без заказа), поэтому сравнение по тексту
	SignatureConsumed = `SELECT EXISTS(
							SELECT 1 FROM ORDERS
							WHERE payment_signature = $1 AND status = 'PAID' AND id::text <> $2
						 );`
)

type OrderDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

func (s *OrderDatabase) AddOrder(ctx context.Context, order models.OrderData) error {
	var prevID string
	err := s.DB.Pool.QueryRow(ctx, InsertOrder,
		order.ID, order.Tier, order.ContractAddress, order.BannerText, order.Email, order.Telegram,
		order.PaymentMode, order.PaymentSignature, order.Status, order.RejectReason, order.RetryCount,
		order.LogoRef, order.ScreenshotRefs, order.CreatedAt).Scan(&prevID)

	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		// ON CONFLICT DO NOTHING ничего не вернул - заказ уже есть
		return ErrAlreadyExists
	}

	// Проверяем именно нарушение уникальности
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add order: %w", err)
}

func (s *OrderDatabase) GetOrder(ctx context.Context, id string) (*models.OrderData, error) {
	order, err := scanOrder(s.DB.Pool.QueryRow(ctx, GetOrder, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *OrderDatabase) GetOrdersByStatus(ctx context.Context, status string) ([]models.OrderData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetOrdersByStatus, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (s *OrderDatabase) AttachPayment(ctx context.Context, id string, mode string, signature string) (bool, error) {
	tag, err := s.DB.Pool.Exec(ctx, AttachPayment, id, mode, signature)
	if err != nil {
		return false, fmt.Errorf("failed to attach payment: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *OrderDatabase) ClaimForVerification(ctx context.Context, count int, maxAttempts int) ([]models.OrderData, error) {
	rows, err := s.DB.Pool.Query(ctx, ClaimForVerification, count, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to claim orders for verification: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (s *OrderDatabase) MarkPaid(ctx context.Context, id string, signature string) (bool, error) {
	tag, err := s.DB.Pool.Exec(ctx, MarkPaid, id, signature)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// сработал страхующий уникальный индекс по подписи
			return false, ErrSignatureConsumed
		}
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}
	// Ноль строк: либо статус уже не VERIFYING (CAS), либо подпись потреблена.
	// Различаем, чтобы наверх ушла конкретная причина отказа.
	consumed, err := s.SignatureConsumed(ctx, signature, id)
	if err != nil {
		return false, err
	}
	if consumed {
		return false, ErrSignatureConsumed
	}
	return false, nil
}

func (s *OrderDatabase) RejectOrder(ctx context.Context, id string, reason string) (bool, error) {
	tag, err := s.DB.Pool.Exec(ctx, RejectOrder, id, reason)
	if err != nil {
		return false, fmt.Errorf("failed to reject order: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *OrderDatabase) FailOrder(ctx context.Context, id string) error {
	if _, err := s.DB.Pool.Exec(ctx, FailOrder, id); err != nil {
		return fmt.Errorf("failed to fail order: %w", err)
	}
	return nil
}

func (s *OrderDatabase) RejectStalled(ctx context.Context, maxAttempts int, reason string) ([]string, error) {
	rows, err := s.DB.Pool.Query(ctx, RejectStalled, maxAttempts, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to reject stalled orders: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return ids, fmt.Errorf("failed scan stalled order id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *OrderDatabase) SignatureConsumed(ctx context.Context, signature string, excludeID string) (bool, error) {
	var consumed bool
	if err := s.DB.Pool.QueryRow(ctx, SignatureConsumed, signature, excludeID).Scan(&consumed); err != nil {
		return false, fmt.Errorf("failed to check signature: %w", err)
	}
	return consumed, nil
}

func scanOrder(row pgx.Row) (*models.OrderData, error) {
	var (
		order      models.OrderData
		verifiedAt *time.Time
	)
	err := row.Scan(
		&order.ID, &order.Tier, &order.ContractAddress, &order.BannerText, &order.Email, &order.Telegram,
		&order.PaymentMode, &order.PaymentSignature, &order.Status, &order.RejectReason, &order.RetryCount,
		&order.LogoRef, &order.ScreenshotRefs, &order.CreatedAt, &verifiedAt,
	)
	if err != nil {
		return nil, err
	}
	order.VerifiedAt = verifiedAt
	return &order, nil
}

func scanOrders(rows pgx.Rows) ([]models.OrderData, error) {
	var orders []models.OrderData
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return orders, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}
