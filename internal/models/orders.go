package models

import "time"

// Статусы заказов
const (
	OrderStatusDraft           = "DRAFT"
	OrderStatusAwaitingPayment = "AWAITING_PAYMENT"
	OrderStatusVerifying       = "VERIFYING"
	OrderStatusPaid            = "PAID"
	OrderStatusRejected        = "REJECTED"
	OrderStatusFailed          = "FAILED"
)

// Тарифы баннеров
const (
	TierBasic   = "basic"
	TierPremium = "premium"
)

// Способы оплаты
const (
	PaymentModeWallet = "wallet"
	PaymentModeManual = "manual"
)

// OrderData - модель заказа баннера
type OrderData struct {
	ID               string
	Tier             string
	ContractAddress  string
	BannerText       string
	Email            string
	Telegram         string
	PaymentMode      string
	PaymentSignature string
	Status           string
	RejectReason     string
	RetryCount       int
	LogoRef          string
	ScreenshotRefs   []string
	CreatedAt        time.Time
	VerifiedAt       *time.Time
}

// Terminal - проверка, достиг ли заказ конечного состояния
func (o *OrderData) Terminal() bool {
	return o.Status == OrderStatusPaid ||
		o.Status == OrderStatusRejected ||
		o.Status == OrderStatusFailed
}

// SubmitOrderRequest - модель создания заказа (поля формы плюс ссылки на загруженные файлы)
type SubmitOrderRequest struct {
	Tier             string
	ContractAddress  string
	BannerText       string
	Email            string
	Telegram         string
	PaymentMode      string
	PaymentSignature string
	LogoRef          string
	ScreenshotRefs   []string
}

// SubmitOrderResponse - модель ответа на создание заказа
type SubmitOrderResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}

// OrderResponse - модель заказа для выдачи
type OrderResponse struct {
	ID           string `json:"id"`
	Tier         string `json:"tier"`
	Status       string `json:"status"`
	RejectReason string `json:"rejectReason,omitempty"`
	CreatedAt    string `json:"createdAt"`
	VerifiedAt   string `json:"verifiedAt,omitempty"`
}

// NewOrderResponse - преобразование заказа к модели выдачи
func NewOrderResponse(order *OrderData) OrderResponse {
	item := OrderResponse{
		ID:           order.ID,
		Tier:         order.Tier,
		Status:       order.Status,
		RejectReason: order.RejectReason,
		CreatedAt:    order.CreatedAt.Format(time.RFC3339),
	}
	if order.VerifiedAt != nil {
		item.VerifiedAt = order.VerifiedAt.Format(time.RFC3339)
	}
	return item
}
