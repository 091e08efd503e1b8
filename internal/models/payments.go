package models

// LamportsPerSOL - количество лампортов в одном SOL
const LamportsPerSOL = 1_000_000_000

// Результаты проверки платежа
const (
	VerificationAccepted = "ACCEPTED"
	VerificationRejected = "REJECTED"
	VerificationPending  = "PENDING"
)

// Причины отказа. Попадают в заказ и в ответ клиенту,
// поэтому различимы между собой (см. AlreadyConsumed против NotFound).
const (
	ReasonMalformed           = "MALFORMED_SIGNATURE"
	ReasonNotFound            = "TRANSACTION_NOT_FOUND"
	ReasonNotFinalized        = "TRANSACTION_FAILED"
	ReasonWrongRecipient      = "WRONG_RECIPIENT"
	ReasonInsufficientAmount  = "INSUFFICIENT_AMOUNT"
	ReasonAlreadyConsumed     = "SIGNATURE_ALREADY_USED"
	ReasonVerificationTimeout = "VERIFICATION_TIMEOUT"
)

// VerificationResult - результат проверки подписи платежа
type VerificationResult struct {
	Status   string
	Reason   string
	Lamports uint64
	Payer    string
}

// Accepted - платёж принят
func Accepted(lamports uint64, payer string) *VerificationResult {
	return &VerificationResult{Status: VerificationAccepted, Lamports: lamports, Payer: payer}
}

// Rejected - платёж отклонён по указанной причине
func Rejected(reason string) *VerificationResult {
	return &VerificationResult{Status: VerificationRejected, Reason: reason}
}

// Pending - проверка не завершена, допускается повтор
func Pending() *VerificationResult {
	return &VerificationResult{Status: VerificationPending}
}

// VerifyRequest - модель запроса проверки транзакции
type VerifyRequest struct {
	Signature  string `json:"signature"`
	BannerType string `json:"bannerType"`
}

// VerifyResponse - модель ответа проверки транзакции
type VerifyResponse struct {
	Success  bool   `json:"success"`
	Verified bool   `json:"verified"`
	Reason   string `json:"reason,omitempty"`
}

// PaymentRequest - модель запроса отправки подписанной транзакции
type PaymentRequest struct {
	Transaction string `json:"transaction"`
}

// PaymentResponse - модель ответа с подписью отправленной транзакции
type PaymentResponse struct {
	Signature string `json:"signature"`
}
