package models

// AdminLoginRequest - модель запроса аутентификации администратора
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginResponse - модель ответа с токеном доступа
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// AdminOrderResponse - модель заказа в очереди для администратора
type AdminOrderResponse struct {
	ID               string   `json:"id"`
	Tier             string   `json:"tier"`
	Status           string   `json:"status"`
	ContractAddress  string   `json:"contractAddress"`
	BannerText       string   `json:"bannerText,omitempty"`
	Email            string   `json:"email"`
	Telegram         string   `json:"telegram,omitempty"`
	PaymentMode      string   `json:"paymentMode,omitempty"`
	PaymentSignature string   `json:"paymentSignature,omitempty"`
	LogoRef          string   `json:"logoRef,omitempty"`
	ScreenshotRefs   []string `json:"screenshotRefs,omitempty"`
	CreatedAt        string   `json:"createdAt"`
}
