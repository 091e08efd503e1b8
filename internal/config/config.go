package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr        string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN       string `env:"DATABASE_DSN" envDefault:""`
	SolanaRPCAddr     string `env:"SOLANA_RPC_ADDRESS" envDefault:"https://api.mainnet-beta.solana.com"`
	SolanaCommitment  string `env:"SOLANA_COMMITMENT" envDefault:"confirmed"`
	RecipientAddress  string `env:"RECIPIENT_WALLET" envDefault:"6zhLuGqFfVfYsRNUrkXSMxhCpKK63JCJvFccosBBhqf8"`
	NotifyWebhookURL  string `env:"NOTIFY_WEBHOOK_URL" envDefault:""`
	UploadDir         string `env:"UPLOAD_DIR" envDefault:"uploads"`
	JWTSecret         string `env:"JWT_SECRET" envDefault:"secret"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH" envDefault:""`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	DatabaseDSN string
}

// SolanaConfig модель настроек работы с узлом Solana
type SolanaConfig struct {
	RPCAddr          string
	Commitment       string
	RecipientAddress string
	RequestTimeout   time.Duration
	ConfirmTimeout   time.Duration
	ConfirmInterval  time.Duration
}

// PricingConfig - прайс-лист баннеров (версия 1).
// Суммы в SOL, на запросе от клиента никогда не принимаются.
type PricingConfig struct {
	Basic   decimal.Decimal
	Premium decimal.Decimal
}

// WorkerConfig модель настроек фоновой проверки платежей
type WorkerConfig struct {
	BatchSize    int
	PollInterval time.Duration
	MaxAttempts  int
}

// NotifyConfig модель настроек отправки уведомлений
type NotifyConfig struct {
	WebhookURL string
}

// AssetsConfig модель настроек хранения загруженных файлов
type AssetsConfig struct {
	UploadDir string
}

// AdminConfig модель настроек доступа администратора
type AdminConfig struct {
	JWTSecret    string
	PasswordHash string
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Solana  SolanaConfig
	Pricing PricingConfig
	Worker  WorkerConfig
	Notify  NotifyConfig
	Assets  AssetsConfig
	Admin   AdminConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server     = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel   = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN        = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		rpc        = pflag.StringP("rpc", "r", args.SolanaRPCAddr, "Solana RPC node address.")
		commitment = pflag.StringP("commitment", "c", args.SolanaCommitment, "Solana commitment level used as finality.")
		recipient  = pflag.StringP("recipient", "w", args.RecipientAddress, "Recipient wallet address.")
		webhook    = pflag.StringP("webhook", "n", args.NotifyWebhookURL, "Notification webhook URL.")
		uploads    = pflag.StringP("uploads", "u", args.UploadDir, "Directory for uploaded assets.")
		secret     = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
	)
	pflag.Parse()

	config := DefaultConfig()
	config.Server = ServerConfig{
		ListenAddr:  *server,
		LogLevel:    *logLevel,
		DatabaseDSN: *DSN,
	}
	config.Solana.RPCAddr = *rpc
	config.Solana.Commitment = *commitment
	config.Solana.RecipientAddress = *recipient
	config.Notify.WebhookURL = *webhook
	config.Assets.UploadDir = *uploads
	config.Admin.JWTSecret = *secret
	config.Admin.PasswordHash = args.AdminPasswordHash
	return config
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
		},
		Solana: SolanaConfig{
			RPCAddr:          "https://api.mainnet-beta.solana.com",
			Commitment:       "confirmed",
			RecipientAddress: "6zhLuGqFfVfYsRNUrkXSMxhCpKK63JCJvFccosBBhqf8",
			RequestTimeout:   15 * time.Second,
			ConfirmTimeout:   60 * time.Second,
			ConfirmInterval:  2 * time.Second,
		},
		Pricing: PricingConfig{
			Basic:   decimal.New(1, -1), // 0.1 SOL
			Premium: decimal.New(2, -1), // 0.2 SOL
		},
		Worker: WorkerConfig{
			BatchSize:    10,
			PollInterval: 5 * time.Second,
			MaxAttempts:  3,
		},
		Notify: NotifyConfig{
			WebhookURL: "",
		},
		Assets: AssetsConfig{
			UploadDir: "uploads",
		},
		Admin: AdminConfig{
			JWTSecret:    "secret",
			PasswordHash: "",
		},
	}
}
