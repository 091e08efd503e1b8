package router

import (
	"net/http"
	"time"

	"github.com/denmor86/solbanner/internal/client"
	"github.com/denmor86/solbanner/internal/config"
	"github.com/denmor86/solbanner/internal/network/handlers"
	"github.com/denmor86/solbanner/internal/network/middleware"
	"github.com/denmor86/solbanner/internal/services"
	"github.com/denmor86/solbanner/internal/storage"
	"github.com/denmor86/solbanner/internal/wallet"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Orders   services.OrdersService
	Verifier services.VerifierService
	Assets   services.AssetStore
	Wallet   wallet.Builder
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	ledger := client.NewClient(config.Solana.RPCAddr, config.Solana.Commitment,
		&http.Client{Timeout: config.Solana.RequestTimeout + 5*time.Second})
	verifier := services.NewVerifier(config, ledger, storage.Orders)
	notifier := services.NewNotifier(config)
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config),
		Orders:   services.NewOrders(storage.Orders, verifier, notifier, config.Worker.MaxAttempts),
		Verifier: verifier,
		Assets:   services.NewDiskAssets(config.Assets.UploadDir),
		Wallet:   wallet.NewRPCBuilder(config, ledger),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Post("/submit-banner", handlers.SubmitBannerHandler(router.Orders, router.Assets))
		r.Post("/verify-transaction", handlers.VerifyTransactionHandler(router.Verifier))
		r.Post("/payment", handlers.SubmitPaymentHandler(router.Wallet))
		r.Route("/banner", func(r chi.Router) {
			r.Get("/{orderID}", handlers.GetOrderHandler(router.Orders))
			r.Post("/{orderID}/payment", handlers.AttachPaymentHandler(router.Orders))
		})
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handlers.AdminLoginHandler(router.Identity))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Get("/orders", handlers.AdminOrdersHandler(router.Orders))
			})
		})
	})
	return r
}
