package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/solbanner/internal/config"
	"github.com/denmor86/solbanner/internal/logger"
	"github.com/denmor86/solbanner/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "solana-rpc",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до узла
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// VerifyWorker - фоновая проверка платежей по заказам в VERIFYING
type VerifyWorker struct {
	Orders       services.OrdersService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewVerifyWorker - конструктор обработчика проверки платежей
func NewVerifyWorker(orders services.OrdersService, cfg config.WorkerConfig) *VerifyWorker {
	return &VerifyWorker{
		Orders:       orders,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *VerifyWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *VerifyWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *VerifyWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("VerifyWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessOrders(ctx)
		}
	}
}

// ProcessOrders - обработка пачки заказов.
// Сначала терминальный отказ заказам с исчерпанными попытками,
// затем захват и проверка очередной пачки.
func (w *VerifyWorker) ProcessOrders(ctx context.Context) {
	stalled, err := w.Orders.RejectStalled(ctx)
	if err != nil {
		logger.Error("error reject stalled orders", err)
	}
	for _, id := range stalled {
		logger.Warn("Order verification attempts exhausted, rejected:", id)
	}

	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	orders, err := w.Orders.ClaimForVerification(ctx, w.BatchSize)
	if err != nil {
		logger.Error("error claim orders for verification", err)
		return
	}

	for _, order := range orders {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Orders.ProcessOrder(ctx, order)
		})

		if err != nil {
			logger.Error("Error order processing", err)
		}
	}
}
