package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/denmor86/solbanner/internal/config"
	"github.com/denmor86/solbanner/internal/logger"
	"github.com/denmor86/solbanner/internal/models"
	servicemocks "github.com/denmor86/solbanner/internal/services/mocks"
	"github.com/denmor86/solbanner/internal/storage"
	storagemocks "github.com/denmor86/solbanner/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func verifyingOrder(id string) models.OrderData {
	return models.OrderData{
		ID:               id,
		Tier:             models.TierBasic,
		ContractAddress:  "So11111111111111111111111111111111111111112",
		Email:            "user@example.com",
		PaymentMode:      models.PaymentModeWallet,
		PaymentSignature: testSignature,
		Status:           models.OrderStatusVerifying,
		CreatedAt:        time.Now(),
	}
}

func TestOrderService_SubmitOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := storagemocks.NewMockOrdersStorage(ctrl)
	mockVerifier := servicemocks.NewMockVerifierService(ctrl)
	mockNotifier := servicemocks.NewMockNotifierService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockStorage, mockVerifier, mockNotifier, config.Worker.MaxAttempts)

	testCases := []struct {
		TestName       string
		Request        models.SubmitOrderRequest
		SetupMocks     func()
		ExpectedStatus string
		ExpectedError  error
	}{
		{
			TestName: "Success. Order without payment stays awaiting #1",
			Request: models.SubmitOrderRequest{
				Tier:            models.TierBasic,
				ContractAddress: "So11111111111111111111111111111111111111112",
				Email:           "user@example.com",
				PaymentMode:     models.PaymentModeWallet,
			},
			SetupMocks: func() {
				mockStorage.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedStatus: models.OrderStatusAwaitingPayment,
		},
		{
			TestName: "Success. Order with signature goes to verification #2",
			Request: models.SubmitOrderRequest{
				Tier:             models.TierBasic,
				ContractAddress:  "So11111111111111111111111111111111111111112",
				Email:            "user@example.com",
				PaymentMode:      models.PaymentModeManual,
				PaymentSignature: testSignature,
			},
			SetupMocks: func() {
				mockStorage.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(nil)
				mockStorage.EXPECT().AttachPayment(gomock.Any(), gomock.Any(), models.PaymentModeManual, testSignature).Return(true, nil)
				mockStorage.EXPECT().GetOrder(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, id string) (*models.OrderData, error) {
						order := verifyingOrder(id)
						return &order, nil
					})
			},
			ExpectedStatus: models.OrderStatusVerifying,
		},
		{
			TestName: "Error. Storage failure #3",
			Request: models.SubmitOrderRequest{
				Tier:            models.TierBasic,
				ContractAddress: "So11111111111111111111111111111111111111112",
				Email:           "user@example.com",
				PaymentMode:     models.PaymentModeWallet,
			},
			SetupMocks: func() {
				mockStorage.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(errors.New("failed to add order"))
			},
			ExpectedError: errors.New("failed to submit order: failed to add order"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			order, err := orders.SubmitOrder(ctx, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && order.Status != tc.ExpectedStatus {
				t.Errorf("Expected status: '%v', got: '%v'", tc.ExpectedStatus, order.Status)
			}
		})
	}
}

func TestOrderService_ProcessOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := storagemocks.NewMockOrdersStorage(ctrl)
	mockVerifier := servicemocks.NewMockVerifierService(ctrl)
	mockNotifier := servicemocks.NewMockNotifierService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockStorage, mockVerifier, mockNotifier, config.Worker.MaxAttempts)
	order := verifyingOrder("order-1")

	testCases := []struct {
		TestName      string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Success. Accepted and claimed, notification sent #1",
			SetupMocks: func() {
				mockVerifier.EXPECT().Verify(gomock.Any(), "order-1", testSignature, models.TierBasic).
					Return(models.Accepted(100_000_000, testPayer), nil)
				mockStorage.EXPECT().MarkPaid(gomock.Any(), "order-1", testSignature).Return(true, nil)
				mockNotifier.EXPECT().NotifyPaid(gomock.Any(), gomock.Any(), uint64(100_000_000)).Return(nil)
			},
		},
		{
			TestName: "Success. Notification failure does not fail the order #2",
			SetupMocks: func() {
				mockVerifier.EXPECT().Verify(gomock.Any(), "order-1", testSignature, models.TierBasic).
					Return(models.Accepted(100_000_000, testPayer), nil)
				mockStorage.EXPECT().MarkPaid(gomock.Any(), "order-1", testSignature).Return(true, nil)
				mockNotifier.EXPECT().NotifyPaid(gomock.Any(), gomock.Any(), uint64(100_000_000)).
					Return(errors.New("webhook down"))
			},
		},
		{
			TestName: "Success. Signature consumed by another order #3",
			SetupMocks: func() {
				mockVerifier.EXPECT().Verify(gomock.Any(), "order-1", testSignature, models.TierBasic).
					Return(models.Accepted(100_000_000, testPayer), nil)
				mockStorage.EXPECT().MarkPaid(gomock.Any(), "order-1", testSignature).
					Return(false, storage.ErrSignatureConsumed)
				mockStorage.EXPECT().RejectOrder(gomock.Any(), "order-1", models.ReasonAlreadyConsumed).Return(true, nil)
			},
		},
		{
			TestName: "Success. Concurrent attempt lost the claim, no notification #4",
			SetupMocks: func() {
				mockVerifier.EXPECT().Verify(gomock.Any(), "order-1", testSignature, models.TierBasic).
					Return(models.Accepted(100_000_000, testPayer), nil)
				mockStorage.EXPECT().MarkPaid(gomock.Any(), "order-1", testSignature).Return(false, nil)
			},
		},
		{
			TestName: "Success. Verification rejected #5",
			SetupMocks: func() {
				mockVerifier.EXPECT().Verify(gomock.Any(), "order-1", testSignature, models.TierBasic).
					Return(models.Rejected(models.ReasonInsufficientAmount), nil)
				mockStorage.EXPECT().RejectOrder(gomock.Any(), "order-1", models.ReasonInsufficientAmount).Return(true, nil)
			},
		},
		{
			TestName: "Success. Verification pending, order untouched #6",
			SetupMocks: func() {
				mockVerifier.EXPECT().Verify(gomock.Any(), "order-1", testSignature, models.TierBasic).
					Return(models.Pending(), nil)
			},
		},
		{
			TestName: "Error. Verifier failure #7",
			SetupMocks: func() {
				mockVerifier.EXPECT().Verify(gomock.Any(), "order-1", testSignature, models.TierBasic).
					Return(nil, errors.New("storage down"))
			},
			ExpectedError: errors.New("failed to verify order order-1: storage down"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := orders.ProcessOrder(ctx, order)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

// Два заказа гонятся за одной подписью: оплаченным становится ровно один,
// уведомление уходит ровно один раз, второй получает отказ ALREADY_USED.
func TestOrderService_ProcessOrder_SignatureRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := storagemocks.NewMockOrdersStorage(ctrl)
	mockVerifier := servicemocks.NewMockVerifierService(ctrl)
	mockNotifier := servicemocks.NewMockNotifierService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockStorage, mockVerifier, mockNotifier, config.Worker.MaxAttempts)

	first := verifyingOrder("order-1")
	second := verifyingOrder("order-2")

	mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any(), testSignature, models.TierBasic).
		Return(models.Accepted(100_000_000, testPayer), nil).Times(2)

	// хранилище отдаёт подпись только первому успевшему
	var claimMu sync.Mutex
	claimed := false
	mockStorage.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), testSignature).DoAndReturn(
		func(_ context.Context, id string, _ string) (bool, error) {
			claimMu.Lock()
			defer claimMu.Unlock()
			if claimed {
				return false, storage.ErrSignatureConsumed
			}
			claimed = true
			return true, nil
		}).Times(2)
	mockStorage.EXPECT().RejectOrder(gomock.Any(), gomock.Any(), models.ReasonAlreadyConsumed).Return(true, nil).Times(1)
	mockNotifier.EXPECT().NotifyPaid(gomock.Any(), gomock.Any(), uint64(100_000_000)).Return(nil).Times(1)

	var wg sync.WaitGroup
	for _, order := range []models.OrderData{first, second} {
		wg.Add(1)
		go func(order models.OrderData) {
			defer wg.Done()
			if err := orders.ProcessOrder(context.Background(), order); err != nil {
				t.Errorf("Expected no error, got '%v'", err)
			}
		}(order)
	}
	wg.Wait()
}

func TestOrderService_AttachPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := storagemocks.NewMockOrdersStorage(ctrl)
	mockVerifier := servicemocks.NewMockVerifierService(ctrl)
	mockNotifier := servicemocks.NewMockNotifierService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockStorage, mockVerifier, mockNotifier, config.Worker.MaxAttempts)

	testCases := []struct {
		TestName       string
		SetupMocks     func()
		ExpectedStatus string
		ExpectedError  error
	}{
		{
			TestName: "Success. Payment attached #1",
			SetupMocks: func() {
				mockStorage.EXPECT().AttachPayment(gomock.Any(), "order-1", models.PaymentModeWallet, testSignature).Return(true, nil)
				order := verifyingOrder("order-1")
				mockStorage.EXPECT().GetOrder(gomock.Any(), "order-1").Return(&order, nil)
			},
			ExpectedStatus: models.OrderStatusVerifying,
		},
		{
			TestName: "Success. Repeated submit returns recorded state #2",
			SetupMocks: func() {
				mockStorage.EXPECT().AttachPayment(gomock.Any(), "order-1", models.PaymentModeWallet, testSignature).Return(false, nil)
				order := verifyingOrder("order-1")
				order.Status = models.OrderStatusPaid
				mockStorage.EXPECT().GetOrder(gomock.Any(), "order-1").Return(&order, nil)
			},
			ExpectedStatus: models.OrderStatusPaid,
		},
		{
			TestName: "Error. Order not found #3",
			SetupMocks: func() {
				mockStorage.EXPECT().AttachPayment(gomock.Any(), "order-1", models.PaymentModeWallet, testSignature).Return(false, nil)
				mockStorage.EXPECT().GetOrder(gomock.Any(), "order-1").Return(nil, storage.ErrOrderNotFound)
			},
			ExpectedError: ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			order, err := orders.AttachPayment(ctx, "order-1", models.PaymentModeWallet, testSignature)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && order.Status != tc.ExpectedStatus {
				t.Errorf("Expected status: '%v', got: '%v'", tc.ExpectedStatus, order.Status)
			}
		})
	}
}

func TestOrderService_RejectStalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := storagemocks.NewMockOrdersStorage(ctrl)
	mockVerifier := servicemocks.NewMockVerifierService(ctrl)
	mockNotifier := servicemocks.NewMockNotifierService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockStorage, mockVerifier, mockNotifier, config.Worker.MaxAttempts)

	mockStorage.EXPECT().RejectStalled(gomock.Any(), config.Worker.MaxAttempts, models.ReasonVerificationTimeout).
		Return([]string{"order-1"}, nil)

	ids, err := orders.RejectStalled(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if len(ids) != 1 || ids[0] != "order-1" {
		t.Errorf("Expected rejected order ids ['order-1'], got: '%v'", ids)
	}
}
