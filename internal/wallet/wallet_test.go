package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/solbanner/internal/client"
	clientmocks "github.com/denmor86/solbanner/internal/client/mocks"
	"github.com/denmor86/solbanner/internal/config"
	"github.com/denmor86/solbanner/internal/logger"
	"go.uber.org/mock/gomock"
)

func TestRPCBuilder_SubmitAndConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedger := clientmocks.NewMockLedgerService(ctrl)

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	builder := &RPCBuilder{
		Ledger:          mockLedger,
		Commitment:      "confirmed",
		ConfirmTimeout:  200 * time.Millisecond,
		ConfirmInterval: 10 * time.Millisecond,
	}

	testCases := []struct {
		TestName          string
		SetupMocks        func()
		ExpectedSignature string
		ExpectedError     error
	}{
		{
			TestName: "Success. Confirmed after polling #1",
			SetupMocks: func() {
				mockLedger.EXPECT().SendTransaction(gomock.Any(), "signed-tx").Return("sig123", nil)
				// первый опрос - транзакция ещё не видна, второй - подтверждена
				mockLedger.EXPECT().GetSignatureStatus(gomock.Any(), "sig123").Return(nil, client.ErrTxNotFound)
				mockLedger.EXPECT().GetSignatureStatus(gomock.Any(), "sig123").Return(&client.SignatureStatus{Confirmation: "confirmed"}, nil)
			},
			ExpectedSignature: "sig123",
		},
		{
			TestName: "Success. Finalized counts as confirmed #2",
			SetupMocks: func() {
				mockLedger.EXPECT().SendTransaction(gomock.Any(), "signed-tx").Return("sig123", nil)
				mockLedger.EXPECT().GetSignatureStatus(gomock.Any(), "sig123").Return(&client.SignatureStatus{Confirmation: "finalized"}, nil)
			},
			ExpectedSignature: "sig123",
		},
		{
			TestName: "Error. Node refused transaction #3",
			SetupMocks: func() {
				mockLedger.EXPECT().SendTransaction(gomock.Any(), "signed-tx").Return("", errors.New("blockhash expired"))
			},
			ExpectedError: ErrSubmit,
		},
		{
			TestName: "Error. Transaction failed on chain #4",
			SetupMocks: func() {
				mockLedger.EXPECT().SendTransaction(gomock.Any(), "signed-tx").Return("sig123", nil)
				mockLedger.EXPECT().GetSignatureStatus(gomock.Any(), "sig123").Return(&client.SignatureStatus{Confirmation: "confirmed", Failed: true}, nil)
			},
			ExpectedError: ErrRejected,
		},
		{
			TestName: "Error. Confirmation timeout #5",
			SetupMocks: func() {
				mockLedger.EXPECT().SendTransaction(gomock.Any(), "signed-tx").Return("sig123", nil)
				// статус так и не дорастает до требуемого уровня
				mockLedger.EXPECT().GetSignatureStatus(gomock.Any(), "sig123").Return(&client.SignatureStatus{Confirmation: "processed"}, nil).AnyTimes()
			},
			ExpectedError: ErrConfirmTimeout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			signature, err := builder.SubmitAndConfirm(context.Background(), "signed-tx")

			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if signature != tc.ExpectedSignature {
				t.Errorf("Expected signature: '%v', got: '%v'", tc.ExpectedSignature, signature)
			}
		})
	}
}

func TestRPCBuilder_SubmitAndConfirm_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedger := clientmocks.NewMockLedgerService(ctrl)

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	builder := &RPCBuilder{
		Ledger:          mockLedger,
		Commitment:      "confirmed",
		ConfirmTimeout:  time.Minute,
		ConfirmInterval: 10 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	mockLedger.EXPECT().SendTransaction(gomock.Any(), "signed-tx").DoAndReturn(
		func(ctx context.Context, signedTx string) (string, error) {
			cancel()
			return "sig123", nil
		})
	mockLedger.EXPECT().GetSignatureStatus(gomock.Any(), "sig123").
		Return(&client.SignatureStatus{Confirmation: "processed"}, nil).AnyTimes()

	_, err := builder.SubmitAndConfirm(ctx, "signed-tx")

	// отмена вызывающей стороны не должна маскироваться под таймаут подтверждения
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected error: '%v', got: '%v'", context.Canceled, err)
	}
	if errors.Is(err, ErrConfirmTimeout) {
		t.Errorf("Expected cancellation not to be reported as confirmation timeout")
	}
}

func TestConfirmed(t *testing.T) {
	testCases := []struct {
		TestName string
		Status   string
		Required string
		Expected bool
	}{
		{"Confirmed satisfies confirmed #1", "confirmed", "confirmed", true},
		{"Finalized satisfies confirmed #2", "finalized", "confirmed", true},
		{"Confirmed does not satisfy finalized #3", "confirmed", "finalized", false},
		{"Processed satisfies nothing #4", "processed", "confirmed", false},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := confirmed(tc.Status, tc.Required); got != tc.Expected {
				t.Errorf("Expected: '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}
