package reconciler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/gateway"
)

func NewMock(t *testing.T) (*Service, *MockPayments, *gateway.MockClient) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := NewMockPayments(ctrl)
	gw := gateway.NewMockClient(ctrl)
	service := New(payments, gw)
	return service, payments, gw
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processIntents(t *testing.T) {
	tests := []struct {
		name            string
		mockFindIntents func(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PaymentIntent, error)
		mockAddTask     func(ctx context.Context, task Task) error
		intentCount     int
	}{
		{
			name: "successfully sweeps stale intents",
			mockFindIntents: func(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PaymentIntent, error) {
				return []domain.PaymentIntent{
					{Reference: "sweep-001", CampaignID: 1, Status: "pending"},
					{Reference: "sweep-002", CampaignID: 2, Status: "pending"},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			intentCount: 2,
		},
		{
			name: "fails when fetching stale intents",
			mockFindIntents: func(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PaymentIntent, error) {
				return nil, fmt.Errorf("failed to fetch stale intents")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			intentCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockFindIntents: func(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PaymentIntent, error) {
				return []domain.PaymentIntent{
					{Reference: "sweep-003", CampaignID: 1, Status: "pending"},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			intentCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			payments := NewMockPayments(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			payments.EXPECT().
				FindStaleIntents(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindIntents).
				Times(1)
			for i := 0; i < tt.intentCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			service := &Service{
				payments:   payments,
				workerPool: workerPool,
				limit:      10,
				minAge:     time.Minute,
			}
			service.processIntents(context.Background())
		})
	}
}

func TestService_processIntents_SkipsReferencesInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := NewMockPayments(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	processingRefs.Store("sweep-busy", struct{}{})
	defer processingRefs.Delete("sweep-busy")

	payments.EXPECT().
		FindStaleIntents(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.PaymentIntent{{Reference: "sweep-busy"}}, nil)

	service := &Service{
		payments:   payments,
		workerPool: workerPool,
		limit:      10,
		minAge:     time.Minute,
	}
	// AddTask has no expectation: the in-flight reference must be skipped.
	service.processIntents(context.Background())
}

func TestService_handleIntent(t *testing.T) {
	intent := domain.PaymentIntent{Reference: "rec-001", CampaignID: 1, BaseAmount: decimal.NewFromInt(25)}

	tests := []struct {
		name        string
		prepareMock func(payments *MockPayments, gw *gateway.MockClient)
		expectErr   bool
	}{
		{
			name: "completed payment is applied through the pipeline",
			prepareMock: func(payments *MockPayments, gw *gateway.MockClient) {
				gw.EXPECT().GetPayment(gomock.Any(), "rec-001").
					Return(&gateway.Payment{Reference: "rec-001", Amount: decimal.NewFromInt(25), Status: gateway.PaymentStatusCompleted}, nil)
				payments.EXPECT().ApplyPayment(gomock.Any(), gomock.Any()).
					Return(&domain.Donation{ID: 1}, nil)
			},
		},
		{
			name: "payment unknown to the gateway stays pending",
			prepareMock: func(payments *MockPayments, gw *gateway.MockClient) {
				gw.EXPECT().GetPayment(gomock.Any(), "rec-001").
					Return(nil, gateway.ErrPaymentNotFound)
			},
		},
		{
			name: "payment still pending at the gateway is left alone",
			prepareMock: func(payments *MockPayments, gw *gateway.MockClient) {
				gw.EXPECT().GetPayment(gomock.Any(), "rec-001").
					Return(&gateway.Payment{Reference: "rec-001", Status: gateway.PaymentStatusPending}, nil)
			},
		},
		{
			name: "apply failure is surfaced",
			prepareMock: func(payments *MockPayments, gw *gateway.MockClient) {
				gw.EXPECT().GetPayment(gomock.Any(), "rec-001").
					Return(&gateway.Payment{Reference: "rec-001", Status: gateway.PaymentStatusFailed}, nil)
				payments.EXPECT().ApplyPayment(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			payments := NewMockPayments(ctrl)
			gw := gateway.NewMockClient(ctrl)
			tt.prepareMock(payments, gw)

			service := &Service{payments: payments, gateway: gw}
			err := service.handleIntent(context.Background(), intent)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_handleIntent_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := NewMockPayments(ctrl)
	gw := gateway.NewMockClient(ctrl)
	service := &Service{payments: payments, gateway: gw}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := service.handleIntent(ctx, domain.PaymentIntent{Reference: "rec-canceled"})
	assert.ErrorIs(t, err, context.Canceled)
}
