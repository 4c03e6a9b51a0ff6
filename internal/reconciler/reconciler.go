package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/gateway"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// processingRefs keeps a reference from being handled by two sweeps at once.
var processingRefs sync.Map

type Payments interface {
	FindStaleIntents(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PaymentIntent, error)
	ApplyPayment(ctx context.Context, payment *gateway.Payment) (*domain.Donation, error)
}

// Service periodically resolves payment intents whose webhook confirmation
// never arrived: it asks the gateway for the payment by reference and feeds
// final results through the regular confirmation pipeline, which dedupes by
// reference. An intent that is still pending at the gateway is left for the
// next sweep.
type Service struct {
	payments      Payments
	gateway       gateway.Client
	limit         uint32
	minAge        time.Duration
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(payments Payments, gw gateway.Client) *Service {
	return &Service{
		payments:      payments,
		gateway:       gw,
		limit:         1000,
		minAge:        time.Minute * 5,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Minute * 1,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.processIntents(ctx)
		}
	}
}

func (s *Service) processIntents(ctx context.Context) {
	cutoff := time.Now().Add(-s.minAge)
	intents, err := s.payments.FindStaleIntents(ctx, cutoff, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch stale intents", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, intent := range intents {
		intent := intent

		if _, loaded := processingRefs.LoadOrStore(intent.Reference, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingRefs.Delete(intent.Reference)
				return s.handleIntent(ctx, intent)
			})
			if err != nil {
				processingRefs.Delete(intent.Reference)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling intents", zap.Error(err))
	}
}

func (s *Service) handleIntent(ctx context.Context, intent domain.PaymentIntent) error {
	var payment *gateway.Payment
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			payment, err = s.gateway.GetPayment(ctx, intent.Reference)
			if err != nil {
				if errors.Is(err, gateway.ErrPaymentNotFound) {
					// The gateway has no record yet; the intent stays
					// pending and the next sweep picks it up again.
					zap.L().Warn("Payment not found in gateway", zap.String("reference", intent.Reference))
					return nil
				}
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to look up payment %s after %d retries: %w", intent.Reference, maxRetries, err)
			}
			return s.applyPayment(ctx, intent, payment)
		}
	}
	return nil
}

func (s *Service) applyPayment(ctx context.Context, intent domain.PaymentIntent, payment *gateway.Payment) error {
	if payment.Status == gateway.PaymentStatusPending {
		zap.L().Info("Payment still pending at gateway", zap.String("reference", intent.Reference))
		return nil
	}

	if _, err := s.payments.ApplyPayment(ctx, payment); err != nil {
		return fmt.Errorf("failed to apply reconciled payment %s: %w", intent.Reference, err)
	}

	zap.L().Info("Intent reconciled",
		zap.String("reference", intent.Reference),
		zap.String("status", payment.Status),
	)
	return nil
}
