package donationservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/pg"
	"github.com/givefund/givefund/internal/service/campaignservice"
)

type Repo interface {
	Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	FindByReference(ctx context.Context, reference string) (*domain.Donation, error)
	FindByID(ctx context.Context, id int) (*domain.Donation, error)
	FindByCampaignID(ctx context.Context, campaignID, limit, offset int) ([]domain.Donation, error)
}

type CampaignRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	IncrementTotals(ctx context.Context, id int, amountDelta decimal.Decimal, countDelta int) error
}

// ActivityNotifier and CouponIssuer are the post-commit collaborators. Their
// failures are isolated by the dispatcher and never reach the caller.
type ActivityNotifier interface {
	Record(ctx context.Context, contributorID, campaignID int, amount decimal.Decimal, currency string) error
}

type CouponIssuer interface {
	Issue(ctx context.Context, donation *domain.Donation, campaignTitle string) (*domain.Coupon, error)
}

const (
	// PendingStatus ожидает подтверждения платежа;
	PendingStatus string = "pending"
	// CompletedStatus платёж подтверждён, учтён в агрегате кампании;
	CompletedStatus string = "completed"
	// FailedStatus платёж отклонён, запись хранится для аудита;
	FailedStatus string = "failed"
	// RefundedStatus платёж возвращён;
	RefundedStatus string = "refunded"
)

const (
	MethodCard   string = "card"
	MethodBank   string = "bank"
	MethodMobile string = "mobile"
)

const defaultCurrency = "USD"

const (
	maxTxRetries  = 3
	retryInterval = time.Millisecond * 50
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrCampaignNotOpen  = errors.New("campaign is not open for contributions")
	ErrInvalidAmount    = errors.New("donation amount must be positive")
)

// DirectIntent is the direct/manual entry point: the caller vouches for the
// payment, so the resulting donation is completed immediately.
type DirectIntent struct {
	CampaignID     int
	ContributorID  *int
	BaseAmount     decimal.Decimal
	TipAmount      decimal.Decimal
	Currency       string
	Method         string
	IsAnonymous    bool
	DisplayName    string
	ContactAddress string
	Message        string
}

// Confirmation is the normalized payment-gateway entry point. Reference is
// the gateway-assigned payment id and the idempotency key: a redelivered
// confirmation with a known reference is a no-op.
type Confirmation struct {
	Reference      string
	CampaignID     int
	ContributorID  *int
	BaseAmount     decimal.Decimal
	TipAmount      decimal.Decimal
	Currency       string
	Method         string
	Status         string
	IsAnonymous    bool
	DisplayName    string
	ContactAddress string
	Message        string
}

// NotificationOutcome records the result of one post-commit notification
// attempt, for operational visibility only.
type NotificationOutcome struct {
	Name string
	OK   bool
	Err  error
}

type Service struct {
	donationRepo Repo
	campaignRepo CampaignRepo
	txManager    pg.TXManager
	activity     ActivityNotifier
	coupons      CouponIssuer
}

func New(donationRepo Repo, campaignRepo CampaignRepo, txManager pg.TXManager, activity ActivityNotifier, coupons CouponIssuer) *Service {
	return &Service{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		txManager:    txManager,
		activity:     activity,
		coupons:      coupons,
	}
}

// RecordDirect creates a completed donation and updates the campaign totals
// in one atomic scope. The campaign must exist and be open for contributions.
func (s *Service) RecordDirect(ctx context.Context, intent DirectIntent) (*domain.Donation, error) {
	if !intent.BaseAmount.IsPositive() || intent.TipAmount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	campaign, err := s.campaignRepo.FindByID(ctx, intent.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if campaign.Status != campaignservice.ActiveCampaignStatus {
		zap.L().Info("donation rejected, campaign not open", zap.Int("campaign_id", campaign.ID), zap.String("status", campaign.Status))
		return nil, ErrCampaignNotOpen
	}

	reference := newDirectReference()
	donation := &domain.Donation{
		CampaignID:        intent.CampaignID,
		ContributorID:     intent.ContributorID,
		BaseAmount:        intent.BaseAmount,
		TipAmount:         intent.TipAmount,
		TotalAmount:       intent.BaseAmount.Add(intent.TipAmount),
		Currency:          normalizeCurrency(intent.Currency),
		Method:            intent.Method,
		Status:            CompletedStatus,
		ExternalReference: &reference,
		IsAnonymous:       intent.IsAnonymous,
		DisplayName:       intent.DisplayName,
		ContactAddress:    intent.ContactAddress,
		Message:           intent.Message,
	}

	if err := s.commit(ctx, donation); err != nil {
		zap.L().Error("can't commit direct donation", zap.Error(err))
		return nil, err
	}

	s.dispatch(ctx, donation, campaign)

	return donation, nil
}

// ApplyConfirmed records a gateway-confirmed payment. It is idempotent by
// external reference: a redelivery returns the already-persisted donation
// without touching the aggregate or firing notifications again. A failed
// confirmation still produces a donation row for audit but never updates the
// campaign totals.
func (s *Service) ApplyConfirmed(ctx context.Context, conf Confirmation) (*domain.Donation, error) {
	existing, err := s.donationRepo.FindByReference(ctx, conf.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("confirmation already applied", zap.String("reference", conf.Reference))
		return existing, nil
	}

	campaign, err := s.campaignRepo.FindByID(ctx, conf.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	reference := conf.Reference
	donation := &domain.Donation{
		CampaignID:        conf.CampaignID,
		ContributorID:     conf.ContributorID,
		BaseAmount:        conf.BaseAmount,
		TipAmount:         conf.TipAmount,
		TotalAmount:       conf.BaseAmount.Add(conf.TipAmount),
		Currency:          normalizeCurrency(conf.Currency),
		Method:            conf.Method,
		Status:            conf.Status,
		ExternalReference: &reference,
		IsAnonymous:       conf.IsAnonymous,
		DisplayName:       conf.DisplayName,
		ContactAddress:    conf.ContactAddress,
		Message:           conf.Message,
	}

	if err := s.commit(ctx, donation); err != nil {
		// A concurrent delivery of the same reference won the insert race.
		// The unique index makes that a duplicate, not a failure: return
		// what the winner wrote.
		if isUniqueViolation(err) {
			zap.L().Info("duplicate confirmation lost insert race", zap.String("reference", conf.Reference))
			return s.donationRepo.FindByReference(ctx, conf.Reference)
		}
		zap.L().Error("can't commit confirmed donation", zap.Error(err))
		return nil, err
	}

	if donation.Status == CompletedStatus {
		s.dispatch(ctx, donation, campaign)
	}

	return donation, nil
}

func (s *Service) GetCampaignDonations(ctx context.Context, campaignID, limit, offset int) ([]domain.Donation, error) {
	donations, err := s.donationRepo.FindByCampaignID(ctx, campaignID, limit, offset)
	if err != nil {
		zap.L().Error("failed to get donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

// commit performs the atomic write: insert the donation and, iff it is
// completed, apply the matching aggregate increment. Either both changes are
// visible or neither. Write conflicts are retried a bounded number of times
// before the storage error is surfaced.
func (s *Service) commit(ctx context.Context, donation *domain.Donation) error {
	var err error
	for attempt := 1; attempt <= maxTxRetries; attempt++ {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			if _, err := s.donationRepo.Create(ctx, donation); err != nil {
				return err
			}
			if donation.Status == CompletedStatus {
				if err := s.campaignRepo.IncrementTotals(ctx, donation.CampaignID, donation.BaseAmount, 1); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil || !isRetryableConflict(err) {
			return err
		}
		zap.L().Warn("write conflict, retrying atomic scope", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(retryInterval * time.Duration(attempt))
	}
	return err
}

// dispatch fires the post-commit notifications. Each attempt is isolated: a
// failure is logged and recorded in the outcome, never returned. The activity
// entry is skipped for anonymous or unattributed donations; the coupon is
// attempted for every completed donation.
func (s *Service) dispatch(ctx context.Context, donation *domain.Donation, campaign *domain.Campaign) []NotificationOutcome {
	outcomes := make([]NotificationOutcome, 0, 2)

	if donation.ContributorID != nil && !donation.IsAnonymous {
		err := s.activity.Record(ctx, *donation.ContributorID, donation.CampaignID, donation.BaseAmount, donation.Currency)
		outcomes = append(outcomes, NotificationOutcome{Name: "activity", OK: err == nil, Err: err})
		if err != nil {
			zap.L().Error("activity notification failed", zap.Int("donation_id", donation.ID), zap.Error(err))
		}
	}

	_, err := s.coupons.Issue(ctx, donation, campaign.Title)
	outcomes = append(outcomes, NotificationOutcome{Name: "coupon", OK: err == nil, Err: err})
	if err != nil {
		zap.L().Error("coupon issuance failed", zap.Int("donation_id", donation.ID), zap.Error(err))
	}

	return outcomes
}

func normalizeCurrency(currency string) string {
	if currency == "" {
		return defaultCurrency
	}
	return strings.ToUpper(currency)
}

// newDirectReference synthesizes a traceability reference for the direct
// flow. It is unique by construction but carries no idempotency meaning.
func newDirectReference() string {
	suffix := make([]byte, 4)
	rand.Read(suffix)
	return fmt.Sprintf("dn-%d-%s", time.Now().UnixNano(), hex.EncodeToString(suffix))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isRetryableConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// serialization_failure and deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
