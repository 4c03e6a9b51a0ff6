package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/gateway"
	"github.com/givefund/givefund/internal/service/campaignservice"
	"github.com/givefund/givefund/internal/service/donationservice"
)

type IntentRepo interface {
	Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error)
	FindByReference(ctx context.Context, reference string) (*domain.PaymentIntent, error)
	FindStale(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PaymentIntent, error)
	UpdateStatus(ctx context.Context, reference, status string) error
}

type CampaignProvider interface {
	GetCampaign(ctx context.Context, id int) (*domain.Campaign, error)
}

type DonationApplier interface {
	ApplyConfirmed(ctx context.Context, conf donationservice.Confirmation) (*domain.Donation, error)
}

const (
	// IntentPendingStatus платёж создан в шлюзе, подтверждение не получено;
	IntentPendingStatus string = "pending"
	// IntentConfirmedStatus подтверждение применено;
	IntentConfirmedStatus string = "confirmed"
	// IntentFailedStatus платёж отклонён шлюзом;
	IntentFailedStatus string = "failed"
)

var (
	ErrUnknownReference = errors.New("no payment intent for reference")
	ErrPaymentNotFinal  = errors.New("payment is not in a final status")
)

type IntentInput struct {
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

type Service struct {
	intentRepo IntentRepo
	campaigns  CampaignProvider
	donations  DonationApplier
	gateway    gateway.Client
}

func New(intentRepo IntentRepo, campaigns CampaignProvider, donations DonationApplier, gw gateway.Client) *Service {
	return &Service{
		intentRepo: intentRepo,
		campaigns:  campaigns,
		donations:  donations,
		gateway:    gw,
	}
}

// CreateIntent registers a charge with the gateway and stores the pending
// intent locally. The intent carries everything the confirmation payload
// lacks: campaign, attribution and presentation fields.
func (s *Service) CreateIntent(ctx context.Context, input IntentInput) (*domain.PaymentIntent, string, error) {
	if !input.BaseAmount.IsPositive() || input.TipAmount.IsNegative() {
		return nil, "", donationservice.ErrInvalidAmount
	}

	campaign, err := s.campaigns.GetCampaign(ctx, input.CampaignID)
	if err != nil {
		return nil, "", err
	}
	if campaign.Status != campaignservice.ActiveCampaignStatus {
		return nil, "", donationservice.ErrCampaignNotOpen
	}

	result, err := s.gateway.CreateIntent(ctx, gateway.IntentRequest{
		Amount:      input.BaseAmount.Add(input.TipAmount),
		Currency:    input.Currency,
		Method:      input.Method,
		Description: campaign.Title,
	})
	if err != nil {
		zap.L().Error("can't create gateway intent", zap.Error(err))
		return nil, "", err
	}

	intent := &domain.PaymentIntent{
		Reference:      result.Reference,
		CampaignID:     input.CampaignID,
		ContributorID:  input.ContributorID,
		BaseAmount:     input.BaseAmount,
		TipAmount:      input.TipAmount,
		Currency:       input.Currency,
		Method:         input.Method,
		IsAnonymous:    input.IsAnonymous,
		DisplayName:    input.DisplayName,
		ContactAddress: input.ContactAddress,
		Message:        input.Message,
		Status:         IntentPendingStatus,
	}

	if _, err := s.intentRepo.Create(ctx, intent); err != nil {
		zap.L().Error("can't save payment intent", zap.Error(err))
		return nil, "", err
	}

	return intent, result.RedirectURL, nil
}

// ApplyPayment maps a final gateway payment onto the stored intent and routes
// it through the donation pipeline. Safe to call more than once per
// reference; the donation layer dedupes.
func (s *Service) ApplyPayment(ctx context.Context, payment *gateway.Payment) (*domain.Donation, error) {
	if payment.Status != gateway.PaymentStatusCompleted && payment.Status != gateway.PaymentStatusFailed {
		return nil, ErrPaymentNotFinal
	}

	intent, err := s.intentRepo.FindByReference(ctx, payment.Reference)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		zap.L().Warn("confirmation for unknown reference", zap.String("reference", payment.Reference))
		return nil, ErrUnknownReference
	}

	base, tip := intent.BaseAmount, intent.TipAmount
	if !payment.Amount.Equal(base.Add(tip)) {
		// The gateway's word on the charged amount wins over the intent.
		zap.L().Warn("gateway amount differs from intent",
			zap.String("reference", payment.Reference),
			zap.String("gateway_amount", payment.Amount.String()),
			zap.String("intent_amount", base.Add(tip).String()),
		)
		base, tip = payment.Amount, decimal.Zero
	}

	currency := payment.Currency
	if currency == "" {
		currency = intent.Currency
	}

	status := donationservice.CompletedStatus
	if payment.Status == gateway.PaymentStatusFailed {
		status = donationservice.FailedStatus
	}

	donation, err := s.donations.ApplyConfirmed(ctx, donationservice.Confirmation{
		Reference:      payment.Reference,
		CampaignID:     intent.CampaignID,
		ContributorID:  intent.ContributorID,
		BaseAmount:     base,
		TipAmount:      tip,
		Currency:       currency,
		Method:         intent.Method,
		Status:         status,
		IsAnonymous:    intent.IsAnonymous,
		DisplayName:    intent.DisplayName,
		ContactAddress: intent.ContactAddress,
		Message:        intent.Message,
	})
	if err != nil {
		return nil, err
	}

	intentStatus := IntentConfirmedStatus
	if status == donationservice.FailedStatus {
		intentStatus = IntentFailedStatus
	}
	if err := s.intentRepo.UpdateStatus(ctx, payment.Reference, intentStatus); err != nil {
		// The donation is committed; intent status is bookkeeping only.
		zap.L().Error("can't update intent status", zap.String("reference", payment.Reference), zap.Error(err))
	}

	return donation, nil
}

// FindStaleIntents exposes the reconciler sweep query.
func (s *Service) FindStaleIntents(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PaymentIntent, error) {
	return s.intentRepo.FindStale(ctx, cutoff, limit)
}
