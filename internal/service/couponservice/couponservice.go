package couponservice

import (
	"context"
	"errors"

	"github.com/ShiraazMoollatjie/goluhn"
	"go.uber.org/zap"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/pkg/validate"
)

type Repo interface {
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	FindByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Coupon codes are numeric with a trailing Luhn check digit, so a code can be
// rejected offline before hitting storage.
const couponCodeLength = 12

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidCode    = errors.New("invalid coupon code")
)

// Issue creates a reward coupon for a completed donation. Called post-commit
// by the donation dispatcher; attempted for anonymous donations too.
func (s *Service) Issue(ctx context.Context, donation *domain.Donation, campaignTitle string) (*domain.Coupon, error) {
	_, code, err := goluhn.Generate(couponCodeLength)
	if err != nil {
		zap.L().Error("can't generate coupon code", zap.Error(err))
		return nil, err
	}

	coupon := &domain.Coupon{
		Code:          code,
		DonationID:    donation.ID,
		CampaignID:    donation.CampaignID,
		ContributorID: donation.ContributorID,
		Amount:        donation.BaseAmount,
		Currency:      donation.Currency,
	}

	created, err := s.repo.Create(ctx, coupon)
	if err != nil {
		zap.L().Error("can't issue coupon", zap.Error(err))
		return nil, err
	}

	zap.L().Info("coupon issued",
		zap.Int("donation_id", donation.ID),
		zap.String("campaign_title", campaignTitle),
	)
	return created, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	if !validate.IsCouponCode(code) {
		return nil, ErrInvalidCode
	}

	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		zap.L().Error("failed to fetch coupon", zap.Error(err))
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}
