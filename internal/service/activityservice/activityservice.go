package activityservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/givefund/givefund/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, entry *domain.ActivityEntry) (*domain.ActivityEntry, error)
	FindByCampaignID(ctx context.Context, campaignID, limit, offset int) ([]domain.ActivityEntry, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Record writes a public activity-feed entry for an attributed, non-anonymous
// donation. Called post-commit by the donation dispatcher.
func (s *Service) Record(ctx context.Context, contributorID, campaignID int, amount decimal.Decimal, currency string) error {
	entry := &domain.ActivityEntry{
		CampaignID:    campaignID,
		ContributorID: contributorID,
		Amount:        amount,
		Currency:      currency,
	}
	if _, err := s.repo.Create(ctx, entry); err != nil {
		zap.L().Error("can't record activity entry", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetCampaignActivity(ctx context.Context, campaignID, limit, offset int) ([]domain.ActivityEntry, error) {
	entries, err := s.repo.FindByCampaignID(ctx, campaignID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch activity entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
