package campaignservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/givefund/givefund/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	List(ctx context.Context, limit, offset int) ([]domain.Campaign, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

const (
	// DraftCampaignStatus кампания создана, но не принимает пожертвования;
	DraftCampaignStatus string = "draft"
	// ActiveCampaignStatus кампания открыта для пожертвований;
	ActiveCampaignStatus string = "active"
	// ClosedCampaignStatus кампания завершена;
	ClosedCampaignStatus string = "closed"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrNotCampaignOwner  = errors.New("campaign belongs to another contributor")
	ErrInvalidGoalAmount = errors.New("goal amount must be positive")
)

func (s *Service) CreateCampaign(ctx context.Context, ownerID int, title, description string, goalAmount decimal.Decimal) (*domain.Campaign, error) {
	if !goalAmount.IsPositive() {
		return nil, ErrInvalidGoalAmount
	}

	campaign := &domain.Campaign{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		GoalAmount:  goalAmount,
		Status:      ActiveCampaignStatus,
	}

	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		zap.L().Error("can't create campaign: ", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetCampaign(ctx context.Context, id int) (*domain.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

func (s *Service) ListCampaigns(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	campaigns, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		zap.L().Error("failed to list campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

// CloseCampaign stops further contributions. Only the owner may close their
// campaign; already-recorded donations and totals are untouched.
func (s *Service) CloseCampaign(ctx context.Context, id, ownerID int) error {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	if campaign.OwnerID != ownerID {
		return ErrNotCampaignOwner
	}

	if err := s.repo.UpdateStatus(ctx, id, ClosedCampaignStatus); err != nil {
		zap.L().Error("can't close campaign", zap.Error(err))
		return err
	}
	return nil
}
