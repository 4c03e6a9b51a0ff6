package campaignrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	query := `
        INSERT INTO campaigns (owner_id, title, description, goal_amount, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, raised_amount, donation_count, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		campaign.OwnerID, campaign.Title, campaign.Description, campaign.GoalAmount, campaign.Status,
	).Scan(&campaign.ID, &campaign.RaisedAmount, &campaign.DonationCount, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Campaign, error) {
	query := `
        SELECT id, owner_id, title, description, goal_amount, raised_amount, donation_count, status, created_at, updated_at
        FROM campaigns
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var campaign domain.Campaign
	err := row.Scan(
		&campaign.ID, &campaign.OwnerID, &campaign.Title, &campaign.Description,
		&campaign.GoalAmount, &campaign.RaisedAmount, &campaign.DonationCount,
		&campaign.Status, &campaign.CreatedAt, &campaign.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return &campaign, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	query := `
        SELECT id, owner_id, title, description, goal_amount, raised_amount, donation_count, status, created_at, updated_at
        FROM campaigns
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't get campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var campaign domain.Campaign
		err := rows.Scan(
			&campaign.ID, &campaign.OwnerID, &campaign.Title, &campaign.Description,
			&campaign.GoalAmount, &campaign.RaisedAmount, &campaign.DonationCount,
			&campaign.Status, &campaign.CreatedAt, &campaign.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

// IncrementTotals applies a single aggregate delta to the campaign counters.
// It must run inside the caller's transaction scope together with the donation
// insert; the UPDATE itself is the serialization point for concurrent
// donations to the same campaign.
func (r *Repository) IncrementTotals(ctx context.Context, id int, amountDelta decimal.Decimal, countDelta int) error {
	query := `
        UPDATE campaigns
        SET raised_amount = raised_amount + $1, donation_count = donation_count + $2, updated_at = NOW()
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, amountDelta, countDelta, id)
	if err != nil {
		zap.L().Error("can't increment campaign totals", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE campaigns
        SET status = $1, updated_at = NOW()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update campaign status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
