package activityrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, entry *domain.ActivityEntry) (*domain.ActivityEntry, error) {
	query := `
		INSERT INTO activities (campaign_id, contributor_id, display_name, amount, currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		entry.CampaignID, entry.ContributorID, entry.DisplayName, entry.Amount, entry.Currency,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save activity entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) FindByCampaignID(ctx context.Context, campaignID, limit, offset int) ([]domain.ActivityEntry, error) {
	query := `
        SELECT id, campaign_id, contributor_id, display_name, amount, currency, created_at
        FROM activities
        WHERE campaign_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, campaignID, limit, offset)
	if err != nil {
		zap.L().Error("can't get activity entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var entry domain.ActivityEntry
		err := rows.Scan(
			&entry.ID, &entry.CampaignID, &entry.ContributorID, &entry.DisplayName,
			&entry.Amount, &entry.Currency, &entry.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan activity row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
