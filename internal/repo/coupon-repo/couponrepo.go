package couponrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	query := `
		INSERT INTO coupons (code, donation_id, campaign_id, contributor_id, amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, issued_at
	`
	err := r.db.QueryRow(ctx, query,
		coupon.Code, coupon.DonationID, coupon.CampaignID, coupon.ContributorID,
		coupon.Amount, coupon.Currency,
	).Scan(&coupon.ID, &coupon.IssuedAt)
	if err != nil {
		zap.L().Error("can't save coupon", zap.Error(err))
		return nil, err
	}
	return coupon, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `
        SELECT id, code, donation_id, campaign_id, contributor_id, amount, currency, issued_at
        FROM coupons
        WHERE code = $1
    `
	row := r.db.QueryRow(ctx, query, code)

	var coupon domain.Coupon
	err := row.Scan(
		&coupon.ID, &coupon.Code, &coupon.DonationID, &coupon.CampaignID,
		&coupon.ContributorID, &coupon.Amount, &coupon.Currency, &coupon.IssuedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find coupon", zap.Error(err))
		return nil, err
	}
	return &coupon, nil
}
