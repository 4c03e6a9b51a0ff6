package donationrepo

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

const donationColumns = `id, campaign_id, contributor_id, base_amount, tip_amount, total_amount,
	currency, method, status, external_reference, is_anonymous, display_name,
	contact_address, message, created_at, updated_at`

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(
		&d.ID, &d.CampaignID, &d.ContributorID, &d.BaseAmount, &d.TipAmount, &d.TotalAmount,
		&d.Currency, &d.Method, &d.Status, &d.ExternalReference, &d.IsAnonymous, &d.DisplayName,
		&d.ContactAddress, &d.Message, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts the donation and fills in the generated id and timestamps.
// A unique-violation on external_reference is returned as-is so the caller
// can treat it as an already-applied confirmation.
func (r *Repository) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	query := `
        INSERT INTO donations (campaign_id, contributor_id, base_amount, tip_amount, total_amount,
            currency, method, status, external_reference, is_anonymous, display_name,
            contact_address, message)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		donation.CampaignID, donation.ContributorID, donation.BaseAmount, donation.TipAmount,
		donation.TotalAmount, donation.Currency, donation.Method, donation.Status,
		donation.ExternalReference, donation.IsAnonymous, donation.DisplayName,
		donation.ContactAddress, donation.Message,
	).Scan(&donation.ID, &donation.CreatedAt, &donation.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE external_reference = $1
    `
	donation, err := scanDonation(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation by reference", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE id = $1
    `
	donation, err := scanDonation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) FindByCampaignID(ctx context.Context, campaignID, limit, offset int) ([]domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE campaign_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, campaignID, limit, offset)
	if err != nil {
		zap.L().Error("can't get donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, *donation)
	}
	return donations, nil
}
