package intentrepo

import (
	"context"
	"errors"
	"time"

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

const intentColumns = `id, reference, campaign_id, contributor_id, base_amount, tip_amount,
	currency, method, is_anonymous, display_name, contact_address, message, status,
	created_at, updated_at`

func scanIntent(row pgx.Row) (*domain.PaymentIntent, error) {
	var in domain.PaymentIntent
	err := row.Scan(
		&in.ID, &in.Reference, &in.CampaignID, &in.ContributorID, &in.BaseAmount, &in.TipAmount,
		&in.Currency, &in.Method, &in.IsAnonymous, &in.DisplayName, &in.ContactAddress,
		&in.Message, &in.Status, &in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *Repository) Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error) {
	query := `
        INSERT INTO payment_intents (reference, campaign_id, contributor_id, base_amount, tip_amount,
            currency, method, is_anonymous, display_name, contact_address, message, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		intent.Reference, intent.CampaignID, intent.ContributorID, intent.BaseAmount,
		intent.TipAmount, intent.Currency, intent.Method, intent.IsAnonymous,
		intent.DisplayName, intent.ContactAddress, intent.Message, intent.Status,
	).Scan(&intent.ID, &intent.CreatedAt, &intent.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save payment intent", zap.Error(err))
		return nil, err
	}
	return intent, nil
}

func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.PaymentIntent, error) {
	query := `
        SELECT ` + intentColumns + `
        FROM payment_intents
        WHERE reference = $1
    `
	intent, err := scanIntent(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment intent", zap.Error(err))
		return nil, err
	}
	return intent, nil
}

// FindStale returns pending intents created before the cutoff, oldest first.
// The reconciler sweeps these against the gateway.
func (r *Repository) FindStale(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PaymentIntent, error) {
	query := `
        SELECT ` + intentColumns + `
        FROM payment_intents
        WHERE status = 'pending' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, cutoff, int(limit))
	if err != nil {
		zap.L().Error("can't get stale payment intents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var intents []domain.PaymentIntent
	for rows.Next() {
		intent, err := scanIntent(rows)
		if err != nil {
			zap.L().Error("can't scan payment intent row", zap.Error(err))
			return nil, err
		}
		intents = append(intents, *intent)
	}
	return intents, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, reference, status string) error {
	query := `
        UPDATE payment_intents
        SET status = $1, updated_at = NOW()
        WHERE reference = $2
    `
	tag, err := r.db.Exec(ctx, query, status, reference)
	if err != nil {
		zap.L().Error("can't update payment intent status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
