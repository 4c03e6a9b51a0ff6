package intentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/givefund/givefund/internal/domain"
)

var intentTestColumns = []string{
	"id", "reference", "campaign_id", "contributor_id", "base_amount", "tip_amount",
	"currency", "method", "is_anonymous", "display_name", "contact_address", "message",
	"status", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	contributorID := 7

	rows := pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payment_intents")).
		WithArgs("pay-001", 1, &contributorID, decimal.NewFromInt(25), decimal.NewFromInt(5),
			"USD", "card", false, "", "", "", "pending").
		WillReturnRows(rows)

	intent := &domain.PaymentIntent{
		Reference:     "pay-001",
		CampaignID:    1,
		ContributorID: &contributorID,
		BaseAmount:    decimal.NewFromInt(25),
		TipAmount:     decimal.NewFromInt(5),
		Currency:      "USD",
		Method:        "card",
		Status:        "pending",
	}
	result, err := repo.Create(context.Background(), intent)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payment_intents")).
		WithArgs("pay-001", 1, &contributorID, decimal.NewFromInt(25), decimal.NewFromInt(5),
			"USD", "card", false, "", "", "", "pending").
		WillReturnError(errors.New("database error"))
	result, err = repo.Create(context.Background(), intent)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByReference(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	contributorID := 7

	rows := pgxmock.NewRows(intentTestColumns).
		AddRow(1, "pay-001", 1, &contributorID, decimal.NewFromInt(25), decimal.NewFromInt(5),
			"USD", "card", false, "", "", "", "pending", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_intents")).
		WithArgs("pay-001").
		WillReturnRows(rows)

	intent, err := repo.FindByReference(context.Background(), "pay-001")
	assert.NoError(t, err)
	assert.Equal(t, "pay-001", intent.Reference)
	assert.True(t, intent.BaseAmount.Equal(decimal.NewFromInt(25)))

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_intents")).
		WithArgs("pay-404").
		WillReturnError(pgx.ErrNoRows)
	intent, err = repo.FindByReference(context.Background(), "pay-404")
	assert.NoError(t, err)
	assert.Nil(t, intent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindStale(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	cutoff := now.Add(-5 * time.Minute)

	rows := pgxmock.NewRows(intentTestColumns).
		AddRow(1, "pay-001", 1, nil, decimal.NewFromInt(25), decimal.Zero,
			"USD", "card", false, "", "", "", "pending", now.Add(-time.Hour), now.Add(-time.Hour)).
		AddRow(2, "pay-002", 2, nil, decimal.NewFromInt(10), decimal.Zero,
			"USD", "card", true, "", "", "", "pending", now.Add(-10*time.Minute), now.Add(-10*time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_intents")).
		WithArgs(cutoff, 100).
		WillReturnRows(rows)

	intents, err := repo.FindStale(context.Background(), cutoff, 100)
	assert.NoError(t, err)
	assert.Len(t, intents, 2)
	assert.Equal(t, "pay-001", intents[0].Reference)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_intents")).
		WithArgs(cutoff, 100).
		WillReturnError(errors.New("database error"))
	intents, err = repo.FindStale(context.Background(), cutoff, 100)
	assert.Error(t, err)
	assert.Nil(t, intents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_intents")).
		WithArgs("confirmed", "pay-001").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	err := repo.UpdateStatus(context.Background(), "pay-001", "confirmed")
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_intents")).
		WithArgs("confirmed", "pay-404").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err = repo.UpdateStatus(context.Background(), "pay-404", "confirmed")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
