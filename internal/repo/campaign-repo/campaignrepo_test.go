package campaignrepo

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

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Campaign saved",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "raised_amount", "donation_count", "created_at", "updated_at"}).
					AddRow(1, decimal.Zero, 0, now, now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).
					WithArgs(1, "Clean Water", "Wells for the valley", decimal.NewFromInt(5000), "active").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).
					WithArgs(1, "Clean Water", "Wells for the valley", decimal.NewFromInt(5000), "active").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			campaign := &domain.Campaign{
				OwnerID:     1,
				Title:       "Clean Water",
				Description: "Wells for the valley",
				GoalAmount:  decimal.NewFromInt(5000),
				Status:      "active",
			}
			result, err := repo.Create(context.Background(), campaign)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.True(t, result.RaisedAmount.IsZero())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Campaign
	}{
		{
			name: "Campaign exists",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "owner_id", "title", "description", "goal_amount",
					"raised_amount", "donation_count", "status", "created_at", "updated_at",
				}).AddRow(1, 1, "Clean Water", "", decimal.NewFromInt(5000), decimal.NewFromInt(120), 4, "active", now, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, title, description, goal_amount, raised_amount, donation_count, status, created_at, updated_at")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Campaign{
				ID:            1,
				OwnerID:       1,
				Title:         "Clean Water",
				GoalAmount:    decimal.NewFromInt(5000),
				RaisedAmount:  decimal.NewFromInt(120),
				DonationCount: 4,
				Status:        "active",
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		},
		{
			name: "Campaign does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{
		"id", "owner_id", "title", "description", "goal_amount",
		"raised_amount", "donation_count", "status", "created_at", "updated_at",
	}).
		AddRow(2, 1, "Food Bank", "", decimal.NewFromInt(1000), decimal.Zero, 0, "active", now, now).
		AddRow(1, 1, "Clean Water", "", decimal.NewFromInt(5000), decimal.NewFromInt(120), 4, "active", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns")).
		WithArgs(20, 0).
		WillReturnRows(rows)

	campaigns, err := repo.List(context.Background(), 20, 0)
	assert.NoError(t, err)
	assert.Len(t, campaigns, 2)
	assert.Equal(t, "Food Bank", campaigns[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementTotals(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Totals incremented",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns")).
					WithArgs(decimal.NewFromInt(25), 1, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name: "Campaign missing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns")).
					WithArgs(decimal.NewFromInt(25), 1, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: pgx.ErrNoRows,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns")).
					WithArgs(decimal.NewFromInt(25), 1, 1).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.IncrementTotals(context.Background(), 1, decimal.NewFromInt(25), 1)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns")).
		WithArgs("closed", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	err := repo.UpdateStatus(context.Background(), 1, "closed")
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns")).
		WithArgs("closed", 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err = repo.UpdateStatus(context.Background(), 99, "closed")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
