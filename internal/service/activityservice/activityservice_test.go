package activityservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/givefund/givefund/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestRecord(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.ActivityEntry) (*domain.ActivityEntry, error) {
			assert.Equal(t, 7, entry.ContributorID)
			assert.Equal(t, 1, entry.CampaignID)
			assert.True(t, entry.Amount.Equal(decimal.NewFromInt(25)))
			assert.Equal(t, "USD", entry.Currency)
			entry.ID = 1
			return entry, nil
		})
	err := service.Record(context.Background(), 7, 1, decimal.NewFromInt(25), "USD")
	assert.NoError(t, err)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
	err = service.Record(context.Background(), 7, 1, decimal.NewFromInt(25), "USD")
	assert.Error(t, err)
}

func TestGetCampaignActivity(t *testing.T) {
	service, repo := NewMock(t)

	expected := []domain.ActivityEntry{{ID: 1, CampaignID: 1}, {ID: 2, CampaignID: 1}}
	repo.EXPECT().FindByCampaignID(gomock.Any(), 1, 20, 0).Return(expected, nil)
	entries, err := service.GetCampaignActivity(context.Background(), 1, 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, expected, entries)

	repo.EXPECT().FindByCampaignID(gomock.Any(), 1, 20, 0).Return(nil, errors.New("database error"))
	entries, err = service.GetCampaignActivity(context.Background(), 1, 20, 0)
	assert.Error(t, err)
	assert.Nil(t, entries)
}
