package couponservice

import (
	"context"
	"errors"
	"testing"

	"github.com/ShiraazMoollatjie/goluhn"
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

func TestIssue(t *testing.T) {
	service, repo := NewMock(t)
	contributorID := 7
	donation := &domain.Donation{
		ID:            9,
		CampaignID:    1,
		ContributorID: &contributorID,
		BaseAmount:    decimal.NewFromInt(25),
		Currency:      "USD",
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error) {
			assert.NoError(t, goluhn.Validate(c.Code))
			assert.NotEmpty(t, c.Code)
			assert.Equal(t, 9, c.DonationID)
			assert.True(t, c.Amount.Equal(decimal.NewFromInt(25)))
			c.ID = 1
			return c, nil
		})
	coupon, err := service.Issue(context.Background(), donation, "Clean Water")
	assert.NoError(t, err)
	assert.NotNil(t, coupon)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
	coupon, err = service.Issue(context.Background(), donation, "Clean Water")
	assert.Error(t, err)
	assert.Nil(t, coupon)
}

func TestGetByCode(t *testing.T) {
	service, repo := NewMock(t)
	validCode := "4929972884676289"

	repo.EXPECT().FindByCode(gomock.Any(), validCode).Return(&domain.Coupon{ID: 1, Code: validCode}, nil)
	coupon, err := service.GetByCode(context.Background(), validCode)
	assert.NoError(t, err)
	assert.Equal(t, validCode, coupon.Code)

	// A bad check digit never reaches storage.
	coupon, err = service.GetByCode(context.Background(), "4929972884676280")
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Nil(t, coupon)

	repo.EXPECT().FindByCode(gomock.Any(), validCode).Return(nil, nil)
	coupon, err = service.GetByCode(context.Background(), validCode)
	assert.ErrorIs(t, err, ErrCouponNotFound)
	assert.Nil(t, coupon)

	repo.EXPECT().FindByCode(gomock.Any(), validCode).Return(nil, errors.New("database error"))
	_, err = service.GetByCode(context.Background(), validCode)
	assert.Error(t, err)
}
