package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	activityrepo "github.com/givefund/givefund/internal/repo/activity-repo"
	campaignrepo "github.com/givefund/givefund/internal/repo/campaign-repo"
	contributorrepo "github.com/givefund/givefund/internal/repo/contributor-repo"
	couponrepo "github.com/givefund/givefund/internal/repo/coupon-repo"
	donationrepo "github.com/givefund/givefund/internal/repo/donation-repo"
	intentrepo "github.com/givefund/givefund/internal/repo/intent-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.ContributorRepo)
	assert.NotNil(t, repo.CampaignRepo)
	assert.NotNil(t, repo.CampaignAggregates)
	assert.NotNil(t, repo.DonationRepo)
	assert.NotNil(t, repo.IntentRepo)
	assert.NotNil(t, repo.CouponRepo)
	assert.NotNil(t, repo.ActivityRepo)

	assert.IsType(t, &contributorrepo.Repository{}, repo.ContributorRepo)
	assert.IsType(t, &campaignrepo.Repository{}, repo.CampaignRepo)
	assert.IsType(t, &donationrepo.Repository{}, repo.DonationRepo)
	assert.IsType(t, &intentrepo.Repository{}, repo.IntentRepo)
	assert.IsType(t, &couponrepo.Repository{}, repo.CouponRepo)
	assert.IsType(t, &activityrepo.Repository{}, repo.ActivityRepo)

	// Both campaign views must be backed by the same repository instance.
	assert.Same(t, repo.CampaignRepo, repo.CampaignAggregates)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
