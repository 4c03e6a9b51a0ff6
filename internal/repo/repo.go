package repo

import (
	"github.com/givefund/givefund/internal/pg"
	activityrepo "github.com/givefund/givefund/internal/repo/activity-repo"
	campaignrepo "github.com/givefund/givefund/internal/repo/campaign-repo"
	contributorrepo "github.com/givefund/givefund/internal/repo/contributor-repo"
	couponrepo "github.com/givefund/givefund/internal/repo/coupon-repo"
	donationrepo "github.com/givefund/givefund/internal/repo/donation-repo"
	intentrepo "github.com/givefund/givefund/internal/repo/intent-repo"
	"github.com/givefund/givefund/internal/service/activityservice"
	"github.com/givefund/givefund/internal/service/authservice"
	"github.com/givefund/givefund/internal/service/campaignservice"
	"github.com/givefund/givefund/internal/service/couponservice"
	"github.com/givefund/givefund/internal/service/donationservice"
	"github.com/givefund/givefund/internal/service/paymentservice"
)

type Repositories struct {
	ContributorRepo authservice.Repo
	CampaignRepo    campaignservice.Repo
	// CampaignAggregates is the orchestrator's view of the same campaign
	// repository: lookup plus the atomic counter increment.
	CampaignAggregates donationservice.CampaignRepo
	DonationRepo       donationservice.Repo
	IntentRepo         paymentservice.IntentRepo
	CouponRepo         couponservice.Repo
	ActivityRepo       activityservice.Repo
}

func New(conn pg.Database) *Repositories {
	contributorRepo := contributorrepo.New(conn)
	campaignRepo := campaignrepo.New(conn)
	donationRepo := donationrepo.New(conn)
	intentRepo := intentrepo.New(conn)
	couponRepo := couponrepo.New(conn)
	activityRepo := activityrepo.New(conn)

	return &Repositories{
		ContributorRepo:    contributorRepo,
		CampaignRepo:       campaignRepo,
		CampaignAggregates: campaignRepo,
		DonationRepo:       donationRepo,
		IntentRepo:         intentRepo,
		CouponRepo:         couponRepo,
		ActivityRepo:       activityRepo,
	}
}
