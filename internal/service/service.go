package service

import (
	"github.com/givefund/givefund/internal/gateway"
	"github.com/givefund/givefund/internal/handlers/auth"
	"github.com/givefund/givefund/internal/handlers/campaigns"
	"github.com/givefund/givefund/internal/handlers/coupons"
	"github.com/givefund/givefund/internal/handlers/donations"

	pkgauth "github.com/givefund/givefund/pkg/auth"

	"github.com/givefund/givefund/internal/pg"
	"github.com/givefund/givefund/internal/repo"
	"github.com/givefund/givefund/internal/service/activityservice"
	"github.com/givefund/givefund/internal/service/authservice"
	"github.com/givefund/givefund/internal/service/campaignservice"
	"github.com/givefund/givefund/internal/service/couponservice"
	"github.com/givefund/givefund/internal/service/donationservice"
	"github.com/givefund/givefund/internal/service/paymentservice"
)

type Services struct {
	AuthService     auth.Service
	CampaignService campaigns.Service
	ActivityService campaigns.ActivityService
	DonationService donations.Service
	CouponService   coupons.Service
	// PaymentService stays concrete: the reconciler needs its sweep surface
	// in addition to the handler-facing one.
	PaymentService *paymentservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, gw gateway.Client) *Services {
	activityService := activityservice.New(repo.ActivityRepo)
	couponService := couponservice.New(repo.CouponRepo)
	campaignService := campaignservice.New(repo.CampaignRepo)
	donationService := donationservice.New(repo.DonationRepo, repo.CampaignAggregates, txManager, activityService, couponService)
	paymentService := paymentservice.New(repo.IntentRepo, campaignService, donationService, gw)
	authService := authservice.New(repo.ContributorRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		CampaignService: campaignService,
		ActivityService: activityService,
		DonationService: donationService,
		CouponService:   couponService,
		PaymentService:  paymentService,
	}
}
