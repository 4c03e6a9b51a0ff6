package handlers

import (
	"net/http"

	_ "github.com/givefund/givefund/docs"
	authhandlers "github.com/givefund/givefund/internal/handlers/auth"
	campaignhandlers "github.com/givefund/givefund/internal/handlers/campaigns"
	couponhandlers "github.com/givefund/givefund/internal/handlers/coupons"
	donationhandlers "github.com/givefund/givefund/internal/handlers/donations"
	paymenthandlers "github.com/givefund/givefund/internal/handlers/payments"
	"github.com/givefund/givefund/internal/gateway"
	"github.com/givefund/givefund/internal/service"
	"github.com/givefund/givefund/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	CreateCampaign(w http.ResponseWriter, r *http.Request)
	GetCampaign(w http.ResponseWriter, r *http.Request)
	ListCampaigns(w http.ResponseWriter, r *http.Request)
	CloseCampaign(w http.ResponseWriter, r *http.Request)
	GetActivity(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Donate(w http.ResponseWriter, r *http.Request)
	GetDonations(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateIntent(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type CouponHandler interface {
	GetCoupon(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CampaignHandler CampaignHandler
	DonationHandler DonationHandler
	PaymentHandler  PaymentHandler
	CouponHandler   CouponHandler
}

func New(s *service.Services, gw gateway.Client) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CampaignHandler: campaignhandlers.New(s.CampaignService, s.ActivityService),
		DonationHandler: donationhandlers.New(s.DonationService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService, gw),
		CouponHandler:   couponhandlers.New(s.CouponService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.CampaignHandler.ListCampaigns)
			r.Get("/{id}", h.CampaignHandler.GetCampaign)
			r.Get("/{id}/donations", h.DonationHandler.GetDonations)
			r.Get("/{id}/activity", h.CampaignHandler.GetActivity)

			r.Group(func(r chi.Router) {
				r.Use(auth.OptionalAuthMiddleware)
				r.Post("/{id}/donations", h.DonationHandler.Donate)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/", h.CampaignHandler.CreateCampaign)
				r.Post("/{id}/close", h.CampaignHandler.CloseCampaign)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.With(auth.OptionalAuthMiddleware).Post("/intent", h.PaymentHandler.CreateIntent)
			r.Post("/webhook", h.PaymentHandler.Webhook)
		})

		r.Get("/coupons/{code}", h.CouponHandler.GetCoupon)
	})

	return r
}
