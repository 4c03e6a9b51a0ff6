package coupons

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/dto"
	"github.com/givefund/givefund/internal/service/couponservice"
	"github.com/givefund/givefund/pkg/utils"
)

type Service interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type CouponHandler struct {
	couponService Service
}

func New(couponService Service) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
	}
}

// GetCoupon godoc
//
//	@Summary		Look up a reward coupon
//	@Description	Validate a coupon code (Luhn-checked) and return the coupon
//	@Tags			Coupons
//	@Produce		json
//	@Param			code	path		string	true	"Coupon code"
//	@Success		200		{object}	dto.CouponResponseDTO
//	@Failure		404		{object}	utils.Response	"Coupon not found"
//	@Failure		422		{object}	utils.Response	"Malformed coupon code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coupons/{code} [get]
func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	coupon, err := h.couponService.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, couponservice.ErrInvalidCode):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, couponservice.ErrCouponNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CouponResponseDTO{
		Code:     coupon.Code,
		Amount:   coupon.Amount.InexactFloat64(),
		Currency: coupon.Currency,
		IssuedAt: coupon.IssuedAt.Format(time.RFC3339),
	})
}
