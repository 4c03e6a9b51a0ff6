package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/dto"
	"github.com/givefund/givefund/internal/service/donationservice"
	"github.com/givefund/givefund/pkg/auth"
	"github.com/givefund/givefund/pkg/utils"
	"github.com/givefund/givefund/pkg/validate"
)

type Service interface {
	RecordDirect(ctx context.Context, intent donationservice.DirectIntent) (*domain.Donation, error)
	GetCampaignDonations(ctx context.Context, campaignID, limit, offset int) ([]domain.Donation, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

var methods = map[string]struct{}{
	donationservice.MethodCard:   {},
	donationservice.MethodBank:   {},
	donationservice.MethodMobile: {},
}

// Donate godoc
//
//	@Summary		Record a direct donation
//	@Description	Record a donation to a campaign and update its totals. Anonymous/guest donations are accepted; a Bearer token attributes the contributor.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Campaign id"
//	@Param			request	body		dto.CreateDonationRequestDTO	true	"Donation payload"
//	@Success		201		{object}	dto.DonationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Campaign not found"
//	@Failure		409		{object}	utils.Response	"Campaign not open for contributions"
//	@Failure		422		{object}	utils.Response	"Invalid amount, currency or method"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/donations [post]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	var req dto.CreateDonationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, ok := methods[req.Method]; !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment method")
		return
	}
	if req.Currency != "" && !validate.IsCurrency(req.Currency) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid currency code")
		return
	}
	if len(req.Message) > 500 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Message too long")
		return
	}

	intent := donationservice.DirectIntent{
		CampaignID:     campaignID,
		BaseAmount:     decimal.NewFromFloat(req.BaseAmount),
		TipAmount:      decimal.NewFromFloat(req.TipAmount),
		Currency:       req.Currency,
		Method:         req.Method,
		IsAnonymous:    req.IsAnonymous,
		DisplayName:    req.DisplayName,
		ContactAddress: req.ContactAddress,
		Message:        req.Message,
	}
	if contributorID, ok := auth.ContributorIDFromContext(r.Context()); ok {
		intent.ContributorID = &contributorID
	}

	donation, err := h.donationService.RecordDirect(r.Context(), intent)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donationservice.ErrCampaignNotOpen):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, donationservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDonationDTO(donation))
}

// GetDonations godoc
//
//	@Summary		List donations for a campaign
//	@Tags			Donations
//	@Produce		json
//	@Param			id		path		int	true	"Campaign id"
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.DonationResponseDTO
//	@Failure		204		{object}	utils.Response	"No donations"
//	@Failure		400		{object}	utils.Response	"Invalid campaign id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/donations [get]
func (h *DonationHandler) GetDonations(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	limit := 20
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}

	donations, err := h.donationService.GetCampaignDonations(r.Context(), campaignID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(donations) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No donations")
		return
	}

	response := make([]dto.DonationResponseDTO, len(donations))
	for i, donation := range donations {
		donation := donation
		response[i] = toDonationDTO(&donation)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// toDonationDTO hides the donor identity when the contribution is anonymous;
// the underlying record keeps the fields either way.
func toDonationDTO(donation *domain.Donation) dto.DonationResponseDTO {
	resp := dto.DonationResponseDTO{
		ID:          donation.ID,
		CampaignID:  donation.CampaignID,
		BaseAmount:  donation.BaseAmount.InexactFloat64(),
		TipAmount:   donation.TipAmount.InexactFloat64(),
		TotalAmount: donation.TotalAmount.InexactFloat64(),
		Currency:    donation.Currency,
		Method:      donation.Method,
		Status:      donation.Status,
		Message:     donation.Message,
		CreatedAt:   donation.CreatedAt.Format(time.RFC3339),
	}
	if donation.ExternalReference != nil {
		resp.ExternalReference = *donation.ExternalReference
	}
	if !donation.IsAnonymous {
		resp.DisplayName = donation.DisplayName
	}
	return resp
}
