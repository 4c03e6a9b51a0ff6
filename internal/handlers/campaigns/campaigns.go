package campaigns

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
	"github.com/givefund/givefund/internal/service/campaignservice"
	"github.com/givefund/givefund/pkg/auth"
	"github.com/givefund/givefund/pkg/utils"
)

type Service interface {
	CreateCampaign(ctx context.Context, ownerID int, title, description string, goalAmount decimal.Decimal) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id int) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, limit, offset int) ([]domain.Campaign, error)
	CloseCampaign(ctx context.Context, id, ownerID int) error
}

type ActivityService interface {
	GetCampaignActivity(ctx context.Context, campaignID, limit, offset int) ([]domain.ActivityEntry, error)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type CampaignHandler struct {
	campaignService Service
	activityService ActivityService
}

func New(campaignService Service, activityService ActivityService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		activityService: activityService,
	}
}

// CreateCampaign godoc
//
//	@Summary		Create a fundraising campaign
//	@Description	Create a campaign owned by the authenticated contributor; it opens for donations immediately.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCampaignRequestDTO	true	"Campaign payload"
//	@Success		201		{object}	dto.CampaignResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [post]
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Context().Value(auth.ContributorIDKey).(int)

	var req dto.CreateCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	campaign, err := h.campaignService.CreateCampaign(r.Context(), ownerID, req.Title, req.Description, decimal.NewFromFloat(req.GoalAmount))
	if err != nil {
		if errors.Is(err, campaignservice.ErrInvalidGoalAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCampaignDTO(campaign))
}

// GetCampaign godoc
//
//	@Summary		Get one campaign
//	@Description	Retrieve a campaign with its aggregate totals
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path		int	true	"Campaign id"
//	@Success		200	{object}	dto.CampaignResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid campaign id"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	campaign, err := h.campaignService.GetCampaign(r.Context(), id)
	if err != nil {
		if errors.Is(err, campaignservice.ErrCampaignNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignDTO(campaign))
}

// ListCampaigns godoc
//
//	@Summary		List campaigns
//	@Tags			Campaigns
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.CampaignResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [get]
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	campaigns, err := h.campaignService.ListCampaigns(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CampaignResponseDTO, len(campaigns))
	for i, campaign := range campaigns {
		campaign := campaign
		response[i] = toCampaignDTO(&campaign)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CloseCampaign godoc
//
//	@Summary		Close a campaign for contributions
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Campaign id"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid campaign id"
//	@Failure		403	{object}	utils.Response	"Not the campaign owner"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/close [post]
func (h *CampaignHandler) CloseCampaign(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Context().Value(auth.ContributorIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	err = h.campaignService.CloseCampaign(r.Context(), id, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, campaignservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, campaignservice.ErrNotCampaignOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "campaign closed"})
}

// GetActivity godoc
//
//	@Summary		Get campaign activity feed
//	@Description	Public feed of attributed, non-anonymous donations
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id		path		int	true	"Campaign id"
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.ActivityResponseDTO
//	@Failure		204		{object}	utils.Response	"No activity"
//	@Failure		400		{object}	utils.Response	"Invalid campaign id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/activity [get]
func (h *CampaignHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	limit, offset := pageParams(r)

	entries, err := h.activityService.GetCampaignActivity(r.Context(), id, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No activity")
		return
	}

	response := make([]dto.ActivityResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.ActivityResponseDTO{
			CampaignID:  entry.CampaignID,
			DisplayName: entry.DisplayName,
			Amount:      entry.Amount.InexactFloat64(),
			Currency:    entry.Currency,
			CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toCampaignDTO(campaign *domain.Campaign) dto.CampaignResponseDTO {
	return dto.CampaignResponseDTO{
		ID:            campaign.ID,
		Title:         campaign.Title,
		Description:   campaign.Description,
		GoalAmount:    campaign.GoalAmount.InexactFloat64(),
		RaisedAmount:  campaign.RaisedAmount.InexactFloat64(),
		DonationCount: campaign.DonationCount,
		Status:        campaign.Status,
		CreatedAt:     campaign.CreatedAt.Format(time.RFC3339),
	}
}

func pageParams(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= maxPageSize {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
