package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/dto"
	"github.com/givefund/givefund/internal/gateway"
	"github.com/givefund/givefund/internal/service/campaignservice"
	"github.com/givefund/givefund/internal/service/donationservice"
	"github.com/givefund/givefund/internal/service/paymentservice"
	"github.com/givefund/givefund/pkg/auth"
	"github.com/givefund/givefund/pkg/utils"
	"github.com/givefund/givefund/pkg/validate"
)

type Service interface {
	CreateIntent(ctx context.Context, input paymentservice.IntentInput) (*domain.PaymentIntent, string, error)
	ApplyPayment(ctx context.Context, payment *gateway.Payment) (*domain.Donation, error)
}

type PaymentHandler struct {
	paymentService Service
	gateway        gateway.Client
}

func New(paymentService Service, gw gateway.Client) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		gateway:        gw,
	}
}

// CreateIntent godoc
//
//	@Summary		Create a payment intent
//	@Description	Register a charge with the payment gateway and store a pending intent; the donation is recorded when the gateway confirms.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateIntentRequestDTO	true	"Intent payload"
//	@Success		201		{object}	dto.CreateIntentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Campaign not found"
//	@Failure		409		{object}	utils.Response	"Campaign not open for contributions"
//	@Failure		422		{object}	utils.Response	"Invalid amount, currency or method"
//	@Failure		502		{object}	utils.Response	"Gateway unavailable"
//	@Router			/api/payments/intent [post]
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIntentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Currency != "" && !validate.IsCurrency(req.Currency) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid currency code")
		return
	}

	input := paymentservice.IntentInput{
		CampaignID:     req.CampaignID,
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
		input.ContributorID = &contributorID
	}

	intent, redirectURL, err := h.paymentService.CreateIntent(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, campaignservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donationservice.ErrCampaignNotOpen):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, donationservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateIntentResponseDTO{
		Reference:   intent.Reference,
		RedirectURL: redirectURL,
	})
}

// Webhook godoc
//
//	@Summary		Payment gateway webhook
//	@Description	Receives signed payment confirmations from the gateway. Redeliveries of the same reference are acknowledged without reapplying.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Confirmation applied or already applied"
//	@Failure		400	{object}	utils.Response	"Malformed payload"
//	@Failure		401	{object}	utils.Response	"Bad signature"
//	@Failure		404	{object}	utils.Response	"Unknown payment reference"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	payment, err := h.gateway.ParseWebhook(body, r.Header.Get(gateway.SignatureHeader))
	if err != nil {
		if errors.Is(err, gateway.ErrBadSignature) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err = h.paymentService.ApplyPayment(r.Context(), payment)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrPaymentNotFinal):
			// Acknowledge so the gateway stops redelivering; the
			// reconciler picks the intent up once it is final.
			utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "payment not final, ignored"})
		case errors.Is(err, paymentservice.ErrUnknownReference):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donationservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "confirmation applied"})
}
