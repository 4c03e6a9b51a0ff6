package donations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/dto"
	"github.com/givefund/givefund/internal/service/donationservice"
	"github.com/givefund/givefund/pkg/auth"
)

func NewMock(t *testing.T) (*DonationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(t *testing.T, method, target, campaignID string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", campaignID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDonate(t *testing.T) {
	handler, service := NewMock(t)
	reference := "dn-1730558997-a1b2"

	tests := []struct {
		name          string
		campaignID    string
		body          string
		contributorID *int
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:       "Donation recorded",
			campaignID: "1",
			body:       `{"base_amount":25,"tip_amount":5,"method":"card","message":"Good luck!"}`,
			prepareMock: func() {
				service.EXPECT().RecordDirect(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, intent donationservice.DirectIntent) (*domain.Donation, error) {
						assert.Equal(t, 1, intent.CampaignID)
						assert.Nil(t, intent.ContributorID)
						assert.True(t, intent.BaseAmount.Equal(decimal.NewFromInt(25)))
						return &domain.Donation{
							ID:                1,
							CampaignID:        1,
							BaseAmount:        intent.BaseAmount,
							TipAmount:         intent.TipAmount,
							TotalAmount:       intent.BaseAmount.Add(intent.TipAmount),
							Currency:          "USD",
							Method:            intent.Method,
							Status:            donationservice.CompletedStatus,
							ExternalReference: &reference,
							Message:           intent.Message,
							CreatedAt:         time.Now(),
						}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid campaign id",
			campaignID:    "abc",
			body:          `{"base_amount":25,"method":"card"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid campaign id",
		},
		{
			name:          "Invalid request body",
			campaignID:    "1",
			body:          `{not json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Unknown payment method",
			campaignID:    "1",
			body:          `{"base_amount":25,"method":"crypto"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid payment method",
		},
		{
			name:          "Invalid currency",
			campaignID:    "1",
			body:          `{"base_amount":25,"method":"card","currency":"DOLLARS"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid currency code",
		},
		{
			name:       "Campaign not found",
			campaignID: "99",
			body:       `{"base_amount":25,"method":"card"}`,
			prepareMock: func() {
				service.EXPECT().RecordDirect(gomock.Any(), gomock.Any()).
					Return(nil, donationservice.ErrCampaignNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "campaign not found",
		},
		{
			name:       "Campaign closed",
			campaignID: "1",
			body:       `{"base_amount":25,"method":"card"}`,
			prepareMock: func() {
				service.EXPECT().RecordDirect(gomock.Any(), gomock.Any()).
					Return(nil, donationservice.ErrCampaignNotOpen)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:       "Invalid amount",
			campaignID: "1",
			body:       `{"base_amount":0,"method":"card"}`,
			prepareMock: func() {
				service.EXPECT().RecordDirect(gomock.Any(), gomock.Any()).
					Return(nil, donationservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:       "Internal server error",
			campaignID: "1",
			body:       `{"base_amount":25,"method":"card"}`,
			prepareMock: func() {
				service.EXPECT().RecordDirect(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newRequest(t, http.MethodPost, "/api/campaigns/"+tt.campaignID+"/donations", tt.campaignID, []byte(tt.body))
			rr := httptest.NewRecorder()
			handler.Donate(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDonate_AttributesAuthenticatedContributor(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().RecordDirect(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, intent donationservice.DirectIntent) (*domain.Donation, error) {
			assert.NotNil(t, intent.ContributorID)
			assert.Equal(t, 7, *intent.ContributorID)
			return &domain.Donation{ID: 1, CampaignID: 1, ContributorID: intent.ContributorID}, nil
		})

	req := newRequest(t, http.MethodPost, "/api/campaigns/1/donations", "1",
		[]byte(`{"base_amount":25,"method":"card"}`))
	req = req.WithContext(context.WithValue(req.Context(), auth.ContributorIDKey, 7))
	rr := httptest.NewRecorder()
	handler.Donate(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestDonate_HidesAnonymousDisplayName(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().RecordDirect(gomock.Any(), gomock.Any()).
		Return(&domain.Donation{
			ID:          1,
			CampaignID:  1,
			IsAnonymous: true,
			DisplayName: "Jordan D.",
			Status:      donationservice.CompletedStatus,
		}, nil)

	req := newRequest(t, http.MethodPost, "/api/campaigns/1/donations", "1",
		[]byte(`{"base_amount":25,"method":"card","is_anonymous":true,"display_name":"Jordan D."}`))
	rr := httptest.NewRecorder()
	handler.Donate(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp dto.DonationResponseDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.DisplayName)
}

func TestGetDonations(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		campaignID   string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:       "Donations returned",
			campaignID: "1",
			target:     "/api/campaigns/1/donations",
			prepareMock: func() {
				service.EXPECT().GetCampaignDonations(gomock.Any(), 1, 20, 0).
					Return([]domain.Donation{
						{ID: 2, CampaignID: 1, BaseAmount: decimal.NewFromInt(10)},
						{ID: 1, CampaignID: 1, BaseAmount: decimal.NewFromInt(25)},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:       "Pagination params are honored",
			campaignID: "1",
			target:     "/api/campaigns/1/donations?limit=5&offset=10",
			prepareMock: func() {
				service.EXPECT().GetCampaignDonations(gomock.Any(), 1, 5, 10).
					Return([]domain.Donation{{ID: 11, CampaignID: 1}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:       "No donations",
			campaignID: "1",
			target:     "/api/campaigns/1/donations",
			prepareMock: func() {
				service.EXPECT().GetCampaignDonations(gomock.Any(), 1, 20, 0).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid campaign id",
			campaignID:   "abc",
			target:       "/api/campaigns/abc/donations",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "Internal server error",
			campaignID: "1",
			target:     "/api/campaigns/1/donations",
			prepareMock: func() {
				service.EXPECT().GetCampaignDonations(gomock.Any(), 1, 20, 0).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newRequest(t, http.MethodGet, tt.target, tt.campaignID, nil)
			rr := httptest.NewRecorder()
			handler.GetDonations(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.DonationResponseDTO
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
