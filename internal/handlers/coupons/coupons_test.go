package coupons

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/service/couponservice"
)

func NewMock(t *testing.T) (*CouponHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := NewMockService(ctrl)
	handler := New(mockService)
	return handler, mockService
}

func newRequest(method, target, code string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("code", code)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCouponHandler_GetCoupon(t *testing.T) {
	handler, mockService := NewMock(t)
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		code         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "valid coupon",
			code: "4929972884676289",
			prepareMock: func() {
				mockService.EXPECT().GetByCode(gomock.Any(), "4929972884676289").Return(&domain.Coupon{
					Code:     "4929972884676289",
					Amount:   decimal.NewFromInt(5),
					Currency: "USD",
					IssuedAt: issuedAt,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"code":"4929972884676289","amount":5,"currency":"USD","issued_at":"2024-06-01T12:00:00Z"}`,
		},
		{
			name: "malformed code",
			code: "4929972884676280",
			prepareMock: func() {
				mockService.EXPECT().GetByCode(gomock.Any(), "4929972884676280").Return(nil, couponservice.ErrInvalidCode)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "coupon not found",
			code: "4929972884676289",
			prepareMock: func() {
				mockService.EXPECT().GetByCode(gomock.Any(), "4929972884676289").Return(nil, couponservice.ErrCouponNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "storage failure",
			code: "4929972884676289",
			prepareMock: func() {
				mockService.EXPECT().GetByCode(gomock.Any(), "4929972884676289").Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newRequest(http.MethodGet, "/api/coupons/"+tt.code, tt.code)
			rr := httptest.NewRecorder()

			handler.GetCoupon(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
