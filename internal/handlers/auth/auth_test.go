package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := NewMockService(ctrl)
	handler := New(mockService)
	return handler, mockService
}

func TestAuthHandler_Register(t *testing.T) {
	handler, mockService := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "successful registration",
			body: `{"email":"donor@example.com","password":"secret123","display_name":"Jordan D."}`,
			prepareMock: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "donor@example.com", "secret123", "Jordan D.").
					Return(&domain.Contributor{ID: 1, Email: "donor@example.com"}, nil)
				mockService.EXPECT().GenerateToken(1).Return("token-abc", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token-abc",
		},
		{
			name:         "malformed body",
			body:         `{"email":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "email already taken",
			body: `{"email":"donor@example.com","password":"secret123"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "donor@example.com", "secret123", "").
					Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "token generation failure",
			body: `{"email":"donor@example.com","password":"secret123"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "donor@example.com", "secret123", "").
					Return(&domain.Contributor{ID: 2}, nil)
				mockService.EXPECT().GenerateToken(2).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "storage failure",
			body: `{"email":"donor@example.com","password":"secret123"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "donor@example.com", "secret123", "").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedToken, rr.Header().Get("Authorization"))
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	handler, mockService := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "successful login",
			body: `{"email":"donor@example.com","password":"secret123"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Authenticate(gomock.Any(), "donor@example.com", "secret123").
					Return(&domain.Contributor{ID: 1}, nil)
				mockService.EXPECT().GenerateToken(1).Return("token-abc", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token-abc",
		},
		{
			name:         "malformed body",
			body:         `not json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			body: `{"email":"donor@example.com","password":"wrong"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Authenticate(gomock.Any(), "donor@example.com", "wrong").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "token generation failure",
			body: `{"email":"donor@example.com","password":"secret123"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Authenticate(gomock.Any(), "donor@example.com", "secret123").
					Return(&domain.Contributor{ID: 3}, nil)
				mockService.EXPECT().GenerateToken(3).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedToken, rr.Header().Get("Authorization"))
		})
	}
}
