package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/givefund/givefund/internal/config"
	"github.com/givefund/givefund/pkg/clients"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

var (
	ErrPaymentNotFound = errors.New("payment not found in gateway")
	ErrBadSignature    = errors.New("invalid webhook signature")
)

// SignatureHeader carries the hex-encoded HMAC-SHA256 of the webhook body.
const SignatureHeader = "X-Gateway-Signature"

type IntentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Method      string          `json:"method"`
	Description string          `json:"description,omitempty"`
}

type IntentResult struct {
	Reference   string `json:"reference"`
	RedirectURL string `json:"redirect_url"`
	Status      string `json:"status"`
}

// Payment is the gateway's view of a charge, as returned by lookup and
// webhook delivery.
type Payment struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
}

// Client is the payment gateway capability handed to the handlers and the
// reconciler. A fake is substituted in tests.
type Client interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*IntentResult, error)
	GetPayment(ctx context.Context, reference string) (*Payment, error)
	ParseWebhook(body []byte, signature string) (*Payment, error)
}

type HTTPGateway struct {
	url    string
	secret []byte
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *HTTPGateway {
	return &HTTPGateway{
		url:    cfg.GatewayAddress,
		secret: []byte(cfg.GatewaySecret),
		client: client,
	}
}

func (g *HTTPGateway) CreateIntent(ctx context.Context, req IntentRequest) (*IntentResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("can't marshal intent request: %w", err)
	}

	statusCode, respBody, _, err := g.client.Post(ctx, g.url+"/api/payments", nil, body)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return nil, fmt.Errorf("gateway returned unexpected status %d", statusCode)
	}

	var result IntentResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("can't parse gateway response: %w", err)
	}
	return &result, nil
}

func (g *HTTPGateway) GetPayment(ctx context.Context, reference string) (*Payment, error) {
	statusCode, respBody, _, err := g.client.Get(ctx, g.url+"/api/payments/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}

	switch statusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusNoContent:
		return nil, ErrPaymentNotFound
	default:
		return nil, fmt.Errorf("gateway returned unexpected status %d", statusCode)
	}

	var payment Payment
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return nil, fmt.Errorf("can't parse gateway response: %w", err)
	}
	return &payment, nil
}

// ParseWebhook verifies the body signature and decodes the delivered payment.
func (g *HTTPGateway) ParseWebhook(body []byte, signature string) (*Payment, error) {
	if !g.verifySignature(body, signature) {
		return nil, ErrBadSignature
	}

	var payment Payment
	if err := json.Unmarshal(body, &payment); err != nil {
		return nil, fmt.Errorf("can't parse webhook body: %w", err)
	}
	if payment.Reference == "" {
		return nil, errors.New("webhook payload missing reference")
	}
	return &payment, nil
}

func (g *HTTPGateway) verifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
