package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Contributor struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	CreatedAt    time.Time `db:"created_at"`
}

type Campaign struct {
	ID            int             `db:"id"`
	OwnerID       int             `db:"owner_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	GoalAmount    decimal.Decimal `db:"goal_amount"`
	RaisedAmount  decimal.Decimal `db:"raised_amount"`
	DonationCount int             `db:"donation_count"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type Donation struct {
	ID                int             `db:"id"`
	CampaignID        int             `db:"campaign_id"`
	ContributorID     *int            `db:"contributor_id"`
	BaseAmount        decimal.Decimal `db:"base_amount"`
	TipAmount         decimal.Decimal `db:"tip_amount"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	Currency          string          `db:"currency"`
	Method            string          `db:"method"`
	Status            string          `db:"status"`
	ExternalReference *string         `db:"external_reference"`
	IsAnonymous       bool            `db:"is_anonymous"`
	DisplayName       string          `db:"display_name"`
	ContactAddress    string          `db:"contact_address"`
	Message           string          `db:"message"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

type PaymentIntent struct {
	ID             int             `db:"id"`
	Reference      string          `db:"reference"`
	CampaignID     int             `db:"campaign_id"`
	ContributorID  *int            `db:"contributor_id"`
	BaseAmount     decimal.Decimal `db:"base_amount"`
	TipAmount      decimal.Decimal `db:"tip_amount"`
	Currency       string          `db:"currency"`
	Method         string          `db:"method"`
	IsAnonymous    bool            `db:"is_anonymous"`
	DisplayName    string          `db:"display_name"`
	ContactAddress string          `db:"contact_address"`
	Message        string          `db:"message"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type Coupon struct {
	ID            int             `db:"id"`
	Code          string          `db:"code"`
	DonationID    int             `db:"donation_id"`
	CampaignID    int             `db:"campaign_id"`
	ContributorID *int            `db:"contributor_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	IssuedAt      time.Time       `db:"issued_at"`
}

type ActivityEntry struct {
	ID            int             `db:"id"`
	CampaignID    int             `db:"campaign_id"`
	ContributorID int             `db:"contributor_id"`
	DisplayName   string          `db:"display_name"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	CreatedAt     time.Time       `db:"created_at"`
}
