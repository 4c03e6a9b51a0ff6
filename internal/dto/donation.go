package dto

type CreateDonationRequestDTO struct {
	BaseAmount     float64 `json:"base_amount" validate:"required,gt=0" example:"25"`
	TipAmount      float64 `json:"tip_amount" validate:"gte=0" example:"5"`
	Currency       string  `json:"currency" example:"USD"`
	Method         string  `json:"method" validate:"required,oneof=card bank mobile" example:"card"`
	IsAnonymous    bool    `json:"is_anonymous" example:"false"`
	DisplayName    string  `json:"display_name" validate:"max=100" example:"Jordan D."`
	ContactAddress string  `json:"contact_address" validate:"max=255" example:"donor@example.com"`
	Message        string  `json:"message" validate:"max=500" example:"Good luck!"`
}

type DonationResponseDTO struct {
	ID                int     `json:"id" example:"1"`
	CampaignID        int     `json:"campaign_id" example:"1"`
	BaseAmount        float64 `json:"base_amount" example:"25"`
	TipAmount         float64 `json:"tip_amount,omitempty" example:"5"`
	TotalAmount       float64 `json:"total_amount" example:"30"`
	Currency          string  `json:"currency" example:"USD"`
	Method            string  `json:"method" example:"card"`
	Status            string  `json:"status" example:"completed"`
	ExternalReference string  `json:"external_reference,omitempty"`
	DisplayName       string  `json:"display_name,omitempty"`
	Message           string  `json:"message,omitempty"`
	CreatedAt         string  `json:"created_at" example:"2024-11-02T16:09:57+03:00"`
}

type ActivityResponseDTO struct {
	CampaignID  int     `json:"campaign_id" example:"1"`
	DisplayName string  `json:"display_name,omitempty"`
	Amount      float64 `json:"amount" example:"25"`
	Currency    string  `json:"currency" example:"USD"`
	CreatedAt   string  `json:"created_at" example:"2024-11-02T16:09:57+03:00"`
}
