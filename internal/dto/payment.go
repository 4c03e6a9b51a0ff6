package dto

type CreateIntentRequestDTO struct {
	CampaignID     int     `json:"campaign_id" validate:"required" example:"1"`
	BaseAmount     float64 `json:"base_amount" validate:"required,gt=0" example:"50"`
	TipAmount      float64 `json:"tip_amount" validate:"gte=0" example:"0"`
	Currency       string  `json:"currency" example:"USD"`
	Method         string  `json:"method" validate:"required,oneof=card bank mobile" example:"card"`
	IsAnonymous    bool    `json:"is_anonymous" example:"false"`
	DisplayName    string  `json:"display_name" validate:"max=100"`
	ContactAddress string  `json:"contact_address" validate:"max=255"`
	Message        string  `json:"message" validate:"max=500"`
}

type CreateIntentResponseDTO struct {
	Reference   string `json:"reference" example:"pi_3MtwBwLkdIwHu7ix28a3tqPa"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

type CouponResponseDTO struct {
	Code     string  `json:"code" example:"456126121234"`
	Amount   float64 `json:"amount" example:"25"`
	Currency string  `json:"currency" example:"USD"`
	IssuedAt string  `json:"issued_at" example:"2024-11-02T16:09:57+03:00"`
}
