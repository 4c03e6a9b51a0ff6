package dto

type CreateCampaignRequestDTO struct {
	Title       string  `json:"title" validate:"required,max=255" example:"Community garden"`
	Description string  `json:"description" example:"Raised beds for the neighbourhood"`
	GoalAmount  float64 `json:"goal_amount" validate:"required,gt=0" example:"5000"`
}

type CampaignResponseDTO struct {
	ID            int     `json:"id" example:"1"`
	Title         string  `json:"title" example:"Community garden"`
	Description   string  `json:"description,omitempty"`
	GoalAmount    float64 `json:"goal_amount" example:"5000"`
	RaisedAmount  float64 `json:"raised_amount" example:"1250.50"`
	DonationCount int     `json:"donation_count" example:"17"`
	Status        string  `json:"status" example:"active"`
	CreatedAt     string  `json:"created_at" example:"2024-11-02T16:09:57+03:00"`
}
