package dto

// SubmitPremiumRequest is a user's petition for premium status.
type SubmitPremiumRequest struct {
	Email     string `json:"email" binding:"required" validate:"required,email"`
	Name      string `json:"name" validate:"max=120"`
	BiodataID int    `json:"biodataId" validate:"omitempty,min=1"`
}

// PremiumCheckResponse answers the self-service "am I premium" lookup.
type PremiumCheckResponse struct {
	Premium bool `json:"premium"`
}
