package dto

// TokenRequest asks for a bearer token for the claimed identity.
type TokenRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
