package dto

// RegisterUserRequest creates the user record on first sign-in.
type RegisterUserRequest struct {
	Name  string `json:"name" validate:"max=120"`
	Email string `json:"email" binding:"required" validate:"required,email"`
}

// CreateResult mirrors the store's insert report. A duplicate create is
// not an error: InsertedID stays null and Message says the record already
// exists, so clients must inspect the payload.
type CreateResult struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// RoleCheckResponse answers the self-service "am I admin" lookup.
type RoleCheckResponse struct {
	Admin bool `json:"admin"`
}
