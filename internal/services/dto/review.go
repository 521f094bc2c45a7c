package dto

type CreateReviewRequest struct {
	Email        string `json:"email" binding:"required" validate:"required,email"`
	Name         string `json:"name" validate:"required,max=120"`
	Image        string `json:"image"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	MarriageDate string `json:"marriageDate" validate:"max=20"`
	Story        string `json:"story" validate:"required"`
}
