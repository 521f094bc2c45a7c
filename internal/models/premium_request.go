package models

// PremiumRequest is a user's petition for premium visibility. One per
// email; logically distinct from User.Role - a premium requester is not
// thereby an admin.
type PremiumRequest struct {
	BaseModel
	Email     string      `gorm:"uniqueIndex;not null" json:"email"`
	Name      string      `gorm:"type:varchar(120)" json:"name"`
	BiodataID int         `json:"biodataId"`
	Role      PremiumRole `gorm:"type:varchar(20);default:''" json:"role"`
}
