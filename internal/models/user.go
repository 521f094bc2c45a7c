package models

type User struct {
	BaseModel
	Name  string   `gorm:"type:varchar(120)" json:"name"`
	Email string   `gorm:"uniqueIndex;not null" json:"email"`
	Role  UserRole `gorm:"type:varchar(20);default:''" json:"role"`
}
