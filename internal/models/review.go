package models

// Review is a marriage success story shown on the public site.
type Review struct {
	BaseModel
	Email        string `gorm:"not null" json:"email"`
	Name         string `gorm:"type:varchar(120)" json:"name"`
	Image        string `json:"image"`
	Rating       int    `json:"rating"`
	MarriageDate string `gorm:"type:varchar(20)" json:"marriageDate"`
	Story        string `gorm:"type:text" json:"story"`
}
