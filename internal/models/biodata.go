package models

// Biodata is the structured matrimonial profile. Exactly one per owner
// email. BiodataID is the public sequence id: assigned by the system on
// first upsert and never regenerated afterwards.
type Biodata struct {
	BaseModel
	Email     string        `gorm:"uniqueIndex;not null" json:"email"`
	BiodataID int           `gorm:"uniqueIndex;not null" json:"biodataId"`
	Status    BiodataStatus `gorm:"type:varchar(20);default:'normal'" json:"status"`

	Name         string `gorm:"type:varchar(120)" json:"name"`
	DateOfBirth  string `gorm:"type:varchar(20)" json:"dateOfBirth"`
	Gender       string `gorm:"type:varchar(20)" json:"gender"`
	Height       string `gorm:"type:varchar(20)" json:"height"`
	Weight       string `gorm:"type:varchar(20)" json:"weight"`
	Age          int    `json:"age"`
	Occupation   string `gorm:"type:varchar(80)" json:"occupation"`
	Religion     string `gorm:"type:varchar(40)" json:"religion"`
	Image        string `json:"image"`
	MobileNumber string `gorm:"type:varchar(30)" json:"mobileNumber"`

	FathersName string `gorm:"type:varchar(120)" json:"fathersName"`
	MothersName string `gorm:"type:varchar(120)" json:"mothersName"`

	PermanentDivision string `gorm:"type:varchar(60)" json:"permanentDivision"`
	PresentDivision   string `gorm:"type:varchar(60)" json:"presentDivision"`

	// Partner preference
	PartnerAge    int    `json:"partnerAge"`
	PartnerHeight string `gorm:"type:varchar(20)" json:"partnerHeight"`
	PartnerWeight string `gorm:"type:varchar(20)" json:"partnerWeight"`
}

// BiodataSequence is the single-row counter backing BiodataID assignment.
// It is bumped with one atomic UPDATE inside the upsert transaction.
type BiodataSequence struct {
	Name  string `gorm:"primaryKey;type:varchar(40)"`
	Value int64  `gorm:"not null"`
}
