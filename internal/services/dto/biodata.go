package dto

// EditBiodataRequest carries the full replaceable field set of a profile.
// The public sequence id is never accepted from the client. Age fields
// arrive as free-form text and must parse as whole numbers.
type EditBiodataRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`

	Name        string `json:"name" validate:"required,max=120"`
	DateOfBirth string `json:"dateOfBirth" validate:"max=20"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	Height      string `json:"height" validate:"max=20"`
	Weight      string `json:"weight" validate:"max=20"`
	Age         string `json:"age" validate:"required,numerictext"`
	Occupation  string `json:"occupation" validate:"max=80"`
	Religion    string `json:"religion" validate:"max=40"`
	Image       string `json:"image"`

	MobileNumber string `json:"mobileNumber" validate:"max=30"`
	FathersName  string `json:"fathersName" validate:"max=120"`
	MothersName  string `json:"mothersName" validate:"max=120"`

	PermanentDivision string `json:"permanentDivision" validate:"max=60"`
	PresentDivision   string `json:"presentDivision" validate:"max=60"`

	PartnerAge    string `json:"partnerAge" validate:"omitempty,numerictext"`
	PartnerHeight string `json:"partnerHeight" validate:"max=20"`
	PartnerWeight string `json:"partnerWeight" validate:"max=20"`
}
