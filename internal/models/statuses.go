package models

type UserRole string
type PremiumRole string
type BiodataStatus string

const (
	// User.Role: empty until an administrator grants elevation.
	UserRoleNone  UserRole = ""
	UserRoleAdmin UserRole = "admin"

	// PremiumRequest.Role doubles as the request's approval status:
	// submitted requests carry "premium" and stay pending until an
	// administrator flips the matching biodata's status.
	PremiumRoleNone    PremiumRole = ""
	PremiumRolePremium PremiumRole = "premium"

	BiodataStatusNormal  BiodataStatus = "normal"
	BiodataStatusPremium BiodataStatus = "premium"
)
