package services

import (
	"matchmaker_backend/internal/email"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	BiodataService BiodataService
	PremiumService PremiumService
	ReviewService  ReviewService
	EmailService   email.Provider
}
