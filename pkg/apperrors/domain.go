package apperrors

import "net/http"

// Predefined errors and factories for the matchmaker domain.

var (
	// Authentication / authorization
	ErrUnauthorized = New(CodeUnauthorized, "auth", "Unauthorized access", http.StatusUnauthorized)
	ErrForbidden    = New(CodeForbidden, "auth", "Forbidden access", http.StatusForbidden)
	ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound = New(CodeNotFound, "user", "User not found", http.StatusNotFound)

	// Biodata
	ErrBiodataNotFound = New(CodeNotFound, "biodata", "Biodata not found", http.StatusNotFound)

	// Premium requests
	ErrPremiumRequestNotFound = New(CodeNotFound, "premium", "Premium request not found", http.StatusNotFound)
)

// ErrNotFound converts a repository not-found error into an AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate error into an AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation - factory for invalid operations (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}
