package validator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain rules into the validator instance.
func registerCustomRules(v *validator.Validate) error {
	// numerictext: free-form text that must parse as a whole number.
	// Age-like fields arrive as text but are stored as integers; bad
	// input is rejected here instead of being coerced to a sentinel.
	return v.RegisterValidation("numerictext", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if s == "" {
			// emptiness is the concern of the required tag
			return true
		}
		_, err := strconv.Atoi(s)
		return err == nil
	})
}
