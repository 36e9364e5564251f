package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProfileIDPattern validates profile IDs with format: prf_ followed by a UUID
var ProfileIDPattern = regexp.MustCompile(`^prf_[a-zA-Z0-9-]{10,50}$`)

// ValidateProfileID validates that the profile ID follows the expected format
func ValidateProfileID(fl validator.FieldLevel) bool {
	return ProfileIDPattern.MatchString(fl.Field().String())
}

// ValidateNotBlank rejects strings that are empty after trimming
func ValidateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// RegisterProfileValidators registers all profile-related custom validators
func RegisterProfileValidators(v *validator.Validate) {
	v.RegisterValidation("profile_id", ValidateProfileID)
	v.RegisterValidation("notblank", ValidateNotBlank)
}
