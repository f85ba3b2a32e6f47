package forms

import (
	"regexp"
	"strings"

	"farmstead/internal/models"
)

// Field keys of the farm setup error map.
const (
	FieldFarmName     = "farmName"
	FieldFarmLocation = "farmLocation"
	FieldPhoneNumber  = "phoneNumber"
	FieldFarmType     = "farmType"
)

// FarmFields lists the farm setup fields in display order, so callers can
// render the error map deterministically.
var FarmFields = []string{FieldFarmName, FieldFarmLocation, FieldPhoneNumber, FieldFarmType}

// phonePattern accepts an optional leading +, then digits, spaces, hyphens and
// parentheses, at least ten of them. It is matched after stripping whitespace,
// so the minimum length counts only digit-bearing characters and punctuation.
var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)

var stripWhitespace = regexp.MustCompile(`\s`)

// ValidateFarm checks a farm profile and returns a field-keyed error map.
// The profile is valid when the map is empty.
func ValidateFarm(p models.FarmProfile) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(p.FarmName) == "" {
		errs[FieldFarmName] = "Farm name is required"
	}

	if strings.TrimSpace(p.FarmLocation) == "" {
		errs[FieldFarmLocation] = "Farm location is required"
	}

	if strings.TrimSpace(p.PhoneNumber) == "" {
		errs[FieldPhoneNumber] = "Phone number is required"
	} else if !phonePattern.MatchString(stripWhitespace.ReplaceAllString(p.PhoneNumber, "")) {
		errs[FieldPhoneNumber] = "Please enter a valid phone number"
	}

	if !p.FarmType.Valid() {
		errs[FieldFarmType] = "Please select a farm type"
	}

	return errs
}
