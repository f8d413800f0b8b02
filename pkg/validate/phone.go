package validate

import (
	"github.com/ttacon/libphonenumber"
)

const defaultRegion = "IN"

// IsPhone reports whether s parses as a valid phone number. Numbers without
// a country code are interpreted in the default region.
func IsPhone(s string) bool {
	num, err := libphonenumber.Parse(s, defaultRegion)
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(num)
}
