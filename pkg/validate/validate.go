package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCouponCode reports whether s is a well-formed coupon code: numeric with a
// valid Luhn check digit. Malformed codes are rejected before any lookup.
func IsCouponCode(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsCurrency reports whether s looks like a 3-letter ISO currency code.
func IsCurrency(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
