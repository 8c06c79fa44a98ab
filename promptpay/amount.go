package promptpay

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxAmount is the largest value field 54 accepts.
var maxAmount = decimal.New(99999999999, -2) // 999,999,999.99

// ValidateAmount accepts amounts in (0, 999999999.99] with at most two
// fractional digits. Extra precision is rejected, never rounded, so the
// encoded value is always exactly what the caller asked for.
func ValidateAmount(a decimal.Decimal) error {
	if a.Sign() <= 0 {
		return fmt.Errorf("%w: must be positive, got %s", ErrInvalidAmount, a)
	}
	if a.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: exceeds %s", ErrInvalidAmount, maxAmount)
	}
	if !a.Equal(a.Truncate(2)) {
		return fmt.Errorf("%w: more than 2 fractional digits in %s", ErrInvalidAmount, a)
	}
	return nil
}

// FormatAmount renders the field 54 form: exactly two fractional digits,
// no separators, no symbol.
func FormatAmount(a decimal.Decimal) string {
	return a.StringFixed(2)
}
