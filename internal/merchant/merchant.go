package merchant

import (
	"fmt"
	"strings"
)

// Kind is the PromptPay addressing scheme a merchant identifier belongs to.
type Kind int

const (
	Unknown Kind = iota
	Phone
	TaxID
	EWallet
)

func (k Kind) String() string {
	switch k {
	case Phone:
		return "phone"
	case TaxID:
		return "tax_id"
	case EWallet:
		return "e_wallet"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidMerchantID    = fmt.Errorf("invalid merchant id")
	ErrInvalidPhoneFormat   = fmt.Errorf("invalid phone format")
	ErrInvalidTaxIDChecksum = fmt.Errorf("invalid tax id checksum")
	ErrInvalidEWalletFormat = fmt.Errorf("invalid e-wallet format")
)

const thaiCallingPrefix = "66"

// Sanitize strips every non-digit character from raw and normalizes the
// 10-digit domestic phone form (leading 0) to the international one
// (leading 66, 11 digits). Everything else passes through unchanged.
// Idempotent: Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	digits := b.String()

	if len(digits) == 10 && digits[0] == '0' {
		return thaiCallingPrefix + digits[1:]
	}
	return digits
}

// Classify determines the identifier kind from its sanitized digit form.
// Shape only; Validate applies the kind-specific checksum/format rules.
func Classify(raw string) (Kind, string) {
	digits := Sanitize(raw)

	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, thaiCallingPrefix):
		return Phone, digits
	case len(digits) == 13:
		return TaxID, digits
	case len(digits) == 15:
		return EWallet, digits
	default:
		return Unknown, digits
	}
}

// Validate applies the kind-specific rules to an already-sanitized identifier.
func Validate(kind Kind, digits string) error {
	switch kind {
	case Phone:
		return ValidatePhone(digits)
	case TaxID:
		return ValidateTaxID(digits)
	case EWallet:
		return ValidateEWallet(digits)
	default:
		return ErrInvalidMerchantID
	}
}

// ValidatePhone accepts the sanitized international form: 66 plus 9 digits.
func ValidatePhone(digits string) error {
	if len(digits) != 11 || !strings.HasPrefix(digits, thaiCallingPrefix) || !IsDigits(digits) {
		return ErrInvalidPhoneFormat
	}
	return nil
}

// ValidateTaxID accepts a 13-digit Thai tax ID with a valid positional
// check digit: positions 1..12 weighted by (13 - position), summed, and the
// 13th digit must equal (11 - sum mod 11) mod 10.
func ValidateTaxID(digits string) error {
	if len(digits) != 13 || !IsDigits(digits) {
		return ErrInvalidTaxIDChecksum
	}
	if digits[12]-'0' != taxCheckDigit(digits[:12]) {
		return ErrInvalidTaxIDChecksum
	}
	return nil
}

func taxCheckDigit(first12 string) byte {
	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(first12[i]-'0') * (12 - i)
	}
	return byte((11 - sum%11) % 10)
}

// ValidateEWallet accepts a 15-digit e-wallet ID. Format only, no checksum.
func ValidateEWallet(digits string) error {
	if len(digits) != 15 || !IsDigits(digits) {
		return ErrInvalidEWalletFormat
	}
	return nil
}

func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
