// Package promptpay builds Thai PromptPay payment-QR payload strings per the
// EMVCo Merchant Presented Mode specification.
package promptpay

import (
	"github.com/mantvmass/promptpay-go/internal/emvqr"
	"github.com/mantvmass/promptpay-go/internal/merchant"
	"github.com/shopspring/decimal"
)

// Kind re-exports the merchant identifier kinds so callers need only this
// package.
type Kind = merchant.Kind

const (
	Unknown = merchant.Unknown
	Phone   = merchant.Phone
	TaxID   = merchant.TaxID
	EWallet = merchant.EWallet
)

// Sanitize and Classify expose the standalone helpers alongside the builder.
func Sanitize(raw string) string { return merchant.Sanitize(raw) }

func Classify(raw string) (Kind, string) { return merchant.Classify(raw) }

func ValidatePhone(digits string) error   { return merchant.ValidatePhone(digits) }
func ValidateTaxID(digits string) error   { return merchant.ValidateTaxID(digits) }
func ValidateEWallet(digits string) error { return merchant.ValidateEWallet(digits) }

// BuildPayload produces the checksum-protected payload string for the given
// identifier. A set amount switches the QR from static ("11") to dynamic
// ("12") initiation. A nil config means defaults (TH, THB, validation on).
//
// Pure function of its inputs: no I/O, no shared state, safe for concurrent
// use.
func BuildPayload(identifier string, amount decimal.NullDecimal, cfg *Config) (string, error) {
	cfg = cfg.withDefaults()

	kind, digits := merchant.Classify(identifier)
	if kind == merchant.Unknown {
		return "", ErrInvalidMerchantID
	}
	if cfg.ValidateInput {
		if err := merchant.Validate(kind, digits); err != nil {
			return "", err
		}
	}
	if amount.Valid {
		if err := ValidateAmount(amount.Decimal); err != nil {
			return "", err
		}
	}

	account, err := accountField(kind, digits)
	if err != nil {
		return "", err
	}

	method := emvqr.MethodStatic
	if amount.Valid {
		method = emvqr.MethodDynamic
	}

	fields := emvqr.Template{
		{Tag: emvqr.TagFormatIndicator, Value: emvqr.FormatIndicator},
		{Tag: emvqr.TagInitiationMethod, Value: method},
		account,
		{Tag: emvqr.TagCountry, Value: cfg.CountryCode},
		{Tag: emvqr.TagCurrency, Value: cfg.CurrencyCode},
	}
	if amount.Valid {
		fields = append(fields, emvqr.Field{Tag: emvqr.TagAmount, Value: FormatAmount(amount.Decimal)})
	}

	return fields.EncodeWithCRC()
}

// accountField assembles the tag 29 sub-template. The switch is exhaustive
// over the known kinds; exactly one account sub-field is ever present.
func accountField(kind Kind, digits string) (emvqr.Field, error) {
	var sub emvqr.Field
	switch kind {
	case merchant.Phone:
		// 11-digit international phone, left-padded to the 13-digit form.
		sub = emvqr.Field{Tag: emvqr.SubTagPhone, Value: "00" + digits}
	case merchant.TaxID:
		sub = emvqr.Field{Tag: emvqr.SubTagTaxID, Value: digits}
	case merchant.EWallet:
		sub = emvqr.Field{Tag: emvqr.SubTagEWallet, Value: digits}
	default:
		return emvqr.Field{}, ErrInvalidMerchantID
	}

	return emvqr.Nested(emvqr.TagMerchantAccount,
		emvqr.Field{Tag: emvqr.SubTagAID, Value: emvqr.PromptPayAID},
		sub,
	)
}
