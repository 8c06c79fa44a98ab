// Package emvqr builds EMVCo Merchant Presented Mode TLV payloads.
//
// Every field is tag + two-digit decimal byte length + value; lengths are
// always derived from the value at encode time, never stored. The two-digit
// length field caps values at 99 bytes, which is reported as an overflow
// error rather than truncated.
package emvqr

import (
	"fmt"
	"strings"
)

// Root-level tags, in the order the standard emits them.
const (
	TagFormatIndicator  = "00"
	TagInitiationMethod = "01"
	TagMerchantAccount  = "29"
	TagCurrency         = "53"
	TagAmount           = "54"
	TagCountry          = "58"
	TagCRC              = "63"
)

// Merchant account information sub-template tags.
const (
	SubTagAID     = "00"
	SubTagPhone   = "01"
	SubTagTaxID   = "02"
	SubTagEWallet = "03"
)

const (
	// PromptPayAID marks the tag 29 sub-template as PromptPay.
	PromptPayAID = "A000000677010111"

	FormatIndicator = "01"
	MethodStatic    = "11" // no fixed amount
	MethodDynamic   = "12" // amount present
)

const maxValueLen = 99

var ErrOverflow = fmt.Errorf("tlv value exceeds 99 bytes")

// Field is a single tag-length-value entry. Value is the already-serialized
// byte string; for templates it is the concatenation of the sub-fields.
type Field struct {
	Tag   string
	Value string
}

func (f Field) appendTo(b *strings.Builder) error {
	if len(f.Value) > maxValueLen {
		return fmt.Errorf("tag %s: %w", f.Tag, ErrOverflow)
	}
	fmt.Fprintf(b, "%s%02d%s", f.Tag, len(f.Value), f.Value)
	return nil
}

// Template is an ordered field sequence. Order is fixed by the standard and
// checksum-covered, so it is never sorted or deduplicated here.
type Template []Field

// Encode serializes the template without a checksum.
func (t Template) Encode() (string, error) {
	var b strings.Builder
	for _, f := range t {
		if err := f.appendTo(&b); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Nested serializes sub-fields into a single field whose length is the total
// byte length of the serialized sub-template.
func Nested(tag string, sub ...Field) (Field, error) {
	value, err := Template(sub).Encode()
	if err != nil {
		return Field{}, err
	}
	if len(value) > maxValueLen {
		return Field{}, fmt.Errorf("tag %s: %w", tag, ErrOverflow)
	}
	return Field{Tag: tag, Value: value}, nil
}

// EncodeWithCRC serializes the template, appends the CRC field header
// ("6304"), and completes the payload with the checksum over everything
// emitted so far, including that header.
func (t Template) EncodeWithCRC() (string, error) {
	body, err := t.Encode()
	if err != nil {
		return "", err
	}
	body += TagCRC + "04"
	return body + ChecksumHex(body), nil
}
