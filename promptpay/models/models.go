package models

import "github.com/shopspring/decimal"

// BuildRequest is the wire form of a payload build call. Zero-value country
// and currency fall back to the service defaults; a nil ValidateInput keeps
// the configured default.
type BuildRequest struct {
	Identifier    string              `json:"identifier"`
	Amount        decimal.NullDecimal `json:"amount"`
	CountryCode   string              `json:"country_code,omitempty"`
	CurrencyCode  string              `json:"currency_code,omitempty"`
	ValidateInput *bool               `json:"validate_input,omitempty"`
}

// MerchantInfo describes how an identifier was read.
type MerchantInfo struct {
	Raw       string `json:"raw"`
	Sanitized string `json:"sanitized"`
	Kind      string `json:"kind"`
}

type PayloadResponse struct {
	RequestID    string              `json:"request_id"`
	Payload      string              `json:"payload"`
	Merchant     MerchantInfo        `json:"merchant"`
	Amount       decimal.NullDecimal `json:"amount"`
	CountryCode  string              `json:"country_code"`
	CurrencyCode string              `json:"currency_code"`
}

// QR output formats.
const (
	FormatPayload = "payload"
	FormatPNG     = "png"
	FormatBase64  = "base64"
	FormatHTML    = "html"
)

type QRRequest struct {
	BuildRequest
	Size   int    `json:"size,omitempty"`
	Format string `json:"format,omitempty"`
}

type QRResponse struct {
	RequestID string       `json:"request_id"`
	Payload   string       `json:"payload"`
	PNGBase64 string       `json:"png_base64,omitempty"`
	HTMLImg   string       `json:"html_img,omitempty"`
	Merchant  MerchantInfo `json:"merchant"`
}

type ClassifyResponse struct {
	Input     string `json:"input"`
	Sanitized string `json:"sanitized"`
	Kind      string `json:"kind"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
}
