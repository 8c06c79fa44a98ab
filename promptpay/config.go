package promptpay

// Config carries the payload defaults plus the QR rendering defaults the
// service exposes. It is immutable per call; nothing here is a process-wide
// mutable default.
type Config struct {
	// CountryCode is the 2-letter ISO country code for field 58.
	CountryCode string
	// CurrencyCode is the 3-digit ISO 4217 numeric code for field 53.
	CurrencyCode string
	// ValidateInput toggles the kind-specific checksum/format rules.
	// Classification always runs; unknown identifiers fail regardless.
	ValidateInput bool

	// QR rendering defaults used by the service and CLI.
	QRSize          int
	QRForeground    string // "#RRGGBB"
	QRBackground    string // "#RRGGBB"
	QRDisableBorder bool

	// HTTPAddr is the listen address of the HTTP API.
	HTTPAddr string
}

func DefaultConfig() *Config {
	return &Config{
		CountryCode:   "TH",
		CurrencyCode:  "764", // THB
		ValidateInput: true,
		QRSize:        256,
		QRForeground:  "#000000",
		QRBackground:  "#FFFFFF",
		HTTPAddr:      "localhost:8080",
	}
}

// withDefaults fills empty fields without mutating the receiver.
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	out := *c
	def := DefaultConfig()
	if out.CountryCode == "" {
		out.CountryCode = def.CountryCode
	}
	if out.CurrencyCode == "" {
		out.CurrencyCode = def.CurrencyCode
	}
	if out.QRSize <= 0 {
		out.QRSize = def.QRSize
	}
	if out.QRForeground == "" {
		out.QRForeground = def.QRForeground
	}
	if out.QRBackground == "" {
		out.QRBackground = def.QRBackground
	}
	if out.HTTPAddr == "" {
		out.HTTPAddr = def.HTTPAddr
	}
	return &out
}
