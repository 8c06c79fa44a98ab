package promptpay

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mantvmass/promptpay-go/internal/merchant"
	"github.com/mantvmass/promptpay-go/internal/qrimg"
	"github.com/mantvmass/promptpay-go/promptpay/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

// Service exposes the builder and renderer behind a stable request/response
// surface. It holds only the immutable config and a logger; every call
// builds fresh values, so concurrent use needs no locking.
type Service struct {
	config *Config
	logger *slog.Logger
}

func NewService(logger *slog.Logger, config *Config) *Service {
	return &Service{
		config: config.withDefaults(),
		logger: logger.With(slog.String("component", "promptpay")),
	}
}

// configFor derives the per-call config from the request overrides.
func (s *Service) configFor(req models.BuildRequest) *Config {
	cfg := *s.config
	if req.CountryCode != "" {
		cfg.CountryCode = req.CountryCode
	}
	if req.CurrencyCode != "" {
		cfg.CurrencyCode = req.CurrencyCode
	}
	if req.ValidateInput != nil {
		cfg.ValidateInput = *req.ValidateInput
	}
	return &cfg
}

func (s *Service) BuildPayload(req models.BuildRequest) (*models.PayloadResponse, error) {
	cfg := s.configFor(req)

	payload, err := BuildPayload(req.Identifier, req.Amount, cfg)
	if err != nil {
		return nil, fmt.Errorf("building payload: %w", err)
	}

	kind, sanitized := merchant.Classify(req.Identifier)
	resp := &models.PayloadResponse{
		RequestID:    uuid.New().String(),
		Payload:      payload,
		Merchant:     models.MerchantInfo{Raw: req.Identifier, Sanitized: sanitized, Kind: kind.String()},
		Amount:       req.Amount,
		CountryCode:  cfg.CountryCode,
		CurrencyCode: cfg.CurrencyCode,
	}

	s.logger.Info("payload built",
		slog.String("request_id", resp.RequestID),
		slog.String("kind", resp.Merchant.Kind),
		slog.Bool("dynamic", req.Amount.Valid),
	)

	return resp, nil
}

// Classify reports how an identifier would be read, without building
// anything. Never fails; the verdict carries the error text instead.
func (s *Service) Classify(input string) *models.ClassifyResponse {
	kind, sanitized := merchant.Classify(input)
	resp := &models.ClassifyResponse{
		Input:     input,
		Sanitized: sanitized,
		Kind:      kind.String(),
	}
	if err := merchant.Validate(kind, sanitized); err != nil {
		resp.Error = err.Error()
	} else {
		resp.Valid = true
	}
	return resp
}

// RenderQR builds the payload and renders it in the requested format. The
// raw PNG bytes are returned separately so the HTTP layer can serve them
// as an image; the response carries the text forms.
func (s *Service) RenderQR(req models.QRRequest) (*models.QRResponse, []byte, error) {
	built, err := s.BuildPayload(req.BuildRequest)
	if err != nil {
		return nil, nil, err
	}

	size := req.Size
	if size <= 0 {
		size = s.config.QRSize
	}

	resp := &models.QRResponse{
		RequestID: built.RequestID,
		Payload:   built.Payload,
		Merchant:  built.Merchant,
	}

	switch req.Format {
	case models.FormatPayload, "":
		return resp, nil, nil
	case models.FormatPNG:
		png, err := qrimg.PNGWithOptions(built.Payload, s.renderOptions(size))
		if err != nil {
			return nil, nil, fmt.Errorf("rendering png: %w", err)
		}
		return resp, png, nil
	case models.FormatBase64:
		uri, err := qrimg.Base64PNG(built.Payload, size)
		if err != nil {
			return nil, nil, fmt.Errorf("rendering png: %w", err)
		}
		resp.PNGBase64 = uri
		return resp, nil, nil
	case models.FormatHTML:
		img, err := qrimg.HTMLImg(built.Payload, size, "")
		if err != nil {
			return nil, nil, fmt.Errorf("rendering png: %w", err)
		}
		resp.HTMLImg = img
		return resp, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported format %q", req.Format)
	}
}

func (s *Service) renderOptions(size int) qrimg.Options {
	opts := qrimg.DefaultOptions()
	opts.Size = size
	opts.DisableBorder = s.config.QRDisableBorder
	if c, err := qrimg.ParseHexColor(s.config.QRForeground); err == nil {
		opts.Foreground = c
	}
	if c, err := qrimg.ParseHexColor(s.config.QRBackground); err == nil {
		opts.Background = c
	}
	return opts
}

// Quick builds a payload for an identifier and optional amount with the
// service defaults. A nil amount yields a static QR.
func (s *Service) Quick(identifier string, amount *decimal.Decimal) (string, error) {
	var a decimal.NullDecimal
	if amount != nil {
		a = decimal.NewNullDecimal(*amount)
	}
	return BuildPayload(identifier, a, s.config)
}
