// Package qrimg renders finished payload strings as QR images. The payload
// is opaque text here; rendering errors pass through to the caller unchanged.
package qrimg

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"os"

	qrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// Options controls rendering beyond the defaults: module colors, quiet zone
// and error correction level.
type Options struct {
	Size          int
	Foreground    color.Color
	Background    color.Color
	DisableBorder bool
	Level         qrcode.RecoveryLevel
}

func DefaultOptions() Options {
	return Options{
		Size:       DefaultSize,
		Foreground: color.Black,
		Background: color.White,
		Level:      qrcode.Medium,
	}
}

// PNG encodes the payload as a PNG image of size x size pixels.
func PNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(payload, qrcode.Medium, size)
}

// PNGWithOptions encodes the payload honoring the full option set.
func PNGWithOptions(payload string, opts Options) ([]byte, error) {
	q, err := qrcode.New(payload, opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Foreground != nil {
		q.ForegroundColor = opts.Foreground
	}
	if opts.Background != nil {
		q.BackgroundColor = opts.Background
	}
	q.DisableBorder = opts.DisableBorder

	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	return q.PNG(size)
}

// Base64PNG returns the PNG as a data URI usable directly in an img src.
func Base64PNG(payload string, size int) (string, error) {
	png, err := PNG(payload, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// HTMLImg wraps the data URI in an img tag. An empty alt falls back to
// "PromptPay QR Code".
func HTMLImg(payload string, size int, alt string) (string, error) {
	uri, err := Base64PNG(payload, size)
	if err != nil {
		return "", err
	}
	if alt == "" {
		alt = "PromptPay QR Code"
	}
	if size <= 0 {
		size = DefaultSize
	}
	return fmt.Sprintf(`<img src="%s" alt="%s" width="%d" height="%d" />`, uri, alt, size, size), nil
}

// WriteFile exports the payload as a PNG file.
func WriteFile(payload, path string, size int) error {
	png, err := PNG(payload, size)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o644)
}

// ParseHexColor parses "#RRGGBB" (the form config carries) into a color.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xFF}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}
