package qrimg

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const payload = "00020101021129370016A000000677010111011300668123456785802TH530376463045D82"

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

func TestPNG(t *testing.T) {
	png, err := PNG(payload, 128)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !bytes.HasPrefix(png, pngSignature) {
		t.Fatalf("output is not a PNG")
	}

	// size <= 0 falls back to the default.
	if _, err := PNG(payload, 0); err != nil {
		t.Fatalf("default size: %v", err)
	}
}

func TestPNGWithOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Foreground = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	opts.DisableBorder = true

	png, err := PNGWithOptions(payload, opts)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !bytes.HasPrefix(png, pngSignature) {
		t.Fatalf("output is not a PNG")
	}
}

func TestBase64PNG(t *testing.T) {
	uri, err := Base64PNG(payload, 64)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("missing data URI prefix: %.40s", uri)
	}
}

func TestHTMLImg(t *testing.T) {
	img, err := HTMLImg(payload, 100, "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, want := range []string{`alt="PromptPay QR Code"`, `width="100"`, `height="100"`, "<img src=\"data:image/png;base64,"} {
		if !strings.Contains(img, want) {
			t.Fatalf("img tag missing %s: %.80s", want, img)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr.png")
	if err := WriteFile(payload, path, 64); err != nil {
		t.Fatalf("err: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Fatalf("file is not a PNG")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#1A2B3C")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := color.RGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 0xFF}
	if c != want {
		t.Fatalf("got %v want %v", c, want)
	}

	for _, bad := range []string{"", "000000", "#00", "#GGGGGG"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
