package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mantvmass/promptpay-go/internal/merchant"
	"github.com/mantvmass/promptpay-go/internal/qrimg"
	"github.com/mantvmass/promptpay-go/promptpay"
	"github.com/shopspring/decimal"
)

var (
	flagTarget     = flag.String("target", "", "merchant identifier: phone, tax ID, or e-wallet ID")
	flagAmount     = flag.String("amount", "", "optional amount in THB (e.g., 100.50)")
	flagFormat     = flag.String("format", "payload", "output format: payload|png|base64|html")
	flagOut        = flag.String("out", "", "output file (required for png; stdout otherwise)")
	flagSize       = flag.Int("size", 256, "QR image size in pixels")
	flagCountry    = flag.String("country", "TH", "2-letter ISO country code")
	flagCurrency   = flag.String("currency", "764", "3-digit ISO 4217 numeric currency code")
	flagNoValidate = flag.Bool("no-validate", false, "skip checksum/format validation of the identifier")
)

func main() {
	flag.Parse()
	if *flagTarget == "" {
		fail("-target is required (phone, tax ID, or e-wallet ID)")
	}

	var amount decimal.NullDecimal
	if *flagAmount != "" {
		a, err := decimal.NewFromString(*flagAmount)
		if err != nil {
			fail(fmt.Sprintf("invalid -amount %q: %v", *flagAmount, err))
		}
		amount = decimal.NewNullDecimal(a)
	}

	config := promptpay.DefaultConfig()
	config.CountryCode = *flagCountry
	config.CurrencyCode = *flagCurrency
	config.ValidateInput = !*flagNoValidate

	payload, err := promptpay.BuildPayload(*flagTarget, amount, config)
	must(err)

	kind, _ := merchant.Classify(*flagTarget)
	fmt.Fprintf(os.Stderr, "kind: %s\n", kind)

	switch *flagFormat {
	case "payload":
		fmt.Println(payload)
	case "png":
		if *flagOut == "" {
			fail("-out is required for png output")
		}
		must(qrimg.WriteFile(payload, *flagOut, *flagSize))
		fmt.Fprintf(os.Stderr, "wrote %s\n", *flagOut)
	case "base64":
		uri, err := qrimg.Base64PNG(payload, *flagSize)
		must(err)
		fmt.Println(uri)
	case "html":
		img, err := qrimg.HTMLImg(payload, *flagSize, "")
		must(err)
		fmt.Println(img)
	default:
		fail(fmt.Sprintf("unsupported -format %q", *flagFormat))
	}
}

func must(err error) {
	if err != nil {
		fail(err.Error())
	}
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}
