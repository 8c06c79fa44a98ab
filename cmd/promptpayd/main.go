package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mantvmass/promptpay-go/promptpay"
	"golang.org/x/exp/slog"
)

func main() {
	// Optional .env for local runs; real deployments set the environment.
	godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout))

	config := promptpay.DefaultConfig()
	config.HTTPAddr = getenv("HTTP_ADDR", config.HTTPAddr)
	config.CountryCode = getenv("PP_COUNTRY", config.CountryCode)
	config.CurrencyCode = getenv("PP_CURRENCY", config.CurrencyCode)
	if v := getenv("PP_VALIDATE", ""); v != "" {
		config.ValidateInput = v == "true"
	}
	if v := getenv("PP_QR_SIZE", ""); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			config.QRSize = size
		} else {
			logger.Info("invalid PP_QR_SIZE; using default", slog.String("value", v))
		}
	}

	app := promptpay.NewApp(logger, config)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	app.Shutdown()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
