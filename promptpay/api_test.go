package promptpay_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mantvmass/promptpay-go/promptpay"
	"github.com/mantvmass/promptpay-go/promptpay/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestRouter() chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard))
	router := chi.NewRouter()

	api := promptpay.NewAPI(promptpay.NewService(logger, promptpay.DefaultConfig()))
	api.AppendRoutes(router)

	return router
}

func TestAPI(t *testing.T) {
	router := newTestRouter()

	t.Run("build payload", func(t *testing.T) {
		jsonReq, _ := json.Marshal(models.BuildRequest{
			Identifier: "0812345678",
			Amount:     amount("100.50"),
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/payloads", bytes.NewBuffer(jsonReq))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		resp := models.PayloadResponse{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		require.Equal(t,
			"00020101021229370016A000000677010111011300668123456785802TH53037645406100.506304F88B",
			resp.Payload)
		require.Equal(t, "phone", resp.Merchant.Kind)
		require.Equal(t, "66812345678", resp.Merchant.Sanitized)
		require.NotEmpty(t, resp.RequestID)
	})

	t.Run("invalid identifier", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/payloads", strings.NewReader(`{"identifier":"1234567890"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "invalid merchant id")
	})

	t.Run("invalid amount", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/payloads", strings.NewReader(`{"identifier":"0812345678","amount":"1.005"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "invalid amount")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/payloads", strings.NewReader(`{`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAPI_RenderQR(t *testing.T) {
	router := newTestRouter()

	t.Run("png format returns an image", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/qr", strings.NewReader(`{"identifier":"0812345678","format":"png","size":128}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "image/png", w.Header().Get("Content-Type"))
		require.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}))
	})

	t.Run("base64 format", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/qr", strings.NewReader(`{"identifier":"0812345678","format":"base64"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		resp := models.QRResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.True(t, strings.HasPrefix(resp.PNGBase64, "data:image/png;base64,"))
		require.Equal(t, "00020101021129370016A000000677010111011300668123456785802TH530376463045D82", resp.Payload)
	})

	t.Run("default format returns payload only", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/qr", strings.NewReader(`{"identifier":"0812345678"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		resp := models.QRResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Payload)
		require.Empty(t, resp.PNGBase64)
		require.Empty(t, resp.HTMLImg)
	})

	t.Run("unsupported format", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/qr", strings.NewReader(`{"identifier":"0812345678","format":"svg"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAPI_Classify(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		identifier string
		kind       string
		valid      bool
	}{
		{"081-234-5678", "phone", true},
		{"1234567890124", "tax_id", true},
		{"1234567890123", "tax_id", false},
		{"123456789012345", "e_wallet", true},
		{"1234567890", "unknown", false},
	}

	for _, c := range cases {
		jsonReq, _ := json.Marshal(map[string]string{"identifier": c.identifier})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/merchants/classify", bytes.NewBuffer(jsonReq))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		resp := models.ClassifyResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, c.kind, resp.Kind, c.identifier)
		require.Equal(t, c.valid, resp.Valid, c.identifier)
	}
}
