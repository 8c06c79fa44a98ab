package promptpay

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mantvmass/promptpay-go/promptpay/models"
)

// API is the HTTP surface over the service. Handlers hold no state and add
// no business logic; they translate between JSON and the typed calls.
type API struct {
	service *Service
}

func NewAPI(service *Service) *API {
	return &API{
		service: service,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/payloads", a.buildPayload)
	r.Post("/qr", a.renderQR)
	r.Post("/merchants/classify", a.classify)
}

func (a *API) buildPayload(w http.ResponseWriter, r *http.Request) {
	req := models.BuildRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := a.service.BuildPayload(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (a *API) renderQR(w http.ResponseWriter, r *http.Request) {
	req := models.QRRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, png, err := a.service.RenderQR(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	// The png format serves the image itself; the rest is JSON.
	if req.Format == models.FormatPNG {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(png)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (a *API) classify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(a.service.Classify(req.Identifier))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidMerchantID),
		errors.Is(err, ErrInvalidPhoneFormat),
		errors.Is(err, ErrInvalidTaxIDChecksum),
		errors.Is(err, ErrInvalidEWalletFormat),
		errors.Is(err, ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, ErrEncodingOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
