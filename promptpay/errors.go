package promptpay

import (
	"fmt"

	"github.com/mantvmass/promptpay-go/internal/emvqr"
	"github.com/mantvmass/promptpay-go/internal/merchant"
)

// Validation and encoding errors. All are deterministic input failures;
// none is retryable.
var (
	ErrInvalidMerchantID    = merchant.ErrInvalidMerchantID
	ErrInvalidPhoneFormat   = merchant.ErrInvalidPhoneFormat
	ErrInvalidTaxIDChecksum = merchant.ErrInvalidTaxIDChecksum
	ErrInvalidEWalletFormat = merchant.ErrInvalidEWalletFormat
	ErrEncodingOverflow     = emvqr.ErrOverflow

	ErrInvalidAmount = fmt.Errorf("invalid amount")
)
