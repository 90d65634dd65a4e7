package usecase

import (
	"fmt"
	"strings"
	"unicode"

	domainErrors "github.com/Abhijeetcode911/customgpt-payment/internal/domain/errors"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
)

// ValidateOrderID reports whether id is usable as a lookup key. Anything the
// processor does not recognise is left for it to reject.
func ValidateOrderID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// ValidateCreateRequest checks caller supplied order parameters.
func ValidateCreateRequest(req model.CreateOrderRequest) error {
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive integer in minor units", domainErrors.ErrInvalidRequest)
	}
	if req.Currency == "" {
		return nil
	}
	if len(req.Currency) != 3 {
		return fmt.Errorf("%w: currency must be a 3-letter code", domainErrors.ErrInvalidRequest)
	}
	for _, r := range req.Currency {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: currency must be a 3-letter code", domainErrors.ErrInvalidRequest)
		}
	}
	return nil
}

func normalizeCurrency(currency, fallback string) string {
	if currency == "" {
		currency = fallback
	}
	return strings.ToUpper(currency)
}
