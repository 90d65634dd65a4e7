package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/Abhijeetcode911/customgpt-payment/internal/domain/errors"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
)

// OrderAuthority is the processor's service of record for orders and payments.
type OrderAuthority interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	FetchOrder(ctx context.Context, orderID string) (*model.Order, error)
	FetchPayments(ctx context.Context, orderID string) ([]model.Payment, error)
}

// asUpstream classifies an unrecognised authority error as an upstream failure.
func asUpstream(err error) error {
	if errors.Is(err, domainErrors.ErrUpstreamFailure) {
		return err
	}
	return &domainErrors.ProcessorError{Kind: domainErrors.ErrUpstreamFailure, Err: err}
}
