package handlers

import (
	"context"

	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
)

// OrderFacade exposes order creation and verification to HTTP handlers.
type OrderFacade interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	VerifyOrder(ctx context.Context, orderID string) (*model.Verification, error)
}

// CallbackFacade checks checkout callback signatures.
type CallbackFacade interface {
	VerifyCallbackSignature(orderID, paymentID, signature string) error
}

// PaymentFacade aggregates the full set of operations used across handlers.
type PaymentFacade interface {
	OrderFacade
	CallbackFacade
}
