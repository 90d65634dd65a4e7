package test

import (
	"context"

	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
)

// PaymentFacadeStub implements the HTTP facade interfaces with overridable functions.
type PaymentFacadeStub struct {
	CreateOrderFn func(context.Context, model.CreateOrderRequest) (*model.Order, error)
	VerifyOrderFn func(context.Context, string) (*model.Verification, error)
	SignatureFn   func(orderID, paymentID, signature string) error
}

func (s PaymentFacadeStub) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return &model.Order{ID: "order_stub", Amount: req.Amount, Currency: req.Currency}, nil
}

func (s PaymentFacadeStub) VerifyOrder(ctx context.Context, orderID string) (*model.Verification, error) {
	if s.VerifyOrderFn != nil {
		return s.VerifyOrderFn(ctx, orderID)
	}
	return &model.Verification{OrderID: orderID, Currency: "INR"}, nil
}

func (s PaymentFacadeStub) VerifyCallbackSignature(orderID, paymentID, signature string) error {
	if s.SignatureFn != nil {
		return s.SignatureFn(orderID, paymentID, signature)
	}
	return nil
}

// KeyVerifierStub accepts the key Valid and rejects everything else with Err.
type KeyVerifierStub struct {
	Valid    string
	Err      error
	Disabled bool
}

func (s KeyVerifierStub) Verify(key string) error {
	if key == s.Valid {
		return nil
	}
	return s.Err
}

func (s KeyVerifierStub) Enabled() bool { return !s.Disabled }
