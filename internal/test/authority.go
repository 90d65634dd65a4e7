package test

import (
	"context"
	"sync/atomic"

	domainErrors "github.com/Abhijeetcode911/customgpt-payment/internal/domain/errors"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
)

// AuthorityStub is a scripted payment processor double with call counters.
type AuthorityStub struct {
	CreateFn        func(context.Context, model.CreateOrderRequest) (*model.Order, error)
	FetchOrderFn    func(context.Context, string) (*model.Order, error)
	FetchPaymentsFn func(context.Context, string) ([]model.Payment, error)

	Orders   map[string]*model.Order
	Payments map[string][]model.Payment

	createCalls   atomic.Int32
	orderCalls    atomic.Int32
	paymentsCalls atomic.Int32
}

// CreateOrder delegates to CreateFn or echoes the request back as an order.
func (s *AuthorityStub) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	s.createCalls.Add(1)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return &model.Order{
		ID:       "order_stub",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
		Status:   "created",
	}, nil
}

// FetchOrder delegates to FetchOrderFn or looks the order up in Orders.
func (s *AuthorityStub) FetchOrder(ctx context.Context, orderID string) (*model.Order, error) {
	s.orderCalls.Add(1)
	if s.FetchOrderFn != nil {
		return s.FetchOrderFn(ctx, orderID)
	}
	if order, ok := s.Orders[orderID]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, &domainErrors.ProcessorError{
		Kind:        domainErrors.ErrOrderNotFound,
		StatusCode:  400,
		Description: "The id provided does not exist",
	}
}

// FetchPayments delegates to FetchPaymentsFn or returns Payments for the order.
func (s *AuthorityStub) FetchPayments(ctx context.Context, orderID string) ([]model.Payment, error) {
	s.paymentsCalls.Add(1)
	if s.FetchPaymentsFn != nil {
		return s.FetchPaymentsFn(ctx, orderID)
	}
	return append([]model.Payment(nil), s.Payments[orderID]...), nil
}

// CreateCalls reports how many times CreateOrder ran.
func (s *AuthorityStub) CreateCalls() int { return int(s.createCalls.Load()) }

// OrderCalls reports how many times FetchOrder ran.
func (s *AuthorityStub) OrderCalls() int { return int(s.orderCalls.Load()) }

// PaymentCalls reports how many times FetchPayments ran.
func (s *AuthorityStub) PaymentCalls() int { return int(s.paymentsCalls.Load()) }
