package app

import (
	"context"

	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
	"github.com/Abhijeetcode911/customgpt-payment/internal/pkg/auth"
	"github.com/Abhijeetcode911/customgpt-payment/internal/usecase"
)

type PaymentFacade struct {
	orders     *usecase.OrderUseCase
	verifier   *usecase.VerificationUseCase
	signatures *auth.SignatureVerifier
}

func NewPaymentFacade(orders *usecase.OrderUseCase, verifier *usecase.VerificationUseCase, signatures *auth.SignatureVerifier) *PaymentFacade {
	return &PaymentFacade{orders: orders, verifier: verifier, signatures: signatures}
}

func (f *PaymentFacade) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	return f.orders.Create(ctx, req)
}

func (f *PaymentFacade) VerifyOrder(ctx context.Context, orderID string) (*model.Verification, error) {
	return f.verifier.Verify(ctx, orderID)
}

func (f *PaymentFacade) EvictExpiredOrders(ctx context.Context) (int, error) {
	return f.orders.Evict(ctx)
}

func (f *PaymentFacade) VerifyCallbackSignature(orderID, paymentID, signature string) error {
	return f.signatures.Verify(orderID, paymentID, signature)
}
