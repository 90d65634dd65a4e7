package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/Abhijeetcode911/customgpt-payment/internal/domain/errors"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/repository"
)

// VerificationUseCase decides whether an order has been paid.
type VerificationUseCase struct {
	authority OrderAuthority
	registry  repository.OrderRegistry
	logger    *slog.Logger
	now       func() time.Time
}

// NewVerificationUseCase constructs VerificationUseCase.
func NewVerificationUseCase(authority OrderAuthority, registry repository.OrderRegistry, logger *slog.Logger) *VerificationUseCase {
	return &VerificationUseCase{authority: authority, registry: registry, logger: logger, now: time.Now}
}

// Verify reads the order and its payments from the authority and reports the
// first captured attempt. It performs no writes and is safe to retry.
func (u *VerificationUseCase) Verify(ctx context.Context, orderID string) (*model.Verification, error) {
	orderID = strings.TrimSpace(orderID)
	if !ValidateOrderID(orderID) {
		return nil, domainErrors.ErrInvalidRequest
	}

	order, err := u.authority.FetchOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrOrderNotFound) {
			return nil, err
		}
		return nil, asUpstream(err)
	}

	// The authority's timestamp is used, not the registry's, so restarts don't matter.
	if order.ExpiredAt(u.now()) {
		return nil, domainErrors.ErrOrderExpired
	}

	u.observe(ctx, orderID)

	payments, err := u.authority.FetchPayments(ctx, orderID)
	if err != nil {
		return nil, asUpstream(err)
	}

	result := &model.Verification{
		OrderID:  orderID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}
	if captured, ok := model.FirstCaptured(payments); ok {
		paymentID := captured.ID
		result.Paid = true
		result.PaymentID = &paymentID
		if captured.Amount > 0 {
			result.Amount = captured.Amount
		}
	}
	return result, nil
}

func (u *VerificationUseCase) observe(ctx context.Context, orderID string) {
	if u.registry == nil {
		return
	}
	createdAt, ok, err := u.registry.Observe(ctx, orderID)
	switch {
	case err != nil:
		u.logger.Warn("registry lookup failed", slog.String("order", orderID), slog.String("error", err.Error()))
	case !ok:
		u.logger.Debug("order not in local registry", slog.String("order", orderID))
	default:
		u.logger.Debug("order found in local registry", slog.String("order", orderID), slog.Time("recorded_at", createdAt))
	}
}
