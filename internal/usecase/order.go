package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/repository"
)

// OrderUseCase creates orders with the authority and records them locally.
type OrderUseCase struct {
	authority       OrderAuthority
	registry        repository.OrderRegistry
	defaultCurrency string
	logger          *slog.Logger
	now             func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(authority OrderAuthority, registry repository.OrderRegistry, defaultCurrency string, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		authority:       authority,
		registry:        registry,
		defaultCurrency: defaultCurrency,
		logger:          logger,
		now:             time.Now,
	}
}

// Create issues a new order. A registry failure is logged and does not fail creation.
func (u *OrderUseCase) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if err := ValidateCreateRequest(req); err != nil {
		return nil, err
	}
	req.Currency = normalizeCurrency(req.Currency, u.defaultCurrency)

	order, err := u.authority.CreateOrder(ctx, req)
	if err != nil {
		return nil, asUpstream(err)
	}

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = u.now()
	}
	if err := u.registry.Record(ctx, order.ID, createdAt); err != nil {
		u.logger.Warn("registry record failed", slog.String("order", order.ID), slog.String("error", err.Error()))
	}

	u.logger.Info("order created",
		slog.String("order", order.ID),
		slog.Int64("amount", order.Amount),
		slog.String("currency", order.Currency),
	)
	return order, nil
}

// Evict drops registry entries whose validity window elapsed before now.
func (u *OrderUseCase) Evict(ctx context.Context) (int, error) {
	return u.registry.Evict(ctx, u.now().Add(-model.ValidityWindow))
}
