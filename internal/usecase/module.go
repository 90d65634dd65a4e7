package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Abhijeetcode911/customgpt-payment/internal/config"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newOrderUseCase,
	NewVerificationUseCase,
)

type orderParams struct {
	fx.In

	Authority OrderAuthority
	Registry  repository.OrderRegistry
	Config    *config.Config
	Logger    *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Authority, p.Registry, p.Config.DefaultCurrency, p.Logger)
}
