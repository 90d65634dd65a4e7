package di

import (
	"go.uber.org/fx"

	"github.com/Abhijeetcode911/customgpt-payment/internal/adapter/razorpay"
	"github.com/Abhijeetcode911/customgpt-payment/internal/app"
	"github.com/Abhijeetcode911/customgpt-payment/internal/config"
	"github.com/Abhijeetcode911/customgpt-payment/internal/logger"
	"github.com/Abhijeetcode911/customgpt-payment/internal/pkg/auth"
	"github.com/Abhijeetcode911/customgpt-payment/internal/server/http/handlers"
	"github.com/Abhijeetcode911/customgpt-payment/internal/server/http/router"
	"github.com/Abhijeetcode911/customgpt-payment/internal/storage"
	"github.com/Abhijeetcode911/customgpt-payment/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		razorpay.Module,
		usecase.Module,
		fx.Provide(func(client razorpay.Client) usecase.OrderAuthority { return client }),
		fx.Provide(func(facade *app.PaymentFacade) handlers.PaymentFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
