package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Abhijeetcode911/customgpt-payment/internal/config"
	"github.com/Abhijeetcode911/customgpt-payment/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewPaymentFacade,
		newHTTPServer,
		newRegistrySweeper,
	),
	fx.Invoke(registerLifecycle),
)

const readHeaderTimeout = 10 * time.Second

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

type sweeperParams struct {
	fx.In

	Facade *PaymentFacade
	Config *config.Config
	Logger *slog.Logger
}

func newRegistrySweeper(p sweeperParams) *worker.RegistrySweeper {
	return worker.NewRegistrySweeper(p.Facade, p.Config.RegistrySweepInterval, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Sweeper    *worker.RegistrySweeper
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting payment gateway", slog.String("addr", p.Server.Addr))
			p.Sweeper.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Sweeper.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("payment gateway stopped")
			return nil
		},
	})
}
