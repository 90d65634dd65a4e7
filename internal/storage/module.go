package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Abhijeetcode911/customgpt-payment/internal/config"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/repository"
	"github.com/Abhijeetcode911/customgpt-payment/internal/storage/memory"
	"github.com/Abhijeetcode911/customgpt-payment/internal/storage/postgres"
	"github.com/Abhijeetcode911/customgpt-payment/internal/storage/redis"
)

// Module wires the configured order registry backend.
var Module = fx.Options(
	fx.Provide(newBackend),
	fx.Provide(func(b repository.Backend) repository.OrderRegistry { return b }),
	fx.Invoke(registerLifecycle),
)

type backendParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newBackend(p backendParams) (repository.Backend, error) {
	var (
		backend repository.Backend
		err     error
	)
	switch p.Config.RegistryBackend {
	case config.RegistryMemory, "":
		backend = memory.NewRegistry()
	case config.RegistryPostgres:
		backend, err = postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	case config.RegistryRedis:
		backend, err = redis.New(p.Ctx, p.Config.RedisAddress, model.ValidityWindow)
	default:
		return nil, fmt.Errorf("unknown registry backend %q", p.Config.RegistryBackend)
	}
	if err != nil {
		return nil, err
	}
	p.Logger.Info("order registry ready", slog.String("backend", backend.Name()))
	return backend, nil
}

func registerLifecycle(lc fx.Lifecycle, backend repository.Backend) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return backend.Close()
		},
	})
}
