// Package persistence selects the KVStore implementation from
// configuration and registers its lifecycle with Fx.
package persistence

import (
	"context"
	"log/slog"

	"threadz/config"
	"threadz/internal/domain/repository"
	"threadz/internal/infra/persistence/filestore"
	"threadz/internal/infra/persistence/memory"
	"threadz/internal/infra/persistence/redisstore"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in storage.provider.
const (
	ProviderMemory = "memory"
	ProviderFile   = "file"
	ProviderRedis  = "redis"
)

// Params holds dependencies for the KVStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates a KVStore based on configuration
func New(params Params) (repository.KVStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	switch cfg.Provider {
	case "", ProviderFile:
		logger.Info("Using file-backed storage",
			slog.String("dataDir", cfg.DataDir),
		)

		return filestore.New(cfg.DataDir)

	case ProviderMemory:
		logger.Info("Using in-memory storage; state will not survive restarts")

		return memory.New(), nil

	case ProviderRedis:
		if cfg.Redis == nil {
			return nil, errors.New("redis configuration is required for redis provider")
		}
		logger.Info("Using Redis storage",
			slog.String("addr", cfg.Redis.Addr),
		)

		store, closeFn, err := redisstore.New(params.Ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing Redis connection")

				return closeFn()
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
