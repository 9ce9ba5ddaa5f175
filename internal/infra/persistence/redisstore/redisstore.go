// Package redisstore provides a Redis-backed KVStore for deployments
// that need shared persistence across instances.
package redisstore

import (
	"context"

	"threadz/config"
	"threadz/internal/domain/repository"
	"threadz/internal/errors"

	"github.com/redis/go-redis/v9"
)

type store struct {
	client *redis.Client
}

// New connects to Redis using the given configuration and verifies the
// connection with a ping before returning.
func New(ctx context.Context, cfg *config.RedisConfig) (repository.KVStore, func() error, error) {
	if cfg == nil {
		return nil, nil, errors.New("redis configuration is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, nil, errors.Wrap(err, "ping redis")
	}

	return &store{client: client}, client.Close, nil
}

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "get key %q", key)
	}

	return data, nil
}

func (s *store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "set key %q", key)
	}

	return nil
}

func (s *store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "delete key %q", key)
	}

	return nil
}
