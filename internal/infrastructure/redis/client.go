// Package redis implementa el estado de sesión y los borradores de pedido sobre Redis.
package redis

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comandera-api/pkg/config"
	goredis "github.com/redis/go-redis/v9"
)

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
