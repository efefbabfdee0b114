// Package redis implementa el límite de peticiones por ventana fija sobre Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventario-lotes-api/pkg/config"
)

const keyNamespace = "inventario:rate_limit"

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Incr(context.Context, string) *redis.IntCmd
	Expire(context.Context, string, time.Duration) *redis.BoolCmd
}

// Limiter contador de peticiones por clave con TTL igual a la ventana.
type Limiter struct {
	store cmdable
	raw   *redis.Client
}

// New conecta con Redis y verifica la conexión.
func New(ctx context.Context, cfg config.RedisConfig) (*Limiter, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Limiter{store: raw, raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if !cfg.Enabled() {
		return nil, errors.New("se requiere REDIS_URL o REDIS_ADDRESS")
	}
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsear REDIS_URL: %w", err)
		}
		if opts.DB == 0 {
			opts.DB = cfg.DB
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}

// Allow incrementa el contador de scope y fija el TTL en el primer incremento.
// Devuelve si la petición entra en el límite y el conteo actual de la ventana.
func (l *Limiter) Allow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	if l == nil || l.store == nil {
		return false, 0, errors.New("cliente redis no inicializado")
	}
	key := Key(scope)
	count, err := l.store.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if window > 0 && count == 1 {
		if err := l.store.Expire(ctx, key, window).Err(); err != nil {
			return false, count, err
		}
	}
	return count <= limit, count, nil
}

// Ping verifica la conexión (health check).
func (l *Limiter) Ping(ctx context.Context) error {
	return l.store.Ping(ctx).Err()
}

// Close cierra la conexión subyacente.
func (l *Limiter) Close() error {
	if l.raw == nil {
		return nil
	}
	return l.raw.Close()
}

// Key clave con espacio de nombres para un scope.
func Key(scope string) string {
	return keyNamespace + ":" + strings.ToLower(strings.TrimSpace(scope))
}
