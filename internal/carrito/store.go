package carrito

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists carts per visitor session. Obtener creates an empty cart
// lazily on first access; the cart lives as long as the session key does.
type Store interface {
	Obtener(ctx context.Context, sesionID string) (*Carrito, error)
	Guardar(ctx context.Context, sesionID string, c *Carrito) error
	Limpiar(ctx context.Context, sesionID string) error
}

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore stores carts as JSON values under carrito:<sesion>, refreshed
// to the configured TTL on every save.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func clave(sesionID string) string { return "carrito:" + sesionID }

func (s *redisStore) Obtener(ctx context.Context, sesionID string) (*Carrito, error) {
	raw, err := s.rdb.Get(ctx, clave(sesionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Nuevo(), nil
	}
	if err != nil {
		return nil, err
	}
	var c Carrito
	if err := json.Unmarshal(raw, &c); err != nil {
		// A corrupt value is unrecoverable session state; start over.
		return Nuevo(), nil
	}
	if c.Items == nil {
		c.Items = make(map[string]int)
	}
	return &c, nil
}

func (s *redisStore) Guardar(ctx context.Context, sesionID string, c *Carrito) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, clave(sesionID), raw, s.ttl).Err()
}

func (s *redisStore) Limpiar(ctx context.Context, sesionID string) error {
	return s.rdb.Del(ctx, clave(sesionID)).Err()
}
