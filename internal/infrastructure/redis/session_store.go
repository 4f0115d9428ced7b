package redis

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Comandera-api/internal/application/ports"
	goredis "github.com/redis/go-redis/v9"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore claves de sesión con expiración. ttl 0 = sin expiración.
type SessionStore struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewSessionStore construye el almacén de sesión.
func NewSessionStore(client goredis.Cmdable, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Get devuelve ok=false si la clave no existe o expiró.
func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set escribe la clave y renueva su expiración.
func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

// Remove borra las claves; las inexistentes se ignoran.
func (s *SessionStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
