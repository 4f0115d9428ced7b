package ports

import "context"

// SessionStore define el puerto de salida hacia el almacén clave-valor de sesión.
// Get devuelve ok=false cuando la clave no existe (no es un error).
type SessionStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}
