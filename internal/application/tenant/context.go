// Package tenant resuelve el restaurante y el rol de la sesión activa.
package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Comandera-api/internal/application/ports"
	"github.com/jhoicas/Comandera-api/internal/domain"
)

// Claves por sesión en el SessionStore.
const (
	keyTenantCode = "userCcode"
	keyRole       = "userRole"
)

// Context identifica quién opera y sobre qué restaurante. Se pasa explícitamente a cada caso de uso.
type Context struct {
	TenantCode string
	Role       string
	UserID     string
	SessionID  string
}

// Require devuelve ErrMissingTenant si no hay código de restaurante.
func (c Context) Require() error {
	if strings.TrimSpace(c.TenantCode) == "" {
		return domain.ErrMissingTenant
	}
	return nil
}

// Resolver lee y escribe el estado de sesión (código de restaurante y rol).
type Resolver struct {
	store ports.SessionStore
}

// NewResolver construye el resolver sobre el almacén de sesión.
func NewResolver(store ports.SessionStore) *Resolver {
	return &Resolver{store: store}
}

func sessionKey(sessionID, name string) string {
	return "session:" + sessionID + ":" + name
}

// Open guarda el restaurante y el rol de una sesión recién iniciada.
func (r *Resolver) Open(ctx context.Context, sessionID, tenantCode, role string) error {
	if sessionID == "" || tenantCode == "" {
		return domain.ErrInvalidInput
	}
	if err := r.store.Set(ctx, sessionKey(sessionID, keyTenantCode), tenantCode); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	if err := r.store.Set(ctx, sessionKey(sessionID, keyRole), role); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Resolve reconstruye el Context de la sesión. Si el código de restaurante no está
// presente devuelve ErrMissingTenant.
func (r *Resolver) Resolve(ctx context.Context, sessionID, userID string) (Context, error) {
	if sessionID == "" {
		return Context{}, domain.ErrMissingTenant
	}
	code, ok, err := r.store.Get(ctx, sessionKey(sessionID, keyTenantCode))
	if err != nil {
		return Context{}, fmt.Errorf("leer sesión: %w", err)
	}
	if !ok || strings.TrimSpace(code) == "" {
		return Context{}, domain.ErrMissingTenant
	}
	role, _, err := r.store.Get(ctx, sessionKey(sessionID, keyRole))
	if err != nil {
		return Context{}, fmt.Errorf("leer sesión: %w", err)
	}
	return Context{TenantCode: code, Role: role, UserID: userID, SessionID: sessionID}, nil
}

// Close elimina las claves de la sesión.
func (r *Resolver) Close(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := r.store.Remove(ctx, sessionKey(sessionID, keyTenantCode), sessionKey(sessionID, keyRole)); err != nil {
		return fmt.Errorf("cerrar sesión: %w", err)
	}
	return nil
}
