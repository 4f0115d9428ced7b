package auth

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// El alta de restaurante y de su administrador es atómica.
type TxRunner interface {
	RunSignup(ctx context.Context, fn func(
		tenantRepo repository.TenantRepository,
		userRepo repository.UserRepository,
	) error) error
}

// SessionManager abre y cierra sesiones (implementado por tenant.Resolver).
type SessionManager interface {
	Open(ctx context.Context, sessionID, tenantCode, role string) error
	Close(ctx context.Context, sessionID string) error
}
