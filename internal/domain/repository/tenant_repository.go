package repository

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// La implementación vive en infrastructure.
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByCode(ctx context.Context, code string) (*entity.Tenant, error)
	Update(ctx context.Context, tenant *entity.Tenant) error
}
