package repository

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura de categorías en uso (DIP).
type CategoryRepository interface {
	// ListByTenant devuelve las categorías distintas de los productos del restaurante, ordenadas por nombre.
	ListByTenant(ctx context.Context, tenantCode string) ([]*entity.Category, error)
}
