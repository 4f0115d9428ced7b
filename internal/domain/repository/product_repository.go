package repository

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// ProductFilter filtros opcionales del listado de productos. Category vacío o "All" no filtra.
type ProductFilter struct {
	Category string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve nil, nil cuando no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ListByTenant(ctx context.Context, tenantCode string, filter ProductFilter) ([]*entity.Product, error)
	// Delete es idempotente: borrar un id inexistente o de otro restaurante no es error.
	Delete(ctx context.Context, tenantCode, id string) error
}
