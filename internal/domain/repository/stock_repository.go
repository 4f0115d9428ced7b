package repository

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// StockRepository define el puerto para los insumos en existencia.
type StockRepository interface {
	Create(ctx context.Context, item *entity.StockItem) error
	// GetByID devuelve nil, nil cuando no existe.
	GetByID(ctx context.Context, id string) (*entity.StockItem, error)
	// Update reescribe nombre, precio y cantidad solo si la fila sigue en item.Version,
	// e incrementa la versión. ErrConflict si otra escritura la cambió; ErrNotFound si no existe.
	Update(ctx context.Context, item *entity.StockItem) error
	ListByTenant(ctx context.Context, tenantCode string) ([]*entity.StockItem, error)
	// Delete es idempotente: borrar un id inexistente o de otro restaurante no es error.
	Delete(ctx context.Context, tenantCode, id string) error
	// CompareAndSwapQuantity escribe quantity solo si la fila sigue en expectedVersion.
	// Devuelve false (sin error) cuando otra escritura ganó la carrera.
	CompareAndSwapQuantity(ctx context.Context, id string, expectedVersion, quantity int64) (bool, error)
}
