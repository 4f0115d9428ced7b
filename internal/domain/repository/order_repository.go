package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// OrderFilter acota el listado de pedidos. Table filtra por coincidencia parcial del número de mesa.
type OrderFilter struct {
	Status entity.OrderStatus
	Table  string
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve nil, nil cuando no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// UpdateStatus cambia el estado sin comprobar el anterior y sella at como fecha de cobro
	// si el pedido pasa a billed por primera vez. Devuelve ErrNotFound si no hay fila.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, at time.Time) error
	ListByTenant(ctx context.Context, tenantCode string, filter OrderFilter) ([]*entity.Order, error)
}
