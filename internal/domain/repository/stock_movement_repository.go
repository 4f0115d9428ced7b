package repository

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para movimientos de stock (DIP).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByStock(ctx context.Context, stockID string, limit, offset int) ([]*entity.StockMovement, error)
}
