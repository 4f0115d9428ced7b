package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeOrder  = "order"  // descuento por pedido
	MovementTypeAdjust = "adjust" // edición manual de la cantidad
)

// StockMovement registro de un cambio aplicado a un StockItem.
type StockMovement struct {
	ID           string
	TenantCode   string
	StockID      string
	OrderID      string // vacío en ajustes manuales
	Type         string // order, adjust
	Delta        int64  // negativo para descuentos
	ResultingQty int64
	CreatedAt    time.Time
}
