package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRequest entrada para crear o actualizar un insumo.
type StockRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity" validate:"min=0"`
}

// StockResponse salida de un insumo.
type StockResponse struct {
	ID         string          `json:"id"`
	TenantCode string          `json:"ccode"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	Version    int64           `json:"version"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// StockListResponse insumos del restaurante.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
}

// StockMovementResponse un cambio aplicado a un insumo.
type StockMovementResponse struct {
	ID           string    `json:"id"`
	StockID      string    `json:"stock_id"`
	OrderID      string    `json:"order_id,omitempty"`
	Type         string    `json:"type"`
	Delta        int64     `json:"delta"`
	ResultingQty int64     `json:"resulting_quantity"`
	CreatedAt    time.Time `json:"created_at"`
}

// StockMovementListResponse lista paginada de movimientos.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
