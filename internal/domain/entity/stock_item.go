package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StockItem existencia de un insumo. Version se incrementa en cada escritura de Quantity
// y sirve de token para compare-and-swap.
type StockItem struct {
	ID         string
	TenantCode string
	Name       string
	Price      decimal.Decimal
	Quantity   int64 // puede quedar negativo tras descontar pedidos
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate comprueba nombre, precio ≥ 0 y cantidad ≥ 0 (solo para altas y ediciones manuales).
func (s *StockItem) Validate() bool {
	return strings.TrimSpace(s.Name) != "" && !s.Price.IsNegative() && s.Quantity >= 0
}
