package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAll en un filtro de listado equivale a no filtrar por categoría.
const CategoryAll = "All"

// Ingredient consumo de un ítem de stock por unidad vendida del producto.
type Ingredient struct {
	StockID  string `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// Product representa un producto de la carta. Ingredients conserva el orden de captura.
type Product struct {
	ID          string
	TenantCode  string
	Name        string
	Price       decimal.Decimal
	Category    string
	Ingredients []Ingredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate comprueba presencia de campos obligatorios: nombre, precio ≥ 0, categoría y al menos un ingrediente.
// Un ingrediente con cantidad 0 es válido (no descuenta nada); negativa no.
func (p *Product) Validate() bool {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Category) == "" {
		return false
	}
	if p.Price.IsNegative() || len(p.Ingredients) == 0 {
		return false
	}
	for _, ing := range p.Ingredients {
		if ing.StockID == "" || ing.Quantity < 0 {
			return false
		}
	}
	return true
}
