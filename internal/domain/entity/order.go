package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de un pedido.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "open"   // pendiente de cobro
	OrderStatusBilled OrderStatus = "billed" // cobrado
)

// ParseOrderStatus traduce el valor textual; vacío o desconocido devuelve false.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusOpen, OrderStatusBilled:
		return OrderStatus(s), true
	}
	return "", false
}

// OrderLine copia de un producto en el momento de agregarlo al pedido.
type OrderLine struct {
	ProductID   string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Ingredients []Ingredient    `json:"ingredients"`
}

// LineFromProduct construye la línea a partir del producto (copia profunda de ingredientes).
func LineFromProduct(p *Product) OrderLine {
	ings := make([]Ingredient, len(p.Ingredients))
	copy(ings, p.Ingredients)
	return OrderLine{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Ingredients: ings,
	}
}

// Order pedido de una mesa. Lines se persiste serializado (snapshot) y nunca se reescribe.
type Order struct {
	ID           string
	TenantCode   string
	TableNumber  int
	BilledAmount decimal.Decimal // redondeado a 2 decimales al crear
	Lines        []OrderLine
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	BilledAt     *time.Time
}

// EncodeSnapshot serializa las líneas conservando su orden.
func EncodeSnapshot(lines []OrderLine) ([]byte, error) {
	if lines == nil {
		lines = []OrderLine{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot reconstruye las líneas a partir del snapshot persistido.
func DecodeSnapshot(raw []byte) ([]OrderLine, error) {
	if len(raw) == 0 {
		return []OrderLine{}, nil
	}
	var lines []OrderLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return lines, nil
}
