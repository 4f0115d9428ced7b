package dto

import (
	"time"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderLineResponse línea del pedido tal como se tomó.
type OrderLineResponse struct {
	ProductID   string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Ingredients []IngredientDTO `json:"ingredients"`
}

// DraftResponse estado del pedido en construcción de la sesión.
type DraftResponse struct {
	Lines []OrderLineResponse `json:"lines"`
	Total decimal.Decimal     `json:"total"`
}

// AddDraftItemRequest agrega un producto al borrador.
type AddDraftItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// SubmitOrderRequest confirma el borrador para una mesa.
type SubmitOrderRequest struct {
	TableNumber int `json:"table_number" validate:"required,min=1"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           string              `json:"id"`
	TenantCode   string              `json:"ccode"`
	TableNumber  int                 `json:"table_number"`
	BilledAmount decimal.Decimal     `json:"billed_amount"`
	Status       string              `json:"status"`
	Lines        []OrderLineResponse `json:"lines"`
	CreatedAt    time.Time           `json:"created_at"`
	BilledAt     *time.Time          `json:"billed_at,omitempty"`
}

// OrderListResponse pedidos del restaurante.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}

// ReconcileEntry resultado del descuento de un ingrediente.
type ReconcileEntry struct {
	Line      int    `json:"line"`
	StockID   string `json:"stock_id"`
	Name      string `json:"name"`
	Required  int64  `json:"required"`
	Resulting *int64 `json:"resulting_quantity,omitempty"`
	Negative  bool   `json:"negative,omitempty"`
	Attempts  int    `json:"attempts"`
	Reason    string `json:"reason,omitempty"`
}

// ReconcileReport agrupa los descuentos aplicados, omitidos y fallidos.
type ReconcileReport struct {
	Applied []ReconcileEntry `json:"applied"`
	Skipped []ReconcileEntry `json:"skipped"`
	Failed  []ReconcileEntry `json:"failed"`
}

// SubmitResponse pedido creado más el reporte de stock. Caveat es true si algún descuento falló.
type SubmitResponse struct {
	Order   OrderResponse   `json:"order"`
	Report  ReconcileReport `json:"stock_report"`
	Caveat  bool            `json:"caveat"`
	Message string          `json:"message"`
}

// NewOrderLines convierte las líneas del dominio conservando el orden.
func NewOrderLines(lines []entity.OrderLine) []OrderLineResponse {
	out := make([]OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, OrderLineResponse{
			ProductID:   l.ProductID,
			Name:        l.Name,
			Price:       l.Price,
			Category:    l.Category,
			Ingredients: NewIngredients(l.Ingredients),
		})
	}
	return out
}

// NewOrderResponse convierte un pedido del dominio.
func NewOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:           o.ID,
		TenantCode:   o.TenantCode,
		TableNumber:  o.TableNumber,
		BilledAmount: o.BilledAmount,
		Status:       string(o.Status),
		Lines:        NewOrderLines(o.Lines),
		CreatedAt:    o.CreatedAt,
		BilledAt:     o.BilledAt,
	}
}
