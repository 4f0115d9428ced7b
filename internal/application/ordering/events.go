package ordering

import (
	"time"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// OrderEvent carga publicada al broker cuando un pedido se crea o se cobra.
type OrderEvent struct {
	OrderID     string      `json:"order_id"`
	TenantCode  string      `json:"ccode"`
	TableNumber int         `json:"table_number"`
	Amount      string      `json:"amount"`
	Status      string      `json:"status"`
	Lines       []EventLine `json:"lines,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// EventLine línea resumida para el ticket de cocina.
type EventLine struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// NewOrderEvent construye el evento a partir del pedido. withLines incluye las líneas (ticket de cocina).
func NewOrderEvent(o *entity.Order, withLines bool, at time.Time) OrderEvent {
	ev := OrderEvent{
		OrderID:     o.ID,
		TenantCode:  o.TenantCode,
		TableNumber: o.TableNumber,
		Amount:      o.BilledAmount.StringFixed(2),
		Status:      string(o.Status),
		OccurredAt:  at,
	}
	if withLines {
		ev.Lines = make([]EventLine, 0, len(o.Lines))
		for _, l := range o.Lines {
			ev.Lines = append(ev.Lines, EventLine{Name: l.Name, Category: l.Category})
		}
	}
	return ev
}
