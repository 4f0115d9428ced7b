package ports

import "context"

// Claves de enrutamiento de los eventos de pedido.
const (
	EventOrderSubmitted = "order.submitted"
	EventOrderBilled    = "order.billed"
)

// EventPublisher define el puerto de salida hacia el broker de eventos (cocina, caja).
// La publicación es best-effort: el llamador registra el error y continúa.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// NopPublisher descarta los eventos. Se usa cuando no hay broker configurado.
type NopPublisher struct{}

// Publish no hace nada.
func (NopPublisher) Publish(context.Context, string, any) error { return nil }
