package ports

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/domain/order"
)

// DraftStore persiste el pedido en construcción de cada sesión.
// Load devuelve un borrador vacío si la sesión aún no tiene uno.
type DraftStore interface {
	Load(ctx context.Context, sessionID string) (*order.Draft, error)
	Save(ctx context.Context, sessionID string, draft *order.Draft) error
	Delete(ctx context.Context, sessionID string) error
}
