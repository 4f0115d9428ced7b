package billing

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// ReceiptGenerator genera el ticket (PDF) de un pedido.
// Implementado por infrastructure/pdf.MarotoReceiptGenerator.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, tenant *entity.Tenant) ([]byte, error)
}
