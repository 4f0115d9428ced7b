package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

// ReceiptUseCase genera el ticket PDF de un pedido.
type ReceiptUseCase struct {
	orders    repository.OrderRepository
	tenants   repository.TenantRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(orders repository.OrderRepository, tenants repository.TenantRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, tenants: tenants, generator: generator}
}

// Download devuelve el PDF y el nombre de archivo sugerido.
//
// Retorna:
//   - domain.ErrNotFound  si el pedido no existe en el restaurante.
func (uc *ReceiptUseCase) Download(ctx context.Context, tc tenant.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	if err := tc.Require(); err != nil {
		return nil, "", err
	}
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: obtener pedido: %w", err)
	}
	if o == nil || o.TenantCode != tc.TenantCode {
		return nil, "", domain.ErrNotFound
	}
	t, err := uc.tenants.GetByCode(ctx, tc.TenantCode)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: obtener restaurante: %w", err)
	}
	if t == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, o, t)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: generación fallida: %w", err)
	}
	short := o.ID
	if len(short) > 8 {
		short = short[:8]
	}
	filename = fmt.Sprintf("ticket_mesa%d_%s.pdf", o.TableNumber, short)
	return pdfBytes, filename, nil
}
