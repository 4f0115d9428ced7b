package ordering

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/ports"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/order"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

// DraftUseCase arma el pedido de la sesión antes de enviarlo a cocina.
type DraftUseCase struct {
	drafts   ports.DraftStore
	products repository.ProductRepository
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(drafts ports.DraftStore, products repository.ProductRepository) *DraftUseCase {
	return &DraftUseCase{drafts: drafts, products: products}
}

// Get devuelve el borrador de la sesión (vacío si no hay).
func (uc *DraftUseCase) Get(ctx context.Context, tc tenant.Context) (*dto.DraftResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	d, err := uc.drafts.Load(ctx, tc.SessionID)
	if err != nil {
		return nil, fmt.Errorf("cargar borrador: %w", err)
	}
	return toDraftResponse(d), nil
}

// AddItem agrega el producto al final del borrador. El producto debe ser del restaurante.
func (uc *DraftUseCase) AddItem(ctx context.Context, tc tenant.Context, productID string) (*dto.DraftResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.TenantCode != tc.TenantCode {
		return nil, domain.ErrNotFound
	}
	d, err := uc.drafts.Load(ctx, tc.SessionID)
	if err != nil {
		return nil, fmt.Errorf("cargar borrador: %w", err)
	}
	d.AddItem(p)
	if err := uc.drafts.Save(ctx, tc.SessionID, d); err != nil {
		return nil, fmt.Errorf("guardar borrador: %w", err)
	}
	return toDraftResponse(d), nil
}

// RemoveItem quita la línea index. Índice inválido: ErrIndexOutOfRange y el borrador no cambia.
func (uc *DraftUseCase) RemoveItem(ctx context.Context, tc tenant.Context, index int) (*dto.DraftResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	d, err := uc.drafts.Load(ctx, tc.SessionID)
	if err != nil {
		return nil, fmt.Errorf("cargar borrador: %w", err)
	}
	if err := d.RemoveItem(index); err != nil {
		return nil, err
	}
	if err := uc.drafts.Save(ctx, tc.SessionID, d); err != nil {
		return nil, fmt.Errorf("guardar borrador: %w", err)
	}
	return toDraftResponse(d), nil
}

// Reset descarta el borrador.
func (uc *DraftUseCase) Reset(ctx context.Context, tc tenant.Context) error {
	if err := tc.Require(); err != nil {
		return err
	}
	if err := uc.drafts.Delete(ctx, tc.SessionID); err != nil {
		return fmt.Errorf("borrar borrador: %w", err)
	}
	return nil
}

func toDraftResponse(d *order.Draft) *dto.DraftResponse {
	return &dto.DraftResponse{
		Lines: dto.NewOrderLines(d.Lines),
		Total: d.Total,
	}
}
