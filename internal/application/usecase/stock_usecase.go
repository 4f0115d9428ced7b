package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// StockUseCase casos de uso CRUD para insumos y consulta de movimientos.
type StockUseCase struct {
	repo      repository.StockRepository
	movements repository.StockMovementRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, movements repository.StockMovementRepository, log zerolog.Logger) *StockUseCase {
	return &StockUseCase{repo: repo, movements: movements, log: log, now: time.Now}
}

// Upsert crea el insumo si id está vacío; si no, actualiza nombre, precio y cantidad.
// Un cambio manual de cantidad queda registrado como movimiento de ajuste.
func (uc *StockUseCase) Upsert(ctx context.Context, tc tenant.Context, id string, in dto.StockRequest) (*dto.StockResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	now := uc.now()
	item := &entity.StockItem{
		ID:         id,
		TenantCode: tc.TenantCode,
		Name:       strings.TrimSpace(in.Name),
		Price:      in.Price,
		Quantity:   in.Quantity,
		UpdatedAt:  now,
	}
	if !item.Validate() {
		return nil, domain.ErrInvalidInput
	}

	if id == "" {
		item.ID = uuid.New().String()
		item.CreatedAt = now
		if err := uc.repo.Create(ctx, item); err != nil {
			return nil, err
		}
		return toStockResponse(item), nil
	}

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.TenantCode != tc.TenantCode {
		return nil, domain.ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	// La escritura solo procede si nadie descontó stock desde la lectura; si no, ErrConflict.
	item.Version = existing.Version
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	item.Version = existing.Version + 1

	if delta := item.Quantity - existing.Quantity; delta != 0 {
		mov := &entity.StockMovement{
			ID:           uuid.New().String(),
			TenantCode:   tc.TenantCode,
			StockID:      item.ID,
			Type:         entity.MovementTypeAdjust,
			Delta:        delta,
			ResultingQty: item.Quantity,
			CreatedAt:    now,
		}
		if err := uc.movements.Create(ctx, mov); err != nil {
			uc.log.Warn().Err(err).Str("stock_id", item.ID).Str("ccode", tc.TenantCode).Msg("no se pudo registrar el ajuste de stock")
		}
	}
	return toStockResponse(item), nil
}

// GetByID obtiene un insumo del restaurante. nil, nil si no existe.
func (uc *StockUseCase) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.StockResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TenantCode != tc.TenantCode {
		return nil, nil
	}
	return toStockResponse(item), nil
}

// List lista los insumos del restaurante.
func (uc *StockUseCase) List(ctx context.Context, tc tenant.Context) (*dto.StockListResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByTenant(ctx, tc.TenantCode)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{Items: items}, nil
}

// Delete elimina un insumo. Idempotente.
func (uc *StockUseCase) Delete(ctx context.Context, tc tenant.Context, id string) error {
	if err := tc.Require(); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, tc.TenantCode, id)
}

// Movements lista los movimientos de un insumo, del más reciente al más antiguo.
func (uc *StockUseCase) Movements(ctx context.Context, tc tenant.Context, id string, page dto.PageRequest) (*dto.StockMovementListResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TenantCode != tc.TenantCode {
		return nil, domain.ErrNotFound
	}
	page.Normalize()
	list, err := uc.movements.ListByStock(ctx, id, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.StockMovementResponse{
			ID:           m.ID,
			StockID:      m.StockID,
			OrderID:      m.OrderID,
			Type:         m.Type,
			Delta:        m.Delta,
			ResultingQty: m.ResultingQty,
			CreatedAt:    m.CreatedAt,
		})
	}
	return &dto.StockMovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toStockResponse(s *entity.StockItem) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:         s.ID,
		TenantCode: s.TenantCode,
		Name:       s.Name,
		Price:      s.Price,
		Quantity:   s.Quantity,
		Version:    s.Version,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
