package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/ordering"
	"github.com/jhoicas/Comandera-api/internal/application/ports"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// OrderUseCase cobro de pedidos y consultas de pedidos abiertos y cobrados.
type OrderUseCase struct {
	orders repository.OrderRepository
	events ports.EventPublisher
	log    zerolog.Logger
	now    func() time.Time
}

// NewOrderUseCase construye el caso de uso. events nil equivale a no publicar.
func NewOrderUseCase(orders repository.OrderRepository, events ports.EventPublisher, log zerolog.Logger) *OrderUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	return &OrderUseCase{orders: orders, events: events, log: log, now: time.Now}
}

// Finalize marca el pedido como cobrado. El pedido debe existir en el restaurante (ErrNotFound).
// No se verifica el estado previo: cobrar un pedido ya cobrado lo deja igual.
func (uc *OrderUseCase) Finalize(ctx context.Context, tc tenant.Context, orderID string) (*dto.OrderResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.TenantCode != tc.TenantCode {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	if err := uc.orders.UpdateStatus(ctx, orderID, entity.OrderStatusBilled, now); err != nil {
		return nil, err
	}
	// Se devuelve la fila guardada: billed_at conserva el primer cobro.
	stored, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrNotFound
	}
	o = stored

	if err := uc.events.Publish(ctx, ports.EventOrderBilled, ordering.NewOrderEvent(o, false, now)); err != nil {
		uc.log.Warn().Err(err).Str("order_id", o.ID).Msg("no se pudo publicar el cobro")
	}
	uc.log.Info().Str("order_id", o.ID).Str("ccode", tc.TenantCode).Int("table", o.TableNumber).Msg("pedido cobrado")
	return dto.NewOrderResponse(o), nil
}

// GetByID devuelve el pedido con sus líneas. nil, nil si no existe en el restaurante.
func (uc *OrderUseCase) GetByID(ctx context.Context, tc tenant.Context, orderID string) (*dto.OrderResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.TenantCode != tc.TenantCode {
		return nil, nil
	}
	return dto.NewOrderResponse(o), nil
}

// List lista pedidos del restaurante por estado; status vacío devuelve todos.
// table filtra por coincidencia parcial del número de mesa.
func (uc *OrderUseCase) List(ctx context.Context, tc tenant.Context, status, table string) (*dto.OrderListResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	filter := repository.OrderFilter{Table: table}
	if status != "" {
		s, ok := entity.ParseOrderStatus(status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		filter.Status = s
	}
	list, err := uc.orders.ListByTenant(ctx, tc.TenantCode, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *dto.NewOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items}, nil
}

// ListOpen pedidos pendientes de cobro.
func (uc *OrderUseCase) ListOpen(ctx context.Context, tc tenant.Context) (*dto.OrderListResponse, error) {
	return uc.List(ctx, tc, string(entity.OrderStatusOpen), "")
}

// ListBilled pedidos cobrados.
func (uc *OrderUseCase) ListBilled(ctx context.Context, tc tenant.Context) (*dto.OrderListResponse, error) {
	return uc.List(ctx, tc, string(entity.OrderStatusBilled), "")
}
