package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/inventory"
	"github.com/jhoicas/Comandera-api/internal/application/ports"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/order"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// SubmitUseCase confirma el borrador como pedido y descuenta el stock consumido.
type SubmitUseCase struct {
	orders     repository.OrderRepository
	drafts     ports.DraftStore
	reconciler *inventory.Reconciler
	events     ports.EventPublisher
	log        zerolog.Logger
	now        func() time.Time
}

// NewSubmitUseCase construye el caso de uso. events nil equivale a no publicar.
func NewSubmitUseCase(
	orders repository.OrderRepository,
	drafts ports.DraftStore,
	reconciler *inventory.Reconciler,
	events ports.EventPublisher,
	log zerolog.Logger,
) *SubmitUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	return &SubmitUseCase{
		orders:     orders,
		drafts:     drafts,
		reconciler: reconciler,
		events:     events,
		log:        log,
		now:        time.Now,
	}
}

// Submit envía el borrador guardado de la sesión.
func (uc *SubmitUseCase) Submit(ctx context.Context, tc tenant.Context, tableNumber int) (*dto.SubmitResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	d, err := uc.drafts.Load(ctx, tc.SessionID)
	if err != nil {
		return nil, fmt.Errorf("cargar borrador: %w", err)
	}
	return uc.SubmitDraft(ctx, tc, tableNumber, d)
}

// SubmitDraft persiste el pedido (estado open, monto redondeado a 2 decimales, snapshot de líneas)
// y luego descuenta cada entrada del ledger.
//
// Sin restaurante: ErrMissingTenant. Mesa ≤ 0 o borrador vacío: ErrInvalidInput. En ambos
// casos no se escribe nada. Si falla la escritura del pedido devuelve ErrRemoteWrite y el
// borrador se conserva. Una vez persistido el pedido el borrador se vacía, y los fallos del
// descuento solo se reportan: el pedido nunca se revierte.
func (uc *SubmitUseCase) SubmitDraft(ctx context.Context, tc tenant.Context, tableNumber int, d *order.Draft) (*dto.SubmitResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	if tableNumber <= 0 || d == nil || d.IsEmpty() {
		return nil, domain.ErrInvalidInput
	}

	ledger := d.Ledger()
	lines := d.Clone().Lines
	now := uc.now()
	o := &entity.Order{
		ID:           uuid.New().String(),
		TenantCode:   tc.TenantCode,
		TableNumber:  tableNumber,
		BilledAmount: d.Total.Round(2),
		Lines:        lines,
		Status:       entity.OrderStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		uc.log.Error().Err(err).Str("ccode", tc.TenantCode).Int("table", tableNumber).Msg("no se pudo registrar el pedido")
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
	}

	d.Reset()
	if tc.SessionID != "" {
		if err := uc.drafts.Delete(ctx, tc.SessionID); err != nil {
			uc.log.Warn().Err(err).Str("order_id", o.ID).Msg("pedido registrado pero no se pudo vaciar el borrador")
		}
	}

	if err := uc.events.Publish(ctx, ports.EventOrderSubmitted, NewOrderEvent(o, true, now)); err != nil {
		uc.log.Warn().Err(err).Str("order_id", o.ID).Msg("no se pudo publicar el pedido a cocina")
	}

	report := uc.reconciler.Reconcile(ctx, tc.TenantCode, o.ID, ledger)
	failed := len(report.Failed())
	uc.log.Info().
		Str("order_id", o.ID).
		Str("ccode", tc.TenantCode).
		Int("table", tableNumber).
		Int("applied", len(report.Applied())).
		Int("skipped", len(report.Skipped())).
		Int("failed", failed).
		Msg("pedido registrado")

	return toSubmitResponse(o, report), nil
}

func toSubmitResponse(o *entity.Order, report inventory.Report) *dto.SubmitResponse {
	out := &dto.SubmitResponse{
		Order: *dto.NewOrderResponse(o),
		Report: dto.ReconcileReport{
			Applied: []dto.ReconcileEntry{},
			Skipped: []dto.ReconcileEntry{},
			Failed:  []dto.ReconcileEntry{},
		},
		Message: "pedido registrado",
	}
	for _, r := range report.Entries {
		e := dto.ReconcileEntry{
			Line:     r.Entry.Line,
			StockID:  r.Entry.Ingredient.StockID,
			Name:     r.Entry.Ingredient.Name,
			Required: r.Entry.Ingredient.Quantity,
			Attempts: r.Attempts,
		}
		switch r.Outcome {
		case inventory.OutcomeApplied:
			qty := r.Resulting
			e.Resulting = &qty
			e.Negative = r.Negative
			out.Report.Applied = append(out.Report.Applied, e)
		case inventory.OutcomeSkipped:
			e.Reason = "insumo inexistente"
			out.Report.Skipped = append(out.Report.Skipped, e)
		default:
			e.Reason = "error de escritura"
			if inventory.IsConflict(r.Err) {
				e.Reason = "conflicto de concurrencia"
			}
			out.Report.Failed = append(out.Report.Failed, e)
		}
	}
	if len(out.Report.Failed) > 0 {
		out.Caveat = true
		out.Message = "pedido registrado, pero no se pudo actualizar parte del stock"
	}
	return out
}
