package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	dominv "github.com/jhoicas/Comandera-api/internal/domain/inventory"
	"github.com/jhoicas/Comandera-api/internal/domain/order"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Config parámetros del descuento de stock.
type Config struct {
	MaxAttempts int           // intentos de compare-and-swap por entrada
	Concurrency int           // entradas procesadas en paralelo
	BaseBackoff time.Duration // espera base entre intentos
}

// Outcome resultado de una entrada del ledger.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

// EntryResult resultado del descuento de un ingrediente de una línea.
type EntryResult struct {
	Entry     order.LedgerEntry
	Outcome   Outcome
	Resulting int64 // existencia tras aplicar (solo OutcomeApplied)
	Negative  bool
	Attempts  int
	Err       error
}

// Report resultados en el mismo orden que el ledger recibido.
type Report struct {
	Entries []EntryResult
}

// Failed devuelve las entradas que no pudieron aplicarse.
func (r Report) Failed() []EntryResult { return r.filter(OutcomeFailed) }

// Skipped devuelve las entradas cuyo insumo no existe.
func (r Report) Skipped() []EntryResult { return r.filter(OutcomeSkipped) }

// Applied devuelve las entradas aplicadas.
func (r Report) Applied() []EntryResult { return r.filter(OutcomeApplied) }

func (r Report) filter(o Outcome) []EntryResult {
	var out []EntryResult
	for _, e := range r.Entries {
		if e.Outcome == o {
			out = append(out, e)
		}
	}
	return out
}

// Reconciler descuenta del stock los ingredientes consumidos por un pedido.
// Cada entrada es un leer-calcular-escribir protegido por la versión de la fila.
type Reconciler struct {
	stock     repository.StockRepository
	movements repository.StockMovementRepository
	cfg       Config
	log       zerolog.Logger
	now       func() time.Time
}

// NewReconciler construye el reconciliador. Valores de cfg ≤ 0 toman el mínimo útil.
func NewReconciler(stock repository.StockRepository, movements repository.StockMovementRepository, cfg Config, log zerolog.Logger) *Reconciler {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &Reconciler{stock: stock, movements: movements, cfg: cfg, log: log, now: time.Now}
}

// Reconcile procesa todas las entradas concurrentemente, sin orden garantizado entre ellas.
// Un insumo inexistente se registra y se omite. Nunca devuelve error: los fallos van en el Report.
func (r *Reconciler) Reconcile(ctx context.Context, tenantCode, orderID string, ledger []order.LedgerEntry) Report {
	results := make([]EntryResult, len(ledger))

	var g errgroup.Group
	g.SetLimit(r.cfg.Concurrency)
	for i, entry := range ledger {
		g.Go(func() error {
			results[i] = r.apply(ctx, tenantCode, orderID, entry)
			return nil
		})
	}
	_ = g.Wait()

	return Report{Entries: results}
}

func (r *Reconciler) apply(ctx context.Context, tenantCode, orderID string, entry order.LedgerEntry) EntryResult {
	ing := entry.Ingredient
	res := EntryResult{Entry: entry}
	log := r.log.With().
		Str("order_id", orderID).
		Str("stock_id", ing.StockID).
		Str("ccode", tenantCode).
		Int("line", entry.Line).
		Logger()

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		res.Attempts = attempt

		item, err := r.stock.GetByID(ctx, ing.StockID)
		if err != nil {
			res.Outcome = OutcomeFailed
			res.Err = fmt.Errorf("leer insumo: %w", err)
			log.Error().Err(err).Msg("descuento de stock: lectura fallida")
			return res
		}
		if item == nil || item.TenantCode != tenantCode {
			res.Outcome = OutcomeSkipped
			res.Err = domain.ErrNotFound
			log.Warn().Str("ingredient", ing.Name).Msg("descuento de stock: insumo inexistente, se omite")
			return res
		}

		next, short := dominv.NextQuantity(item.Quantity, ing.Quantity)
		ok, err := r.stock.CompareAndSwapQuantity(ctx, item.ID, item.Version, next)
		if err != nil {
			res.Outcome = OutcomeFailed
			res.Err = fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
			log.Error().Err(err).Msg("descuento de stock: escritura fallida")
			return res
		}
		if ok {
			res.Outcome = OutcomeApplied
			res.Resulting = next
			res.Negative = short
			if short {
				log.Warn().Int64("quantity", next).Msg("descuento de stock: existencia negativa")
			}
			r.record(ctx, log, tenantCode, orderID, item.ID, -ing.Quantity, next)
			return res
		}

		log.Debug().Int("attempt", attempt).Msg("descuento de stock: versión desactualizada, reintentando")
		if attempt < r.cfg.MaxAttempts {
			if err := sleepCtx(ctx, backoff(r.cfg.BaseBackoff, attempt)); err != nil {
				res.Outcome = OutcomeFailed
				res.Err = err
				return res
			}
		}
	}

	res.Outcome = OutcomeFailed
	res.Err = domain.ErrConflict
	log.Error().Int("attempts", res.Attempts).Msg("descuento de stock: reintentos agotados")
	return res
}

// record guarda el movimiento; un fallo solo se registra en el log.
func (r *Reconciler) record(ctx context.Context, log zerolog.Logger, tenantCode, orderID, stockID string, delta, resulting int64) {
	if r.movements == nil {
		return
	}
	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		TenantCode:   tenantCode,
		StockID:      stockID,
		OrderID:      orderID,
		Type:         entity.MovementTypeOrder,
		Delta:        delta,
		ResultingQty: resulting,
		CreatedAt:    r.now(),
	}
	if err := r.movements.Create(ctx, mov); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el movimiento de stock")
	}
}

// IsConflict indica si el error de una entrada fue por reintentos agotados.
func IsConflict(err error) bool { return errors.Is(err, domain.ErrConflict) }
