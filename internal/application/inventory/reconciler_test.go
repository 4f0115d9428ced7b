package inventory_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandera-api/internal/application/inventory"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/order"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/memory"
)

const tenantCode = "REST01"

func seedStock(t *testing.T, repo *memory.StockRepo, id, tenant string, qty int64) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entity.StockItem{
		ID: id, TenantCode: tenant, Name: "Insumo " + id, Quantity: qty,
	}))
}

func entry(line int, stockID string, qty int64) order.LedgerEntry {
	return order.LedgerEntry{Line: line, Ingredient: entity.Ingredient{StockID: stockID, Name: stockID, Quantity: qty}}
}

func newReconciler(stock *memory.StockRepo, movs *memory.StockMovementRepo, attempts int) *inventory.Reconciler {
	return inventory.NewReconciler(stock, movs, inventory.Config{MaxAttempts: attempts, Concurrency: 4}, zerolog.Nop())
}

func TestReconcile_MismoInsumoEnDosLineasDescuentaDosVeces(t *testing.T) {
	stock := memory.NewStockRepo()
	movs := memory.NewStockMovementRepo()
	seedStock(t, stock, "lemon", tenantCode, 10)

	r := newReconciler(stock, movs, 5)
	report := r.Reconcile(context.Background(), tenantCode, "o-1", []order.LedgerEntry{
		entry(0, "lemon", 2),
		entry(1, "lemon", 2),
	})

	assert.Len(t, report.Applied(), 2)
	assert.Empty(t, report.Failed())
	assert.Equal(t, int64(6), stock.Quantity("lemon"))

	all := movs.All()
	require.Len(t, all, 2)
	for _, m := range all {
		assert.Equal(t, entity.MovementTypeOrder, m.Type)
		assert.Equal(t, "o-1", m.OrderID)
		assert.Equal(t, int64(-2), m.Delta)
	}
}

func TestReconcile_InsumoInexistenteSeOmite(t *testing.T) {
	stock := memory.NewStockRepo()
	seedStock(t, stock, "bread", tenantCode, 5)
	seedStock(t, stock, "foreign", "OTRO", 5)

	r := newReconciler(stock, memory.NewStockMovementRepo(), 3)
	report := r.Reconcile(context.Background(), tenantCode, "o-1", []order.LedgerEntry{
		entry(0, "ghost", 1),
		entry(0, "bread", 1),
		entry(0, "foreign", 1),
	})

	require.Len(t, report.Entries, 3)
	assert.Equal(t, inventory.OutcomeSkipped, report.Entries[0].Outcome)
	assert.ErrorIs(t, report.Entries[0].Err, domain.ErrNotFound)
	assert.Equal(t, inventory.OutcomeApplied, report.Entries[1].Outcome)
	assert.Equal(t, inventory.OutcomeSkipped, report.Entries[2].Outcome, "insumo de otro restaurante")
	assert.Empty(t, report.Failed())
	assert.Equal(t, int64(4), stock.Quantity("bread"))
	assert.Equal(t, int64(5), stock.Quantity("foreign"))
}

func TestReconcile_PermiteExistenciaNegativa(t *testing.T) {
	stock := memory.NewStockRepo()
	seedStock(t, stock, "coffee", tenantCode, 1)

	r := newReconciler(stock, memory.NewStockMovementRepo(), 3)
	report := r.Reconcile(context.Background(), tenantCode, "o-1", []order.LedgerEntry{entry(0, "coffee", 3)})

	require.Len(t, report.Applied(), 1)
	assert.True(t, report.Entries[0].Negative)
	assert.Equal(t, int64(-2), report.Entries[0].Resulting)
	assert.Equal(t, int64(-2), stock.Quantity("coffee"))
}

func TestReconcile_PedidosConcurrentesNoPierdenDescuentos(t *testing.T) {
	stock := memory.NewStockRepo()
	seedStock(t, stock, "milk", tenantCode, 3)
	r := newReconciler(stock, memory.NewStockMovementRepo(), 20)

	const orders = 10
	var wg sync.WaitGroup
	var failed atomic.Int32
	for i := 0; i < orders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rep := r.Reconcile(context.Background(), tenantCode, "o", []order.LedgerEntry{entry(0, "milk", 1)})
			failed.Add(int32(len(rep.Failed())))
		}()
	}
	wg.Wait()

	assert.Zero(t, failed.Load())
	assert.Equal(t, int64(3-orders), stock.Quantity("milk"))
}

func TestReconcile_ReintentaTrasVersionDesactualizada(t *testing.T) {
	ctx := context.Background()
	stock := memory.NewStockRepo()
	seedStock(t, stock, "rice", tenantCode, 10)

	var once sync.Once
	stock.BeforeCAS = func(id string) {
		once.Do(func() {
			item, _ := stock.GetByID(ctx, id)
			item.Quantity = 20
			_ = stock.Update(ctx, item)
		})
	}

	r := newReconciler(stock, memory.NewStockMovementRepo(), 3)
	report := r.Reconcile(ctx, tenantCode, "o-1", []order.LedgerEntry{entry(0, "rice", 2)})

	require.Len(t, report.Applied(), 1)
	assert.Equal(t, 2, report.Entries[0].Attempts)
	assert.Equal(t, int64(18), stock.Quantity("rice"))
}

func TestReconcile_ReintentosAgotadosEsConflicto(t *testing.T) {
	ctx := context.Background()
	stock := memory.NewStockRepo()
	seedStock(t, stock, "rice", tenantCode, 10)
	stock.BeforeCAS = func(id string) {
		item, _ := stock.GetByID(ctx, id)
		_ = stock.Update(ctx, item)
	}

	movs := memory.NewStockMovementRepo()
	r := newReconciler(stock, movs, 3)
	report := r.Reconcile(ctx, tenantCode, "o-1", []order.LedgerEntry{entry(0, "rice", 2)})

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, 3, failed[0].Attempts)
	assert.True(t, inventory.IsConflict(failed[0].Err))
	assert.Equal(t, int64(10), stock.Quantity("rice"))
	assert.Empty(t, movs.All())
}

func TestReconcile_ErrorDeEscrituraNoSeReintenta(t *testing.T) {
	stock := memory.NewStockRepo()
	seedStock(t, stock, "rice", tenantCode, 10)
	stock.CASErr = errors.New("conexión perdida")

	r := newReconciler(stock, memory.NewStockMovementRepo(), 5)
	report := r.Reconcile(context.Background(), tenantCode, "o-1", []order.LedgerEntry{entry(0, "rice", 2)})

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, 1, failed[0].Attempts)
	assert.ErrorIs(t, failed[0].Err, domain.ErrRemoteWrite)
	assert.False(t, inventory.IsConflict(failed[0].Err))
}

func TestReconcile_LedgerVacio(t *testing.T) {
	r := newReconciler(memory.NewStockRepo(), nil, 1)
	report := r.Reconcile(context.Background(), tenantCode, "o-1", nil)
	assert.Empty(t, report.Entries)
}
