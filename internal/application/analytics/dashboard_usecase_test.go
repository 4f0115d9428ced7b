package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/memory"
)

func line(id, name, price string) entity.OrderLine {
	return entity.OrderLine{ProductID: id, Name: name, Price: decimal.RequireFromString(price), Category: "Platos"}
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	orders := memory.NewOrderRepo()
	stock := memory.NewStockRepo()
	tc := tenant.Context{TenantCode: "REST01"}

	seed := func(id, tenantCode string, lines ...entity.OrderLine) {
		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Price)
		}
		require.NoError(t, orders.Create(ctx, &entity.Order{
			ID: id, TenantCode: tenantCode, TableNumber: 1, BilledAmount: total,
			Lines: lines, Status: entity.OrderStatusOpen, CreatedAt: time.Now(),
		}))
	}
	seed("o-1", "REST01", line("p-arepa", "Arepa", "5"), line("p-arepa", "Arepa", "5"), line("p-te", "Té", "2"))
	seed("o-2", "REST01", line("p-te", "Té", "2"))
	seed("o-3", "REST01", line("p-arepa", "Arepa", "5"))
	seed("o-4", "OTRO", line("p-x", "Ajeno", "100"))
	require.NoError(t, orders.UpdateStatus(ctx, "o-1", entity.OrderStatusBilled, time.Now()))
	require.NoError(t, orders.UpdateStatus(ctx, "o-2", entity.OrderStatusBilled, time.Now()))
	require.NoError(t, orders.UpdateStatus(ctx, "o-4", entity.OrderStatusBilled, time.Now()))

	require.NoError(t, stock.Create(ctx, &entity.StockItem{ID: "s-1", TenantCode: "REST01", Name: "Harina", Quantity: 2}))
	require.NoError(t, stock.Create(ctx, &entity.StockItem{ID: "s-2", TenantCode: "REST01", Name: "Queso", Quantity: -3}))
	require.NoError(t, stock.Create(ctx, &entity.StockItem{ID: "s-3", TenantCode: "REST01", Name: "Sal", Quantity: 40}))

	uc := NewDashboardUseCase(orders, stock, 5)
	sum, err := uc.GetSummary(ctx, tc)
	require.NoError(t, err)

	assert.True(t, sum.TodaySales.Equal(decimal.NewFromInt(14)))
	assert.Equal(t, 2, sum.TodayOrders)
	assert.True(t, sum.MonthlySales.Equal(decimal.NewFromInt(14)))
	assert.Equal(t, 1, sum.OpenOrders)
	assert.True(t, sum.OpenAmount.Equal(decimal.NewFromInt(5)))

	require.Len(t, sum.TopProducts, 2)
	assert.Equal(t, "p-arepa", sum.TopProducts[0].ProductID)
	assert.Equal(t, int64(2), sum.TopProducts[0].QuantitySold)
	assert.Equal(t, int64(2), sum.TopProducts[1].QuantitySold)

	require.Len(t, sum.LowStock, 2)
	assert.Equal(t, "Harina", sum.LowStock[0].Name, "ordenados por nombre")
	assert.Equal(t, int64(-3), sum.LowStock[1].Quantity)
	assert.NotEmpty(t, sum.DateLabel)
}

func TestGetSummary_TopOrdenadoPorUnidades(t *testing.T) {
	ctx := context.Background()
	orders := memory.NewOrderRepo()
	lines := []entity.OrderLine{
		line("p-te", "Té", "1"), line("p-te", "Té", "1"), line("p-te", "Té", "1"),
		line("p-steak", "Steak", "10"),
	}
	require.NoError(t, orders.Create(ctx, &entity.Order{
		ID: "o-1", TenantCode: "REST01", TableNumber: 2, BilledAmount: decimal.NewFromInt(13),
		Lines: lines, Status: entity.OrderStatusOpen, CreatedAt: time.Now(),
	}))
	require.NoError(t, orders.UpdateStatus(ctx, "o-1", entity.OrderStatusBilled, time.Now()))

	uc := NewDashboardUseCase(orders, memory.NewStockRepo(), 5)
	sum, err := uc.GetSummary(ctx, tenant.Context{TenantCode: "REST01"})
	require.NoError(t, err)

	require.Len(t, sum.TopProducts, 2)
	assert.Equal(t, "p-te", sum.TopProducts[0].ProductID, "más unidades aunque facture menos")
	assert.Equal(t, int64(3), sum.TopProducts[0].QuantitySold)
	assert.Equal(t, "p-steak", sum.TopProducts[1].ProductID)
	assert.True(t, sum.TopProducts[1].TotalRevenue.Equal(decimal.NewFromInt(10)))
}

func TestGetSummary_SinRestaurante(t *testing.T) {
	uc := NewDashboardUseCase(memory.NewOrderRepo(), memory.NewStockRepo(), 5)
	_, err := uc.GetSummary(context.Background(), tenant.Context{})
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Febrero 2026", monthLabel(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Diciembre 2025", monthLabel(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}
