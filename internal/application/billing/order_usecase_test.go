package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandera-api/internal/application/billing"
	"github.com/jhoicas/Comandera-api/internal/application/ports"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/memory"
)

var admin = tenant.Context{TenantCode: "REST01", Role: entity.RoleAdmin, UserID: "u-admin", SessionID: "sid"}

func seedOrder(t *testing.T, repo *memory.OrderRepo, id, tenantCode string, table int, created time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entity.Order{
		ID:           id,
		TenantCode:   tenantCode,
		TableNumber:  table,
		BilledAmount: decimal.RequireFromString("12.50"),
		Lines: []entity.OrderLine{
			{ProductID: "p1", Name: "Arepa", Price: decimal.RequireFromString("12.50"), Category: "Platos"},
		},
		Status:    entity.OrderStatusOpen,
		CreatedAt: created,
		UpdatedAt: created,
	}))
}

func TestFinalize_MarcaCobradoYPublica(t *testing.T) {
	orders := memory.NewOrderRepo()
	events := &memory.Publisher{}
	seedOrder(t, orders, "o-1", "REST01", 4, time.Now())
	uc := billing.NewOrderUseCase(orders, events, zerolog.Nop())

	resp, err := uc.Finalize(context.Background(), admin, "o-1")
	require.NoError(t, err)
	assert.Equal(t, "billed", resp.Status)
	assert.NotNil(t, resp.BilledAt)

	stored, err := orders.GetByID(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusBilled, stored.Status)

	evs := events.Events()
	require.Len(t, evs, 1)
	assert.Equal(t, ports.EventOrderBilled, evs[0].RoutingKey)
}

func TestFinalize_DosVecesQuedaCobrado(t *testing.T) {
	orders := memory.NewOrderRepo()
	seedOrder(t, orders, "o-1", "REST01", 4, time.Now())
	uc := billing.NewOrderUseCase(orders, nil, zerolog.Nop())

	first, err := uc.Finalize(context.Background(), admin, "o-1")
	require.NoError(t, err)
	second, err := uc.Finalize(context.Background(), admin, "o-1")
	require.NoError(t, err)

	assert.Equal(t, "billed", second.Status)
	stored, _ := orders.GetByID(context.Background(), "o-1")
	require.NotNil(t, stored.BilledAt)
	require.NotNil(t, first.BilledAt)
	require.NotNil(t, second.BilledAt)
	assert.True(t, first.BilledAt.Equal(*stored.BilledAt), "el primer cobro devuelve la fecha guardada")
	assert.True(t, second.BilledAt.Equal(*first.BilledAt), "la fecha de cobro no cambia al repetir")
}

func TestFinalize_PedidoInexistenteODeOtroRestaurante(t *testing.T) {
	orders := memory.NewOrderRepo()
	seedOrder(t, orders, "o-ajeno", "OTRO", 1, time.Now())
	uc := billing.NewOrderUseCase(orders, nil, zerolog.Nop())

	_, err := uc.Finalize(context.Background(), admin, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Finalize(context.Background(), admin, "o-ajeno")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, _ := orders.GetByID(context.Background(), "o-ajeno")
	assert.Equal(t, entity.OrderStatusOpen, stored.Status)

	_, err = uc.Finalize(context.Background(), tenant.Context{}, "o-ajeno")
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
}

func TestFinalize_FalloAlPublicarNoBloquea(t *testing.T) {
	orders := memory.NewOrderRepo()
	seedOrder(t, orders, "o-1", "REST01", 4, time.Now())
	uc := billing.NewOrderUseCase(orders, &memory.Publisher{Err: errors.New("sin broker")}, zerolog.Nop())

	resp, err := uc.Finalize(context.Background(), admin, "o-1")
	require.NoError(t, err)
	assert.Equal(t, "billed", resp.Status)
}

func TestList_FiltraPorEstadoMesaYRestaurante(t *testing.T) {
	ctx := context.Background()
	orders := memory.NewOrderRepo()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedOrder(t, orders, "o-1", "REST01", 4, base)
	seedOrder(t, orders, "o-2", "REST01", 14, base.Add(time.Minute))
	seedOrder(t, orders, "o-3", "REST01", 7, base.Add(2*time.Minute))
	seedOrder(t, orders, "o-4", "OTRO", 4, base)
	uc := billing.NewOrderUseCase(orders, nil, zerolog.Nop())
	_, err := uc.Finalize(ctx, admin, "o-3")
	require.NoError(t, err)

	open, err := uc.ListOpen(ctx, admin)
	require.NoError(t, err)
	require.Len(t, open.Items, 2)
	assert.Equal(t, "o-2", open.Items[0].ID, "más recientes primero")

	billed, err := uc.ListBilled(ctx, admin)
	require.NoError(t, err)
	require.Len(t, billed.Items, 1)
	assert.Equal(t, "o-3", billed.Items[0].ID)

	byTable, err := uc.List(ctx, admin, "", "4")
	require.NoError(t, err)
	assert.Len(t, byTable.Items, 2, "mesa 4 y mesa 14")

	_, err = uc.List(ctx, admin, "cancelado", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_DeOtroRestauranteEsNil(t *testing.T) {
	orders := memory.NewOrderRepo()
	seedOrder(t, orders, "o-ajeno", "OTRO", 1, time.Now())
	uc := billing.NewOrderUseCase(orders, nil, zerolog.Nop())

	got, err := uc.GetByID(context.Background(), admin, "o-ajeno")
	require.NoError(t, err)
	assert.Nil(t, got)
}
