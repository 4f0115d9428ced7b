package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandera-api/internal/application/billing"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/memory"
)

type stubGenerator struct {
	order  *entity.Order
	tenant *entity.Tenant
}

func (g *stubGenerator) GenerateReceiptPDF(_ context.Context, o *entity.Order, t *entity.Tenant) ([]byte, error) {
	g.order, g.tenant = o, t
	return []byte("%PDF-stub"), nil
}

func TestReceipt_Download(t *testing.T) {
	ctx := context.Background()
	orders := memory.NewOrderRepo()
	tenants := memory.NewTenantRepo()
	require.NoError(t, tenants.Create(ctx, &entity.Tenant{Code: "REST01", Name: "La Esquina", Message: "Gracias"}))
	seedOrder(t, orders, "0b6f7c1e-aaaa-bbbb-cccc-000000000001", "REST01", 12, time.Now())
	gen := &stubGenerator{}
	uc := billing.NewReceiptUseCase(orders, tenants, gen)

	pdf, name, err := uc.Download(ctx, admin, "0b6f7c1e-aaaa-bbbb-cccc-000000000001")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)
	assert.Equal(t, "ticket_mesa12_0b6f7c1e.pdf", name)
	assert.Equal(t, "La Esquina", gen.tenant.Name)
	assert.Len(t, gen.order.Lines, 1)
}

func TestReceipt_PedidoDeOtroRestaurante(t *testing.T) {
	ctx := context.Background()
	orders := memory.NewOrderRepo()
	tenants := memory.NewTenantRepo()
	require.NoError(t, tenants.Create(ctx, &entity.Tenant{Code: "REST01", Name: "La Esquina"}))
	seedOrder(t, orders, "o-ajeno", "OTRO", 1, time.Now())
	uc := billing.NewReceiptUseCase(orders, tenants, &stubGenerator{})

	_, _, err := uc.Download(ctx, admin, "o-ajeno")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
