package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "0,00",
		"4.5":     "4,50",
		"999":     "999,00",
		"25000":   "25.000,00",
		"1000000": "1.000.000,00",
		"-1234.5": "-1.234,50",
		"12.345":  "12,35",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	order := &entity.Order{
		ID:           "7f1c2a9e-0000-4000-8000-000000000001",
		TenantCode:   "REST01",
		TableNumber:  4,
		BilledAmount: decimal.RequireFromString("12.50"),
		Status:       entity.OrderStatusBilled,
		CreatedAt:    time.Date(2026, 3, 1, 20, 15, 0, 0, time.UTC),
		Lines: []entity.OrderLine{
			{ProductID: "p1", Name: "Hamburguesa", Price: decimal.RequireFromString("8.00"), Category: "Platos"},
			{ProductID: "p2", Name: "Limonada", Price: decimal.RequireFromString("4.50"), Category: "Bebidas"},
		},
	}
	tenant := &entity.Tenant{Code: "REST01", Name: "Casa Sartaj", Phone: "3001234567", Message: "Vuelva pronto"}

	b, err := NewMarotoReceiptGenerator().GenerateReceiptPDF(context.Background(), order, tenant)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}
