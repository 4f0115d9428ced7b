package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics total y cantidad de pedidos de un período.
type SalesMetrics struct {
	Amount decimal.Decimal
	Orders int
}

// ProductSalesResult resultado crudo de ventas por producto, tomado del snapshot de líneas.
type ProductSalesResult struct {
	ProductID string
	Name      string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el resumen de ventas.
type AnalyticsRepository interface {
	// GetBilledMetrics suma los pedidos cobrados con billed_at dentro del rango.
	// Devuelve ceros si no hay pedidos en el período.
	GetBilledMetrics(ctx context.Context, tenantCode string, start, end time.Time) (SalesMetrics, error)

	// GetOpenMetrics suma los pedidos pendientes de cobro.
	GetOpenMetrics(ctx context.Context, tenantCode string) (SalesMetrics, error)

	// GetTopProducts devuelve los limit productos con mayor ingreso cobrado en el período.
	GetTopProducts(ctx context.Context, tenantCode string, start, end time.Time, limit int) ([]ProductSalesResult, error)
}
