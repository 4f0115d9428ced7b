package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el resumen de ventas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetBilledMetrics usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *AnalyticsRepo) GetBilledMetrics(ctx context.Context, tenantCode string, start, end time.Time) (repository.SalesMetrics, error) {
	const query = `
	SELECT
	    COALESCE(SUM(billed_amount), 0) AS amount,
	    COUNT(*)                        AS orders
	FROM orders
	WHERE tenant_code = $1
	  AND status      = 'billed'
	  AND billed_at BETWEEN $2 AND $3`

	var m repository.SalesMetrics
	if err := r.q.QueryRow(ctx, query, tenantCode, start, end).Scan(&m.Amount, &m.Orders); err != nil {
		return repository.SalesMetrics{}, fmt.Errorf("analytics.GetBilledMetrics: %w", err)
	}
	return m, nil
}

// GetOpenMetrics suma los pedidos abiertos sin importar la fecha.
func (r *AnalyticsRepo) GetOpenMetrics(ctx context.Context, tenantCode string) (repository.SalesMetrics, error) {
	const query = `
	SELECT
	    COALESCE(SUM(billed_amount), 0) AS amount,
	    COUNT(*)                        AS orders
	FROM orders
	WHERE tenant_code = $1
	  AND status      = 'open'`

	var m repository.SalesMetrics
	if err := r.q.QueryRow(ctx, query, tenantCode).Scan(&m.Amount, &m.Orders); err != nil {
		return repository.SalesMetrics{}, fmt.Errorf("analytics.GetOpenMetrics: %w", err)
	}
	return m, nil
}

// GetTopProducts agrega las líneas del snapshot JSONB. Cada línea es una unidad vendida.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	tenantCode string,
	start, end time.Time,
	limit int,
) ([]repository.ProductSalesResult, error) {
	const query = `
	SELECT
	    l->>'id'                                   AS product_id,
	    l->>'name'                                 AS name,
	    COUNT(*)                                   AS units_sold,
	    COALESCE(SUM((l->>'price')::NUMERIC), 0)   AS revenue
	FROM orders o
	CROSS JOIN LATERAL jsonb_array_elements(o.lines) AS l
	WHERE o.tenant_code = $1
	  AND o.status      = 'billed'
	  AND o.billed_at BETWEEN $2 AND $3
	GROUP BY l->>'id', l->>'name'
	ORDER BY units_sold DESC, revenue DESC, product_id
	LIMIT $4`

	rows, err := r.q.Query(ctx, query, tenantCode, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	results := []repository.ProductSalesResult{}
	for rows.Next() {
		var row repository.ProductSalesResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts rows: %w", err)
	}
	return results, nil
}
