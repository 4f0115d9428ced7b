package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*OrderRepo)(nil)

func (r *OrderRepo) GetBilledMetrics(_ context.Context, tenantCode string, start, end time.Time) (repository.SalesMetrics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := repository.SalesMetrics{Amount: decimal.Zero}
	for _, s := range r.items {
		o := s.order
		if o.TenantCode != tenantCode || o.Status != entity.OrderStatusBilled || !within(o.BilledAt, start, end) {
			continue
		}
		m.Amount = m.Amount.Add(o.BilledAmount)
		m.Orders++
	}
	return m, nil
}

func (r *OrderRepo) GetOpenMetrics(_ context.Context, tenantCode string) (repository.SalesMetrics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := repository.SalesMetrics{Amount: decimal.Zero}
	for _, s := range r.items {
		if s.order.TenantCode == tenantCode && s.order.Status == entity.OrderStatusOpen {
			m.Amount = m.Amount.Add(s.order.BilledAmount)
			m.Orders++
		}
	}
	return m, nil
}

func (r *OrderRepo) GetTopProducts(_ context.Context, tenantCode string, start, end time.Time, limit int) ([]repository.ProductSalesResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byID := map[string]*repository.ProductSalesResult{}
	for _, s := range r.items {
		if s.order.TenantCode != tenantCode || s.order.Status != entity.OrderStatusBilled || !within(s.order.BilledAt, start, end) {
			continue
		}
		o, err := s.decode()
		if err != nil {
			return nil, err
		}
		for _, l := range o.Lines {
			p, ok := byID[l.ProductID]
			if !ok {
				p = &repository.ProductSalesResult{ProductID: l.ProductID, Name: l.Name, Revenue: decimal.Zero}
				byID[l.ProductID] = p
			}
			p.UnitsSold++
			p.Revenue = p.Revenue.Add(l.Price)
		}
	}
	out := make([]repository.ProductSalesResult, 0, len(byID))
	for _, p := range byID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnitsSold != out[j].UnitsSold {
			return out[i].UnitsSold > out[j].UnitsSold
		}
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].ProductID < out[j].ProductID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func within(t *time.Time, start, end time.Time) bool {
	return t != nil && !t.Before(start) && !t.After(end)
}
