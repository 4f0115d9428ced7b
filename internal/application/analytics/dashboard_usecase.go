// Package analytics contiene el resumen de ventas del restaurante (pantalla Dashboard).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera el resumen de ventas del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) y el stock del restaurante.
type DashboardUseCase struct {
	analyticsRepo     repository.AnalyticsRepository
	stockRepo         repository.StockRepository
	lowStockThreshold int64
	now               func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, stockRepo repository.StockRepository, lowStockThreshold int64) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo:     analyticsRepo,
		stockRepo:         stockRepo,
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}
}

// GetSummary construye el DashboardSummaryDTO del restaurante de la sesión.
//
// Cinco consultas en paralelo:
//  1. GetBilledMetrics(hoy)
//  2. GetBilledMetrics(mes)
//  3. GetOpenMetrics
//  4. GetTopProducts(mes, top 5)
//  5. ListByTenant de stock, filtrado por el umbral
func (uc *DashboardUseCase) GetSummary(ctx context.Context, tc tenant.Context) (*dto.DashboardSummaryDTO, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	now := uc.now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		today, month, open repository.SalesMetrics
		top                []repository.ProductSalesResult
		low                []dto.LowStockDTO
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := uc.analyticsRepo.GetBilledMetrics(gctx, tc.TenantCode, todayStart, todayEnd)
		if err != nil {
			return fmt.Errorf("dashboard: ventas de hoy: %w", err)
		}
		today = m
		return nil
	})
	g.Go(func() error {
		m, err := uc.analyticsRepo.GetBilledMetrics(gctx, tc.TenantCode, monthStart, todayEnd)
		if err != nil {
			return fmt.Errorf("dashboard: ventas del mes: %w", err)
		}
		month = m
		return nil
	})
	g.Go(func() error {
		m, err := uc.analyticsRepo.GetOpenMetrics(gctx, tc.TenantCode)
		if err != nil {
			return fmt.Errorf("dashboard: pedidos abiertos: %w", err)
		}
		open = m
		return nil
	})
	g.Go(func() error {
		list, err := uc.analyticsRepo.GetTopProducts(gctx, tc.TenantCode, monthStart, todayEnd, dashboardTopProducts)
		if err != nil {
			return fmt.Errorf("dashboard: top productos: %w", err)
		}
		top = list
		return nil
	})
	g.Go(func() error {
		items, err := uc.stockRepo.ListByTenant(gctx, tc.TenantCode)
		if err != nil {
			return fmt.Errorf("dashboard: stock: %w", err)
		}
		low = []dto.LowStockDTO{}
		for _, s := range items {
			if s.Quantity <= uc.lowStockThreshold {
				low = append(low, dto.LowStockDTO{StockID: s.ID, Name: s.Name, Quantity: s.Quantity})
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	topDTO := make([]dto.TopProductDTO, 0, len(top))
	for _, p := range top {
		topDTO = append(topDTO, dto.TopProductDTO{
			ProductID:    p.ProductID,
			Name:         p.Name,
			QuantitySold: p.UnitsSold,
			TotalRevenue: p.Revenue.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:    today.Amount.Round(2),
		TodayOrders:   today.Orders,
		MonthlySales:  month.Amount.Round(2),
		MonthlyOrders: month.Orders,
		OpenOrders:    open.Orders,
		OpenAmount:    open.Amount.Round(2),
		TopProducts:   topDTO,
		LowStock:      low,
		DateLabel:     monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
