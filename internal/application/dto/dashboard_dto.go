package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Ventas cobradas del día y del mes en curso, pedidos pendientes, top de productos e insumos bajos.
type DashboardSummaryDTO struct {
	TodaySales  decimal.Decimal `json:"today_sales"`
	TodayOrders int             `json:"today_orders"`

	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyOrders int             `json:"monthly_orders"`

	OpenOrders int             `json:"open_orders"`
	OpenAmount decimal.Decimal `json:"open_amount"`

	// Top productos por ingreso del mes (de mayor a menor)
	TopProducts []TopProductDTO `json:"top_products"`
	LowStock    []LowStockDTO   `json:"low_stock"`

	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// TopProductDTO resumen de un producto para el widget del dashboard.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	QuantitySold int64           `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// LowStockDTO insumo con existencia en o bajo el umbral (incluye negativos).
type LowStockDTO struct {
	StockID  string `json:"stock_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}
