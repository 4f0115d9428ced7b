package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comandera-api/internal/application/billing"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// OrderHandler consulta, cobro y ticket de pedidos.
type OrderHandler struct {
	orders   *billing.OrderUseCase
	receipts *billing.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(orders *billing.OrderUseCase, receipts *billing.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, receipts: receipts}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "open | billed"
// @Param        table   query  string  false  "Mesa (coincidencia parcial)"
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	// Los meseros solo ven pedidos abiertos.
	if GetRole(c) != entity.RoleAdmin {
		if status != "" && status != string(entity.OrderStatusOpen) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo admin consulta pedidos cobrados"})
		}
		status = string(entity.OrderStatusOpen)
	}
	out, err := h.orders.List(c.Context(), TenantContext(c), status, c.Query("table"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.orders.GetByID(c.Context(), TenantContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido no encontrado")
	}
	return c.JSON(out)
}

// Bill godoc
// @Summary      Cobrar pedido
// @Description  Marca el pedido como cobrado. Repetir la llamada deja el pedido cobrado.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/bill [post]
func (h *OrderHandler) Bill(c *fiber.Ctx) error {
	out, err := h.orders.Finalize(c.Context(), TenantContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt GET /api/orders/:id/receipt: descarga el ticket en PDF.
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receipts.Download(c.Context(), TenantContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
